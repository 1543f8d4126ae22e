package automating

import "errors"

// Erros específicos para o contexto de automações
var (
	ErrNameRequired       = errors.New("automation name is required")
	ErrTriggerRequired    = errors.New("automation trigger is required")
	ErrInvalidStatus      = errors.New("invalid automation status")
	ErrAutomationNotFound = errors.New("automation not found")
	ErrGenerateID         = errors.New("error generating automation ID")
	ErrDatabase           = errors.New("database operation error")
)
