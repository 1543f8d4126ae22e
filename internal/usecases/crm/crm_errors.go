package crm

import "errors"

// Erros específicos para o contexto do pipeline de leads
var (
	ErrNameRequired  = errors.New("lead name is required")
	ErrEmailRequired = errors.New("lead email is required")
	ErrInvalidStatus = errors.New("invalid lead status")
	ErrLeadNotFound  = errors.New("lead not found")
	ErrGenerateID    = errors.New("error generating lead ID")
	ErrDatabase      = errors.New("database operation error")
)
