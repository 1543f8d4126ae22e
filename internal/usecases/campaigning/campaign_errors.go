package campaigning

import "errors"

// Erros específicos para o contexto de campanhas
var (
	ErrNameRequired     = errors.New("campaign name must have at least 2 characters")
	ErrNegativeBudget   = errors.New("daily budget cannot be negative")
	ErrInvalidPlatform  = errors.New("invalid platform")
	ErrInvalidStatus    = errors.New("invalid campaign status")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrGenerateID       = errors.New("error generating campaign ID")
	ErrDatabase         = errors.New("database operation error")
)
