package connecting

import "errors"

// Erros específicos para o contexto de conexões OAuth
var (
	ErrUnsupportedPlatform = errors.New("unsupported platform")
	ErrConnectionNotFound  = errors.New("connection not found")
	ErrDatabase            = errors.New("database operation error")
)
