package integrator

import "github.com/growzzy/growzzy-os-api/internal/domain"

// TokenResult é o resultado da troca de um authorization code por um token
type TokenResult struct {
	AccessToken  string
	RefreshToken *string
	ExpiresIn    int64
}

// Connector é o contrato comum dos conectores OAuth das plataformas de anúncio.
// Cada conector sabe trocar o code pelo token e buscar os dados básicos da
// conta na API da plataforma.
type Connector interface {
	Platform() domain.Platform
	ExchangeCode(code string) (*TokenResult, error)
	FetchAccountData(accessToken string) (map[string]any, error)
}
