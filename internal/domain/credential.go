package domain

import "time"

// PlatformCredential guarda o resultado de uma conexão OAuth bem sucedida.
// É sobrescrita (upsert) a cada callback; não há refresh automático.
type PlatformCredential struct {
	UserID       int            `json:"user_id"`
	Platform     Platform       `json:"platform"`
	AccessToken  string         `json:"-"`
	RefreshToken *string        `json:"-"`
	ExpiresAt    int64          `json:"expires_at"`
	AccountData  map[string]any `json:"account_data"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// ConnectionResponse é o formato devolvido em GET /v1/connections,
// sem expor tokens
type ConnectionResponse struct {
	Platform    Platform       `json:"platform"`
	ExpiresAt   int64          `json:"expires_at"`
	AccountData map[string]any `json:"account_data"`
	ConnectedAt time.Time      `json:"connected_at"`
}

func NewConnectionResponse(c *PlatformCredential) *ConnectionResponse {
	return &ConnectionResponse{
		Platform:    c.Platform,
		ExpiresAt:   c.ExpiresAt,
		AccountData: c.AccountData,
		ConnectedAt: c.UpdatedAt,
	}
}
