package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserActive bool
	UserRoleID int
	jwt.RegisteredClaims
}

// CopilotMessage é uma mensagem do chat do copiloto
type CopilotMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CopilotRequest é o corpo aceito em POST /v1/copilot/chat
type CopilotRequest struct {
	Messages []CopilotMessage `json:"messages"`
}

// CopilotResponse é a resposta do copiloto
type CopilotResponse struct {
	Response string `json:"response"`
	Details  string `json:"details,omitempty"`
}
