package domain

import "time"

type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusMeeting   LeadStatus = "meeting"
	LeadStatusClosed    LeadStatus = "closed"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusMeeting, LeadStatusClosed:
		return true
	}
	return false
}

// Lead representa um contato do pipeline comercial (colunas do kanban)
type Lead struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Company   string     `json:"company"`
	Value     float64    `json:"value"`
	Status    LeadStatus `json:"status"`
	Source    string     `json:"source"`
	Notes     string     `json:"notes"`
	Tags      []string   `json:"tags"`
	Score     int        `json:"score"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateLeadRequest é o corpo aceito em POST /v1/leads.
// name e email são obrigatórios, o resto assume os defaults do formulário.
type CreateLeadRequest struct {
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Phone   *string     `json:"phone"`
	Company *string     `json:"company"`
	Value   *float64    `json:"value"`
	Status  *LeadStatus `json:"status"`
	Source  *string     `json:"source"`
	Notes   *string     `json:"notes"`
	Tags    []string    `json:"tags"`
	Score   *int        `json:"score"`
}

// UpdateLeadRequest é o corpo aceito em PATCH /v1/leads/:id
type UpdateLeadRequest struct {
	Name    *string     `json:"name"`
	Email   *string     `json:"email"`
	Phone   *string     `json:"phone"`
	Company *string     `json:"company"`
	Value   *float64    `json:"value"`
	Status  *LeadStatus `json:"status"`
	Source  *string     `json:"source"`
	Notes   *string     `json:"notes"`
	Tags    []string    `json:"tags"`
	Score   *int        `json:"score"`
}

// MoveLeadRequest é o corpo aceito em PATCH /v1/leads/:id/status
// (arrastar o card entre colunas do kanban)
type MoveLeadRequest struct {
	Status LeadStatus `json:"status"`
}
