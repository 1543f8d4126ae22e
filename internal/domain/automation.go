package domain

import "time"

type AutomationStatus string

const (
	AutomationStatusActive    AutomationStatus = "active"
	AutomationStatusPaused    AutomationStatus = "paused"
	AutomationStatusCompleted AutomationStatus = "completed"
)

func (s AutomationStatus) Valid() bool {
	switch s {
	case AutomationStatusActive, AutomationStatusPaused, AutomationStatusCompleted:
		return true
	}
	return false
}

// Automation representa uma regra de automação cadastrada pelo usuário.
// trigger/condition/action são texto livre vindos do formulário; next_run é
// apenas metadado de exibição, nada é executado de fato.
type Automation struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Trigger   string           `json:"trigger"`
	Condition string           `json:"condition"`
	Action    string           `json:"action"`
	Status    AutomationStatus `json:"status"`
	LastRun   *time.Time       `json:"last_run"`
	NextRun   time.Time        `json:"next_run"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// CreateAutomationRequest é o corpo aceito em POST /v1/automations
type CreateAutomationRequest struct {
	Name      string `json:"name"`
	Trigger   string `json:"trigger"`
	Condition string `json:"condition"`
	Action    string `json:"action"`
}

// UpdateAutomationRequest é o corpo aceito em PUT /v1/automations/:id
type UpdateAutomationRequest struct {
	Name      *string           `json:"name"`
	Trigger   *string           `json:"trigger"`
	Condition *string           `json:"condition"`
	Action    *string           `json:"action"`
	Status    *AutomationStatus `json:"status"`
}
