package domain

import (
	"time"

	"github.com/growzzy/growzzy-os-api/pkg/utils"
)

// Platform identifica a origem de uma campanha de mídia paga
type Platform string

const (
	PlatformMeta     Platform = "meta"
	PlatformGoogle   Platform = "google"
	PlatformTikTok   Platform = "tiktok"
	PlatformLinkedIn Platform = "linkedin"
	PlatformShopify  Platform = "shopify"
)

// ValidPlatforms lista as plataformas aceitas pela API
var ValidPlatforms = []Platform{
	PlatformMeta,
	PlatformGoogle,
	PlatformTikTok,
	PlatformLinkedIn,
	PlatformShopify,
}

func (p Platform) Valid() bool {
	for _, platform := range ValidPlatforms {
		if p == platform {
			return true
		}
	}
	return false
}

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusScheduled CampaignStatus = "scheduled"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted, CampaignStatusScheduled:
		return true
	}
	return false
}

// Campaign representa uma campanha armazenada no banco.
// O ROAS nunca é persistido: é sempre derivado de revenue/spend na leitura,
// para não divergir após updates parciais.
type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Platform    Platform       `json:"platform"`
	Status      CampaignStatus `json:"status"`
	DailyBudget float64        `json:"daily_budget"`
	Currency    string         `json:"currency"`
	Spend       float64        `json:"spend"`
	Revenue     float64        `json:"revenue"`
	Conversions int            `json:"conversions"`
	Impressions int64          `json:"impressions"`
	CTR         float64        `json:"ctr"`
	CPC         float64        `json:"cpc"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ROAS calcula o retorno sobre o investimento em anúncios.
// Retorna 0 quando não houve gasto, nunca NaN ou infinito.
func (c *Campaign) ROAS() float64 {
	if c.Spend <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(c.Revenue / c.Spend)
}

// CampaignResponse é o formato de resposta da API, com o ROAS derivado
type CampaignResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Platform    Platform       `json:"platform"`
	Status      CampaignStatus `json:"status"`
	DailyBudget float64        `json:"daily_budget"`
	Currency    string         `json:"currency"`
	Spend       float64        `json:"spend"`
	Revenue     float64        `json:"revenue"`
	ROAS        float64        `json:"roas"`
	Conversions int            `json:"conversions"`
	Impressions int64          `json:"impressions"`
	CTR         float64        `json:"ctr"`
	CPC         float64        `json:"cpc"`
	CreatedAt   time.Time      `json:"created_at"`
}

func NewCampaignResponse(c *Campaign) *CampaignResponse {
	return &CampaignResponse{
		ID:          c.ID,
		Name:        c.Name,
		Platform:    c.Platform,
		Status:      c.Status,
		DailyBudget: c.DailyBudget,
		Currency:    c.Currency,
		Spend:       c.Spend,
		Revenue:     c.Revenue,
		ROAS:        c.ROAS(),
		Conversions: c.Conversions,
		Impressions: c.Impressions,
		CTR:         c.CTR,
		CPC:         c.CPC,
		CreatedAt:   c.CreatedAt,
	}
}

// CreateCampaignRequest é o corpo aceito em POST /v1/campaigns
type CreateCampaignRequest struct {
	Name        string          `json:"name"`
	Platform    Platform        `json:"platform"`
	Status      *CampaignStatus `json:"status"`
	DailyBudget *float64        `json:"daily_budget"`
	Currency    *string         `json:"currency"`
	Spend       *float64        `json:"spend"`
	Revenue     *float64        `json:"revenue"`
	Conversions *int            `json:"conversions"`
	Impressions *int64          `json:"impressions"`
	CTR         *float64        `json:"ctr"`
	CPC         *float64        `json:"cpc"`
}

// UpdateCampaignRequest é o corpo aceito em PATCH /v1/campaigns/:id.
// Campos nulos são ignorados no merge.
type UpdateCampaignRequest struct {
	Name        *string         `json:"name"`
	Platform    *Platform       `json:"platform"`
	Status      *CampaignStatus `json:"status"`
	DailyBudget *float64        `json:"daily_budget"`
	Spend       *float64        `json:"spend"`
	Revenue     *float64        `json:"revenue"`
	Conversions *int            `json:"conversions"`
	Impressions *int64          `json:"impressions"`
	CTR         *float64        `json:"ctr"`
	CPC         *float64        `json:"cpc"`
}

// LaunchCampaignRequest é o rascunho enviado pelo assistente de lançamento
// do dashboard (goal/strategy/audiences/creatives)
type LaunchCampaignRequest struct {
	CampaignName string   `json:"campaign_name"`
	Goal         string   `json:"goal"`
	Strategy     string   `json:"strategy"`
	Platform     Platform `json:"platform"`
	DailyBudget  float64  `json:"daily_budget"`
	Audiences    []string `json:"audiences"`
	Creatives    []string `json:"creatives"`
	StartDate    *string  `json:"start_date"`
}

// CampaignFilters restringe a listagem de campanhas
type CampaignFilters struct {
	Platform  *Platform
	Status    *CampaignStatus
	StartDate *time.Time
	EndDate   *time.Time
}
