package domain

import "time"

type ReportType string

const (
	ReportTypeDaily   ReportType = "daily"
	ReportTypeWeekly  ReportType = "weekly"
	ReportTypeMonthly ReportType = "monthly"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportTypeDaily, ReportTypeWeekly, ReportTypeMonthly:
		return true
	}
	return false
}

// KPISummary agrega as métricas de um conjunto de campanhas.
// Conjunto vazio produz um resumo zerado, nunca NaN.
type KPISummary struct {
	TotalSpend       float64 `json:"total_spend"`
	TotalRevenue     float64 `json:"total_revenue"`
	ROAS             float64 `json:"roas"`
	TotalConversions int     `json:"total_conversions"`
	AvgCTR           float64 `json:"avg_ctr"`
	AvgCPC           float64 `json:"avg_cpc"`
}

// PlatformGroup é uma fatia do breakdown por plataforma
type PlatformGroup struct {
	Platform  Platform `json:"platform"`
	Spend     float64  `json:"spend"`
	Revenue   float64  `json:"revenue"`
	Campaigns int      `json:"campaigns"`
	ROAS      float64  `json:"roas"`
}

// ExecutiveSummary resume vitórias e preocupações do período
type ExecutiveSummary struct {
	Wins     []string `json:"wins"`
	Concerns []string `json:"concerns"`
}

// ReportMetrics é o objeto persistido na coluna metrics do relatório
type ReportMetrics struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalRevenue     float64 `json:"totalRevenue"`
	BlendedRoas      float64 `json:"blendedRoas"`
	TotalConversions int     `json:"totalConversions"`
	AvgCTR           float64 `json:"avgCTR"`
	AvgCPC           float64 `json:"avgCPC"`
	TopCampaign      string  `json:"topCampaign"`
	TopPlatform      string  `json:"topPlatform"`
}

// Report representa um relatório persistido
type Report struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Type        ReportType     `json:"type"`
	Status      string         `json:"status"`
	Metrics     *ReportMetrics `json:"metrics"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// CreateReportRequest é o corpo aceito em POST /v1/reports
type CreateReportRequest struct {
	Title     string     `json:"title"`
	Type      ReportType `json:"type"`
	DateRange *DateRange `json:"date_range"`
}

// DateRange delimita o período coberto por um relatório
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// GeneratedReport é o payload completo de POST /v1/reports/generate,
// montado sob demanda e não persistido
type GeneratedReport struct {
	Title             string              `json:"title"`
	DateRange         string              `json:"date_range"`
	ExecutiveSummary  *ExecutiveSummary   `json:"executive_summary"`
	KPI               *KPISummary         `json:"kpi"`
	Campaigns         []*CampaignResponse `json:"campaigns"`
	PlatformBreakdown []*PlatformGroup    `json:"platform_breakdown"`
	Insights          []string            `json:"insights"`
}
