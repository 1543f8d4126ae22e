package reporting

import (
	"testing"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		campaigns []*domain.Campaign
		expected  *domain.KPISummary
	}{
		{
			name:      "Conjunto vazio deve retornar resumo zerado",
			campaigns: []*domain.Campaign{},
			expected:  &domain.KPISummary{},
		},
		{
			name: "Deve somar spend, revenue e conversões e calcular médias",
			campaigns: []*domain.Campaign{
				{Name: "A", Spend: 1000, Revenue: 4000, Conversions: 10, CTR: 2.0, CPC: 5.0},
				{Name: "B", Spend: 500, Revenue: 500, Conversions: 4, CTR: 1.0, CPC: 3.0},
			},
			expected: &domain.KPISummary{
				TotalSpend:       1500,
				TotalRevenue:     4500,
				ROAS:             3,
				TotalConversions: 14,
				AvgCTR:           1.5,
				AvgCPC:           4,
			},
		},
		{
			name: "Spend total zero deve produzir ROAS zero, nunca infinito",
			campaigns: []*domain.Campaign{
				{Name: "A", Spend: 0, Revenue: 2000, Conversions: 3},
			},
			expected: &domain.KPISummary{
				TotalRevenue:     2000,
				TotalConversions: 3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Summarize(tt.campaigns)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPlatformBreakdown(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Name: "A", Platform: domain.PlatformMeta, Spend: 1000, Revenue: 3000},
		{Name: "B", Platform: domain.PlatformMeta, Spend: 500, Revenue: 500},
		{Name: "C", Platform: domain.PlatformGoogle, Spend: 2000, Revenue: 4000},
	}

	groups := PlatformBreakdown(campaigns)

	assert.Len(t, groups, 2)

	// Ordenado por spend decrescente
	assert.Equal(t, domain.PlatformGoogle, groups[0].Platform)
	assert.Equal(t, 2000.0, groups[0].Spend)
	assert.Equal(t, 4000.0, groups[0].Revenue)
	assert.Equal(t, 1, groups[0].Campaigns)
	assert.Equal(t, 2.0, groups[0].ROAS)

	assert.Equal(t, domain.PlatformMeta, groups[1].Platform)
	assert.Equal(t, 1500.0, groups[1].Spend)
	assert.Equal(t, 3500.0, groups[1].Revenue)
	assert.Equal(t, 2, groups[1].Campaigns)

	// Consistência da partição: as fatias somam os totais
	summary := Summarize(campaigns)
	var spendSum, revenueSum float64
	var countSum int
	for _, g := range groups {
		spendSum += g.Spend
		revenueSum += g.Revenue
		countSum += g.Campaigns
	}
	assert.Equal(t, summary.TotalSpend, spendSum)
	assert.Equal(t, summary.TotalRevenue, revenueSum)
	assert.Equal(t, len(campaigns), countSum)
}

func TestPlatformBreakdown_EmpateDeSpendOrdenaPorPlataforma(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Name: "A", Platform: domain.PlatformMeta, Spend: 100, Revenue: 200},
		{Name: "B", Platform: domain.PlatformGoogle, Spend: 100, Revenue: 300},
	}

	groups := PlatformBreakdown(campaigns)

	assert.Len(t, groups, 2)
	assert.Equal(t, domain.PlatformGoogle, groups[0].Platform)
	assert.Equal(t, domain.PlatformMeta, groups[1].Platform)
}

func TestTopPerformers(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Name: "Vencedora", Spend: 1000, Revenue: 4000},
		{Name: "No limiar", Spend: 1000, Revenue: 2000},
		{Name: "Mediana", Spend: 1000, Revenue: 2500},
		{Name: "Campeã", Spend: 1000, Revenue: 6000},
		{Name: "Boa", Spend: 1000, Revenue: 3000},
	}

	winners := TopPerformers(campaigns)

	// ROAS exatamente 2 fica fora; só as 3 melhores entram
	assert.Len(t, winners, 3)
	assert.Equal(t, "Campeã", winners[0].Name)
	assert.Equal(t, "Vencedora", winners[1].Name)
	assert.Equal(t, "Boa", winners[2].Name)
}

func TestUnderPerformers(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Name: "Ruim e cara", Spend: 1500, Revenue: 1000},
		{Name: "Ruim mas barata", Spend: 500, Revenue: 100},
		{Name: "Saudável", Spend: 2000, Revenue: 5000},
		{Name: "Péssima", Spend: 3000, Revenue: 600},
	}

	losers := UnderPerformers(campaigns)

	// Só entram ROAS < 1 com gasto acima de 1000, da pior para a melhor
	assert.Len(t, losers, 2)
	assert.Equal(t, "Péssima", losers[0].Name)
	assert.Equal(t, "Ruim e cara", losers[1].Name)
}

func TestBuildExecutiveSummary(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Name: "Vencedora", Spend: 1000, Revenue: 4000},
		{Name: "Preocupante", Spend: 1500, Revenue: 1000},
	}

	summary := BuildExecutiveSummary(campaigns)

	assert.Len(t, summary.Wins, 1)
	assert.Contains(t, summary.Wins[0], "Vencedora")
	assert.Len(t, summary.Concerns, 1)
	assert.Contains(t, summary.Concerns[0], "Preocupante")
}

func TestBuildExecutiveSummary_SemCampanhas(t *testing.T) {
	summary := BuildExecutiveSummary(nil)

	assert.NotNil(t, summary.Wins)
	assert.NotNil(t, summary.Concerns)
	assert.Empty(t, summary.Wins)
	assert.Empty(t, summary.Concerns)
}

func TestBuildInsights(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Name: "A", Platform: domain.PlatformMeta, Spend: 1000, Revenue: 3000, Conversions: 50, CPC: 4},
	}

	summary := Summarize(campaigns)
	groups := PlatformBreakdown(campaigns)

	insights := BuildInsights(summary, groups)

	assert.Len(t, insights, 3)
	assert.Contains(t, insights[0], "3.00x")
	assert.Contains(t, insights[1], "meta")
	assert.Contains(t, insights[2], "50 conversões")
}

func TestBuildInsights_SemDados(t *testing.T) {
	insights := BuildInsights(&domain.KPISummary{}, nil)
	assert.Empty(t, insights)
}

func TestBuildReportMetrics(t *testing.T) {
	campaigns := []*domain.Campaign{
		{Name: "Maior receita", Platform: domain.PlatformGoogle, Spend: 2000, Revenue: 5000, Conversions: 20},
		{Name: "Maior ROAS", Platform: domain.PlatformMeta, Spend: 100, Revenue: 1000, Conversions: 5},
		{Name: "Comum", Platform: domain.PlatformMeta, Spend: 300, Revenue: 300, Conversions: 2},
	}

	metrics := BuildReportMetrics(campaigns)

	// Top campaign é a de maior receita, não a de maior ROAS
	assert.Equal(t, "Maior receita", metrics.TopCampaign)
	// Top platform é a com mais campanhas
	assert.Equal(t, "meta", metrics.TopPlatform)
	assert.Equal(t, 2400.0, metrics.TotalSpend)
	assert.Equal(t, 6300.0, metrics.TotalRevenue)
	assert.Equal(t, 2.63, metrics.BlendedRoas)
	assert.Equal(t, 27, metrics.TotalConversions)
}

func TestBuildReportMetrics_SemCampanhas(t *testing.T) {
	metrics := BuildReportMetrics(nil)

	assert.Equal(t, "", metrics.TopCampaign)
	assert.Equal(t, "", metrics.TopPlatform)
	assert.Equal(t, 0.0, metrics.BlendedRoas)
}
