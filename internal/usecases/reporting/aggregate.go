package reporting

import (
	"fmt"
	"sort"

	"github.com/growzzy/growzzy-os-api/internal/domain"
	"github.com/growzzy/growzzy-os-api/pkg/utils"
)

// Limiar de ROAS acima do qual uma campanha entra nas vitórias do resumo
const winRoasThreshold = 2.0

// Limiares combinados para entrar nas preocupações do resumo
const (
	concernRoasThreshold  = 1.0
	concernSpendThreshold = 1000.0
)

// Máximo de campanhas listadas em cada bucket do resumo executivo
const summaryBucketSize = 3

// Summarize reduz um conjunto de campanhas para os KPIs agregados.
// Conjunto vazio retorna um resumo zerado e spend total zero produz ROAS 0.
func Summarize(campaigns []*domain.Campaign) *domain.KPISummary {
	summary := &domain.KPISummary{}
	if len(campaigns) == 0 {
		return summary
	}

	var totalCTR, totalCPC float64

	for _, c := range campaigns {
		summary.TotalSpend += c.Spend
		summary.TotalRevenue += c.Revenue
		summary.TotalConversions += c.Conversions
		totalCTR += c.CTR
		totalCPC += c.CPC
	}

	count := float64(len(campaigns))

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.AvgCTR = utils.RoundWithTwoDecimalPlace(totalCTR / count)
	summary.AvgCPC = utils.RoundWithTwoDecimalPlace(totalCPC / count)

	if summary.TotalSpend > 0 {
		summary.ROAS = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue / summary.TotalSpend)
	}

	return summary
}

// PlatformBreakdown agrupa as campanhas por plataforma, somando spend,
// revenue e contagem. Cada grupo calcula o próprio ROAS com a mesma
// proteção contra divisão por zero do resumo geral.
func PlatformBreakdown(campaigns []*domain.Campaign) []*domain.PlatformGroup {
	groupMap := make(map[domain.Platform]*domain.PlatformGroup)

	for _, c := range campaigns {
		group, exists := groupMap[c.Platform]
		if !exists {
			group = &domain.PlatformGroup{Platform: c.Platform}
			groupMap[c.Platform] = group
		}

		group.Spend += c.Spend
		group.Revenue += c.Revenue
		group.Campaigns++
	}

	groups := make([]*domain.PlatformGroup, 0, len(groupMap))
	for _, group := range groupMap {
		group.Spend = utils.RoundWithTwoDecimalPlace(group.Spend)
		group.Revenue = utils.RoundWithTwoDecimalPlace(group.Revenue)
		if group.Spend > 0 {
			group.ROAS = utils.RoundWithTwoDecimalPlace(group.Revenue / group.Spend)
		}
		groups = append(groups, group)
	}

	// Ordenação estável por spend para o dashboard não embaralhar as fatias
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Spend != groups[j].Spend {
			return groups[i].Spend > groups[j].Spend
		}
		return groups[i].Platform < groups[j].Platform
	})

	return groups
}

// TopPerformers seleciona as campanhas com ROAS acima do limiar de vitória,
// ordenadas da maior para a menor, limitadas ao tamanho do bucket
func TopPerformers(campaigns []*domain.Campaign) []*domain.Campaign {
	winners := make([]*domain.Campaign, 0)
	for _, c := range campaigns {
		if c.ROAS() > winRoasThreshold {
			winners = append(winners, c)
		}
	}

	sort.Slice(winners, func(i, j int) bool {
		return winners[i].ROAS() > winners[j].ROAS()
	})

	if len(winners) > summaryBucketSize {
		winners = winners[:summaryBucketSize]
	}

	return winners
}

// UnderPerformers seleciona as campanhas com ROAS abaixo do limiar de
// preocupação e gasto relevante, ordenadas da pior para a melhor
func UnderPerformers(campaigns []*domain.Campaign) []*domain.Campaign {
	losers := make([]*domain.Campaign, 0)
	for _, c := range campaigns {
		if c.ROAS() < concernRoasThreshold && c.Spend > concernSpendThreshold {
			losers = append(losers, c)
		}
	}

	sort.Slice(losers, func(i, j int) bool {
		return losers[i].ROAS() < losers[j].ROAS()
	})

	if len(losers) > summaryBucketSize {
		losers = losers[:summaryBucketSize]
	}

	return losers
}

// BuildExecutiveSummary monta as frases de vitórias e preocupações do relatório
func BuildExecutiveSummary(campaigns []*domain.Campaign) *domain.ExecutiveSummary {
	summary := &domain.ExecutiveSummary{
		Wins:     make([]string, 0, summaryBucketSize),
		Concerns: make([]string, 0, summaryBucketSize),
	}

	for _, c := range TopPerformers(campaigns) {
		summary.Wins = append(summary.Wins, fmt.Sprintf(
			"%s está entregando ROAS de %.2fx com investimento de %.2f",
			c.Name, c.ROAS(), c.Spend,
		))
	}

	for _, c := range UnderPerformers(campaigns) {
		summary.Concerns = append(summary.Concerns, fmt.Sprintf(
			"%s está com ROAS de %.2fx após gastar %.2f, abaixo do ponto de equilíbrio",
			c.Name, c.ROAS(), c.Spend,
		))
	}

	return summary
}

// BuildInsights gera as observações textuais exibidas no rodapé do relatório
func BuildInsights(summary *domain.KPISummary, groups []*domain.PlatformGroup) []string {
	insights := make([]string, 0, 3)

	if summary.ROAS > 0 {
		insights = append(insights, fmt.Sprintf(
			"O ROAS combinado do período foi de %.2fx sobre um investimento total de %.2f",
			summary.ROAS, summary.TotalSpend,
		))
	}

	if len(groups) > 0 {
		best := groups[0]
		for _, g := range groups[1:] {
			if g.ROAS > best.ROAS {
				best = g
			}
		}
		if best.ROAS > 0 {
			insights = append(insights, fmt.Sprintf(
				"%s foi a plataforma mais eficiente, com ROAS de %.2fx em %d campanhas",
				best.Platform, best.ROAS, best.Campaigns,
			))
		}
	}

	if summary.TotalConversions > 0 {
		insights = append(insights, fmt.Sprintf(
			"Foram registradas %d conversões no período, com CPC médio de %.2f",
			summary.TotalConversions, summary.AvgCPC,
		))
	}

	return insights
}

// BuildReportMetrics condensa o agregado no objeto persistido na coluna
// metrics. TopCampaign é a de maior receita e TopPlatform a com mais
// campanhas no período.
func BuildReportMetrics(campaigns []*domain.Campaign) *domain.ReportMetrics {
	summary := Summarize(campaigns)

	metrics := &domain.ReportMetrics{
		TotalSpend:       summary.TotalSpend,
		TotalRevenue:     summary.TotalRevenue,
		BlendedRoas:      summary.ROAS,
		TotalConversions: summary.TotalConversions,
		AvgCTR:           summary.AvgCTR,
		AvgCPC:           summary.AvgCPC,
	}

	var topCampaign *domain.Campaign
	for _, c := range campaigns {
		if topCampaign == nil || c.Revenue > topCampaign.Revenue {
			topCampaign = c
		}
	}
	if topCampaign != nil {
		metrics.TopCampaign = topCampaign.Name
	}

	var topGroup *domain.PlatformGroup
	for _, g := range PlatformBreakdown(campaigns) {
		if topGroup == nil || g.Campaigns > topGroup.Campaigns {
			topGroup = g
		}
	}
	if topGroup != nil {
		metrics.TopPlatform = string(topGroup.Platform)
	}

	return metrics
}
