package automating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRun(t *testing.T) {
	from := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		trigger  string
		from     time.Time
		expected time.Time
	}{
		{
			name:     "Gatilho Hourly deve agendar para uma hora depois",
			trigger:  "Hourly budget check",
			from:     from,
			expected: from.Add(time.Hour),
		},
		{
			name:     "Gatilho Daily deve agendar para o dia seguinte",
			trigger:  "Daily at 9:00 AM",
			from:     from,
			expected: from.AddDate(0, 0, 1),
		},
		{
			name:     "Gatilho Weekly deve agendar para sete dias depois",
			trigger:  "Weekly on Monday",
			from:     from,
			expected: from.AddDate(0, 0, 7),
		},
		{
			name:     "Gatilho Monthly deve agendar para o mês seguinte",
			trigger:  "Monthly on day 1",
			from:     from,
			expected: from.AddDate(0, 1, 0),
		},
		{
			name:     "Gatilho sem palavra-chave cai no padrão de 24 horas",
			trigger:  "When ROAS drops below 2.0",
			from:     from,
			expected: from.AddDate(0, 0, 1),
		},
		{
			name:     "Match é sensível a maiúsculas, daily minúsculo usa o padrão",
			trigger:  "daily at noon",
			from:     from,
			expected: from.AddDate(0, 0, 1),
		},
		{
			name:     "Gatilho com Daily e Hourly segue a precedência do Daily",
			trigger:  "Daily digest with Hourly stats",
			from:     from,
			expected: from.AddDate(0, 0, 1),
		},
		{
			name:     "Gatilho com Weekly e Monthly segue a precedência do Weekly",
			trigger:  "Weekly rollup of Monthly goals",
			from:     from,
			expected: from.AddDate(0, 0, 7),
		},
		{
			name:     "Monthly em 31 de janeiro normaliza para março",
			trigger:  "Monthly review",
			from:     time.Date(2025, time.January, 31, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NextRun(tt.trigger, tt.from)
			assert.Equal(t, tt.expected, result)
		})
	}
}
