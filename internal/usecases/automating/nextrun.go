package automating

import (
	"strings"
	"time"
)

// NextRun calcula a próxima execução prevista a partir do texto livre do
// gatilho. O match é por substring sensível a maiúsculas e a ordem das
// palavras-chave define a precedência quando o gatilho menciona mais de
// uma (Daily ganha de Hourly). Gatilho sem palavra-chave reconhecida cai
// no padrão de 24 horas.
func NextRun(trigger string, from time.Time) time.Time {
	switch {
	case strings.Contains(trigger, "Daily"):
		return from.AddDate(0, 0, 1)
	case strings.Contains(trigger, "Weekly"):
		return from.AddDate(0, 0, 7)
	case strings.Contains(trigger, "Monthly"):
		// AddDate normaliza fim de mês (31 de janeiro vira 2 ou 3 de março)
		return from.AddDate(0, 1, 0)
	case strings.Contains(trigger, "Hourly"):
		return from.Add(time.Hour)
	default:
		return from.AddDate(0, 0, 1)
	}
}
