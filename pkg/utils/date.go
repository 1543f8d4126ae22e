package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DefaultDateRange devolve o período padrão usado pelos relatórios quando o
// cliente não informa datas: os últimos `days` dias até agora.
func DefaultDateRange(days int) (time.Time, time.Time) {
	end := time.Now()
	start := end.AddDate(0, 0, -days)
	return start, end
}
