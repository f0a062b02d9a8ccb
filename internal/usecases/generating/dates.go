package generating

import "time"

// dailyRange retorna n datas consecutivas a partir de start, em UTC à meia-noite
func dailyRange(start time.Time, n int) []time.Time {
	first := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = first.AddDate(0, 0, i)
	}
	return out
}
