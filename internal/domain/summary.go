package domain

import (
	"math"

	jsoniter "github.com/json-iterator/go"
)

// FieldSummary segue o formato do describe(): count, mean, std, min, quartis e max
type FieldSummary struct {
	Field string  `json:"field"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std"`
	Min   float64 `json:"min"`
	P25   float64 `json:"25%"`
	P50   float64 `json:"50%"`
	P75   float64 `json:"75%"`
	Max   float64 `json:"max"`
}

// MarshalJSON troca NaN por null; std de um único registro não é definido
func (f FieldSummary) MarshalJSON() ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(struct {
		Field string   `json:"field"`
		Count int      `json:"count"`
		Mean  *float64 `json:"mean"`
		Std   *float64 `json:"std"`
		Min   *float64 `json:"min"`
		P25   *float64 `json:"25%"`
		P50   *float64 `json:"50%"`
		P75   *float64 `json:"75%"`
		Max   *float64 `json:"max"`
	}{
		Field: f.Field,
		Count: f.Count,
		Mean:  nullable(f.Mean),
		Std:   nullable(f.Std),
		Min:   nullable(f.Min),
		P25:   nullable(f.P25),
		P50:   nullable(f.P50),
		P75:   nullable(f.P75),
		Max:   nullable(f.Max),
	})
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type Summary struct {
	Fields []FieldSummary `json:"fields"`
}

// Get retorna o resumo de um campo pelo nome
func (s Summary) Get(field string) (FieldSummary, bool) {
	for _, f := range s.Fields {
		if f.Field == field {
			return f, true
		}
	}
	return FieldSummary{}, false
}

// KPIs são os indicadores exibidos acima dos gráficos
type KPIs struct {
	Records               int     `json:"records"`
	StartDate             string  `json:"start_date"`
	EndDate               string  `json:"end_date"`
	TotalSales            float64 `json:"total_sales"`
	AverageSales          float64 `json:"average_sales"`
	AverageVisitors       float64 `json:"average_visitors"`
	AverageConversionRate float64 `json:"average_conversion_rate"`
}

type SummaryResponse struct {
	KPIs     KPIs    `json:"kpis"`
	Describe Summary `json:"describe"`
}
