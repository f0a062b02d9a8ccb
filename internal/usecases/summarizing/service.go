// Package summarizing calcula as estatísticas exibidas ao lado dos gráficos
package summarizing

import (
	"math"
	"sort"

	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/pkg/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Describe calcula count, mean, std amostral, min, quartis e max de cada campo numérico
func Describe(ds *domain.Dataset) domain.Summary {
	summary := domain.Summary{Fields: make([]domain.FieldSummary, 0, len(domain.NumericFields))}
	for _, field := range domain.NumericFields {
		values, _ := ds.Column(field)
		summary.Fields = append(summary.Fields, describeField(field, values))
	}
	return summary
}

func describeField(field string, values []float64) domain.FieldSummary {
	fs := domain.FieldSummary{Field: field, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		fs.Mean, fs.Std, fs.Min, fs.P25, fs.P50, fs.P75, fs.Max = nan, nan, nan, nan, nan, nan, nan
		return fs
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	fs.Mean = stat.Mean(values, nil)
	fs.Std = math.NaN()
	if len(values) > 1 {
		fs.Std = stat.StdDev(values, nil)
	}
	fs.Min = floats.Min(values)
	fs.Max = floats.Max(values)
	fs.P25 = Percentile(sorted, 0.25)
	fs.P50 = Percentile(sorted, 0.50)
	fs.P75 = Percentile(sorted, 0.75)

	return fs
}

// Percentile interpola linearamente entre as posições vizinhas de sorted,
// com posição (n-1)*p. sorted precisa estar em ordem crescente.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	pos := p * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}

	frac := pos - float64(lower)
	return sorted[lower] + (sorted[upper]-sorted[lower])*frac
}

// KPIs calcula os indicadores principais do conjunto de dados.
// Vendas e visitantes saem com duas casas; a taxa de conversão não é arredondada.
func KPIs(ds *domain.Dataset) domain.KPIs {
	kpis := domain.KPIs{Records: ds.Len()}
	if ds.Len() == 0 {
		return kpis
	}

	sales := ds.Sales()
	kpis.StartDate = ds.Start().Format(domain.DateLayout)
	kpis.EndDate = ds.End().Format(domain.DateLayout)
	kpis.TotalSales = utils.RoundWithTwoDecimalPlace(floats.Sum(sales))
	kpis.AverageSales = utils.RoundWithTwoDecimalPlace(stat.Mean(sales, nil))
	kpis.AverageVisitors = utils.RoundWithTwoDecimalPlace(stat.Mean(ds.Visitors(), nil))
	kpis.AverageConversionRate = stat.Mean(ds.ConversionRates(), nil)

	return kpis
}

// Summarize junta KPIs e describe em uma única resposta
func Summarize(ds *domain.Dataset) *domain.SummaryResponse {
	return &domain.SummaryResponse{
		KPIs:     KPIs(ds),
		Describe: Describe(ds),
	}
}
