package summarizing

import (
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/generating"
)

func smallDataset() *domain.Dataset {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.DailyRecord{
		{Date: start, Sales: 1, Visitors: 10, ConversionRate: 0.1},
		{Date: start.AddDate(0, 0, 1), Sales: 2, Visitors: 20, ConversionRate: 0.2},
		{Date: start.AddDate(0, 0, 2), Sales: 3, Visitors: 30, ConversionRate: 0.2},
		{Date: start.AddDate(0, 0, 3), Sales: 4, Visitors: 40, ConversionRate: 0.1},
	}
	cfg := domain.DatasetConfig{StartDate: start, EndDate: start.AddDate(0, 0, 3), Seed: 1}
	return domain.NewDataset(cfg, records)
}

func TestDescribe_SmallDataset(t *testing.T) {
	summary := Describe(smallDataset())
	require.Len(t, summary.Fields, 3)

	sales, ok := summary.Get(domain.FieldSales)
	require.True(t, ok)

	assert.Equal(t, 4, sales.Count)
	assert.InDelta(t, 2.5, sales.Mean, 1e-12)
	assert.InDelta(t, 1.2909944487358056, sales.Std, 1e-12)
	assert.Equal(t, 1.0, sales.Min)
	assert.InDelta(t, 1.75, sales.P25, 1e-12)
	assert.InDelta(t, 2.5, sales.P50, 1e-12)
	assert.InDelta(t, 3.25, sales.P75, 1e-12)
	assert.Equal(t, 4.0, sales.Max)

	visitors, ok := summary.Get(domain.FieldVisitors)
	require.True(t, ok)
	assert.InDelta(t, 25.0, visitors.Mean, 1e-12)
}

func TestDescribe_GeneratedDataset(t *testing.T) {
	ds, err := generating.Generate()
	require.NoError(t, err)

	summary := Describe(ds)
	for _, fs := range summary.Fields {
		assert.Equal(t, 366, fs.Count, fs.Field)
		assert.LessOrEqual(t, fs.Min, fs.P25, fs.Field)
		assert.LessOrEqual(t, fs.P25, fs.P50, fs.Field)
		assert.LessOrEqual(t, fs.P50, fs.P75, fs.Field)
		assert.LessOrEqual(t, fs.P75, fs.Max, fs.Field)
	}

	rates, _ := summary.Get(domain.FieldConversionRate)
	assert.GreaterOrEqual(t, rates.Min, 0.1)
	assert.Less(t, rates.Max, 0.3)
}

func TestPercentile(t *testing.T) {
	tests := []struct {
		name     string
		sorted   []float64
		p        float64
		expected float64
	}{
		{name: "um valor", sorted: []float64{7}, p: 0.5, expected: 7},
		{name: "mediana par", sorted: []float64{1, 2, 3, 4}, p: 0.5, expected: 2.5},
		{name: "mediana ímpar", sorted: []float64{1, 2, 3}, p: 0.5, expected: 2},
		{name: "mínimo", sorted: []float64{1, 2, 3}, p: 0, expected: 1},
		{name: "máximo", sorted: []float64{1, 2, 3}, p: 1, expected: 3},
		{name: "interpolado", sorted: []float64{10, 20, 30, 40, 50}, p: 0.3, expected: 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Percentile(tt.sorted, tt.p), 1e-12)
		})
	}
}

func TestKPIs(t *testing.T) {
	kpis := KPIs(smallDataset())

	assert.Equal(t, 4, kpis.Records)
	assert.Equal(t, "2024-01-01", kpis.StartDate)
	assert.Equal(t, "2024-01-04", kpis.EndDate)
	assert.InDelta(t, 10.0, kpis.TotalSales, 1e-12)
	assert.InDelta(t, 2.5, kpis.AverageSales, 1e-12)
	assert.InDelta(t, 25.0, kpis.AverageVisitors, 1e-12)
	assert.InDelta(t, 0.15, kpis.AverageConversionRate, 1e-12)
}

func TestKPIs_Empty(t *testing.T) {
	ds := domain.NewDataset(domain.DefaultDatasetConfig(), nil)
	kpis := KPIs(ds)
	assert.Equal(t, 0, kpis.Records)
	assert.Empty(t, kpis.StartDate)
}

func TestKPIs_RoundsSalesAndVisitors(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.DailyRecord{
		{Date: start, Sales: 100.123, Visitors: 50.005, ConversionRate: 0.1234},
		{Date: start.AddDate(0, 0, 1), Sales: 100.001, Visitors: 50, ConversionRate: 0.2},
	}
	cfg := domain.DatasetConfig{StartDate: start, EndDate: start.AddDate(0, 0, 1), Seed: 1}

	kpis := KPIs(domain.NewDataset(cfg, records))
	assert.Equal(t, 200.12, kpis.TotalSales)
	assert.Equal(t, 100.06, kpis.AverageSales)
	assert.Equal(t, 50.0, kpis.AverageVisitors)
	assert.InDelta(t, 0.1617, kpis.AverageConversionRate, 1e-12)
}

func TestSummarize_SingleRecordStdIsNull(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []domain.DailyRecord{{Date: start, Sales: 10, Visitors: 5, ConversionRate: 0.2}}
	cfg := domain.DatasetConfig{StartDate: start, EndDate: start, Seed: 1}

	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(Summarize(domain.NewDataset(cfg, records)))
	require.NoError(t, err)

	var decoded struct {
		Describe struct {
			Fields []map[string]any `json:"fields"`
		} `json:"describe"`
	}
	require.NoError(t, jsoniter.Unmarshal(body, &decoded))
	require.Len(t, decoded.Describe.Fields, 3)

	sales := decoded.Describe.Fields[0]
	assert.Nil(t, sales["std"])
	assert.Equal(t, 10.0, sales["mean"])
	assert.Equal(t, 10.0, sales["50%"])
}
