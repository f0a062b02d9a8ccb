package generating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerator_Generate_DefaultYear(t *testing.T) {
	ds, err := Generate()
	require.NoError(t, err)

	assert.Equal(t, 366, ds.Len(), "2024 é ano bissexto")
	assert.Equal(t, date(2024, 1, 1), ds.Start())
	assert.Equal(t, date(2024, 12, 31), ds.End())
	assert.Equal(t, date(2024, 1, 1), ds.At(0).Date)
	assert.Equal(t, date(2024, 12, 31), ds.At(ds.Len()-1).Date)
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	g := NewGenerator()
	cfg := domain.DefaultDatasetConfig()

	first, err := g.Generate(cfg)
	require.NoError(t, err)
	second, err := g.Generate(cfg)
	require.NoError(t, err)

	require.Equal(t, first.Len(), second.Len())
	for i := 0; i < first.Len(); i++ {
		assert.Equal(t, first.At(i), second.At(i), "registro %d difere", i)
	}
}

func TestGenerator_Generate_SeedChangesValues(t *testing.T) {
	g := NewGenerator()
	cfg := domain.DefaultDatasetConfig()

	a, err := g.Generate(cfg)
	require.NoError(t, err)

	cfg.Seed = 7
	b, err := g.Generate(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a.At(0).Sales, b.At(0).Sales)
	assert.Equal(t, a.At(0).Date, b.At(0).Date)
}

func TestGenerator_Generate_KnownValuesForSeed42(t *testing.T) {
	ds, err := Generate()
	require.NoError(t, err)

	// Primeiros desvios normais padrão da semente 42
	assert.InDelta(t, 100+15*0.4967141530112327, ds.At(0).Sales, 1e-9)
	assert.InDelta(t, 100+15*-0.13826430117118466, ds.At(1).Sales, 1e-9)
	assert.InDelta(t, 100+15*0.6476885381006925, ds.At(2).Sales, 1e-9)
	assert.InDelta(t, 100+15*1.5230298564080254, ds.At(3).Sales, 1e-9)
}

func TestGenerator_Generate_Invariants(t *testing.T) {
	ds, err := Generate()
	require.NoError(t, err)

	records := ds.Records()
	for i, r := range records {
		assert.GreaterOrEqual(t, r.ConversionRate, ConversionRateLow)
		assert.Less(t, r.ConversionRate, ConversionRateHigh)

		if i > 0 {
			assert.Equal(t, records[i-1].Date.AddDate(0, 0, 1), r.Date, "lacuna antes do registro %d", i)
		}
	}
}

func TestGenerator_Generate_DistributionsAreRoughlyRight(t *testing.T) {
	ds, err := Generate()
	require.NoError(t, err)

	mean := func(xs []float64) float64 {
		sum := 0.0
		for _, x := range xs {
			sum += x
		}
		return sum / float64(len(xs))
	}

	assert.InDelta(t, SalesMean, mean(ds.Sales()), 3)
	assert.InDelta(t, VisitorsMean, mean(ds.Visitors()), 10)
	assert.InDelta(t, 0.2, mean(ds.ConversionRates()), 0.02)
}

func TestGenerator_Generate_Ranges(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{name: "um único dia", start: date(2024, 3, 1), end: date(2024, 3, 1), expected: 1},
		{name: "ano não bissexto", start: date(2023, 1, 1), end: date(2023, 12, 31), expected: 365},
		{name: "fevereiro bissexto", start: date(2024, 2, 1), end: date(2024, 2, 29), expected: 29},
		{name: "virada de ano", start: date(2023, 12, 30), end: date(2024, 1, 2), expected: 4},
	}

	g := NewGenerator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds, err := g.Generate(domain.DatasetConfig{StartDate: tt.start, EndDate: tt.end, Seed: 42})
			require.NoError(t, err)

			expected := int(tt.end.Sub(tt.start).Hours()/24) + 1
			assert.Equal(t, expected, ds.Len())
			assert.Equal(t, tt.expected, ds.Len())
			assert.Equal(t, tt.start, ds.Start())
			assert.Equal(t, tt.end, ds.End())
		})
	}
}

func TestGenerator_Generate_InvalidRange(t *testing.T) {
	_, err := NewGenerator().Generate(domain.DatasetConfig{
		StartDate: date(2024, 12, 31),
		EndDate:   date(2024, 1, 1),
		Seed:      42,
	})
	require.Error(t, err)

	var rangeErr *domain.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, date(2024, 1, 1), rangeErr.End)
}

func TestGenerator_Generate_RecordsAreImmutable(t *testing.T) {
	ds, err := Generate()
	require.NoError(t, err)

	original := ds.At(0).Sales
	records := ds.Records()
	records[0].Sales = -1

	sales := ds.Sales()
	sales[0] = -1

	assert.Equal(t, original, ds.At(0).Sales)
}

func TestSampler_Uniform_StaysInRange(t *testing.T) {
	s := newSampler(1)
	for i := 0; i < 10000; i++ {
		v := s.float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
