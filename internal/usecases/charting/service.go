// Package charting transforma o conjunto de dados nas visões de cada tipo de gráfico
package charting

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
)

// Títulos padrão de cada gráfico
var defaultTitles = map[domain.ChartKind]string{
	domain.ChartLine:    "Daily Sales & Visitors",
	domain.ChartBar:     "Monthly Sales",
	domain.ChartScatter: "Visitors vs Sales",
	domain.ChartPie:     "Sales Share by Quarter",
	domain.ChartHeatmap: "Average Sales by Weekday and Month",
}

type Charter interface {
	// Build monta a especificação do gráfico a partir do conjunto de dados
	Build(ds *domain.Dataset, kind domain.ChartKind, opts domain.ChartOptions) (*domain.ChartSpec, error)

	// Render desenha a especificação em PNG
	Render(spec *domain.ChartSpec, w io.Writer) error
}

type Service struct {
	width        int
	height       int
	defaultTheme domain.ChartTheme
}

func NewService(cfg *config.Config) Charter {
	theme, err := domain.ParseChartTheme(cfg.Chart.Theme)
	if err != nil {
		theme = domain.ThemeDefault
	}

	return &Service{
		width:        cfg.Chart.Width,
		height:       cfg.Chart.Height,
		defaultTheme: theme,
	}
}

func (s *Service) Build(ds *domain.Dataset, kind domain.ChartKind, opts domain.ChartOptions) (*domain.ChartSpec, error) {
	theme := opts.Theme
	if theme == "" {
		theme = s.defaultTheme
	}
	if _, err := domain.ParseChartTheme(string(theme)); err != nil {
		return nil, err
	}

	spec := &domain.ChartSpec{
		Kind:  kind,
		Title: opts.Title,
		Theme: theme,
	}
	if spec.Title == "" {
		spec.Title = defaultTitles[kind]
	}

	records := ds.Records()

	switch kind {
	case domain.ChartLine:
		buildLine(spec, records)
	case domain.ChartBar:
		buildBar(spec, records)
	case domain.ChartScatter:
		if err := buildScatter(spec, records, opts.Color); err != nil {
			return nil, err
		}
	case domain.ChartPie:
		buildPie(spec, records)
	case domain.ChartHeatmap:
		spec.XLabel = "month"
		spec.YLabel = "weekday"
		spec.Heatmap = pivotWeekdayMonth(records, salesOf)
	default:
		return nil, errors.Wrapf(domain.ErrUnknownChartKind, "charting: %q", kind)
	}

	return spec, nil
}

func buildLine(spec *domain.ChartSpec, records []domain.DailyRecord) {
	sales := domain.ChartSeries{Name: domain.FieldSales, Points: make([]domain.ChartPoint, len(records))}
	visitors := domain.ChartSeries{Name: domain.FieldVisitors, Points: make([]domain.ChartPoint, len(records))}

	for i, r := range records {
		label := r.Date.Format(domain.DateLayout)
		sales.Points[i] = domain.ChartPoint{Label: label, Y: r.Sales}
		visitors.Points[i] = domain.ChartPoint{Label: label, Y: r.Visitors}
	}

	spec.XLabel = "date"
	spec.YLabel = "value"
	spec.Series = []domain.ChartSeries{sales, visitors}
}

func buildBar(spec *domain.ChartSpec, records []domain.DailyRecord) {
	spec.XLabel = "month"
	spec.YLabel = domain.FieldSales
	spec.Series = []domain.ChartSeries{seriesFromBuckets(domain.FieldSales, resample(records, monthKey, salesOf))}
}

func buildPie(spec *domain.ChartSpec, records []domain.DailyRecord) {
	spec.Series = []domain.ChartSeries{seriesFromBuckets(domain.FieldSales, resample(records, quarterKey, salesOf))}
}

func buildScatter(spec *domain.ChartSpec, records []domain.DailyRecord, colorBy string) error {
	if colorBy == "" {
		colorBy = domain.FieldConversionRate
	}

	colorOf, ok := fieldAccessor(colorBy)
	if !ok {
		return errors.Wrapf(domain.ErrUnknownField, "charting: cor por %q", colorBy)
	}

	series := domain.ChartSeries{Name: domain.FieldSales, Points: make([]domain.ChartPoint, len(records))}
	for i, r := range records {
		series.Points[i] = domain.ChartPoint{
			Label: r.Date.Format(domain.DateLayout),
			X:     r.Visitors,
			Y:     r.Sales,
			Color: colorOf(r),
		}
	}

	spec.XLabel = domain.FieldVisitors
	spec.YLabel = domain.FieldSales
	spec.ColorBy = colorBy
	spec.Series = []domain.ChartSeries{series}
	return nil
}

func seriesFromBuckets(name string, buckets []bucket) domain.ChartSeries {
	series := domain.ChartSeries{Name: name, Points: make([]domain.ChartPoint, len(buckets))}
	for i, b := range buckets {
		series.Points[i] = domain.ChartPoint{Label: b.Key, Y: b.Sum}
	}
	return series
}

func fieldAccessor(field string) (func(domain.DailyRecord) float64, bool) {
	switch field {
	case domain.FieldSales:
		return func(r domain.DailyRecord) float64 { return r.Sales }, true
	case domain.FieldVisitors:
		return func(r domain.DailyRecord) float64 { return r.Visitors }, true
	case domain.FieldConversionRate:
		return func(r domain.DailyRecord) float64 { return r.ConversionRate }, true
	}
	return nil, false
}
