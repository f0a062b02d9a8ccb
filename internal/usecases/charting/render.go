package charting

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

func (s *Service) Render(spec *domain.ChartSpec, w io.Writer) error {
	if spec == nil {
		return errors.New("charting: especificação vazia")
	}

	p := paletteFor(spec.Theme)

	var err error
	switch spec.Kind {
	case domain.ChartLine:
		err = s.renderLine(spec, p, w)
	case domain.ChartBar:
		err = s.renderBar(spec, p, w)
	case domain.ChartScatter:
		err = s.renderScatter(spec, p, w)
	case domain.ChartPie:
		err = s.renderPie(spec, p, w)
	case domain.ChartHeatmap:
		err = s.renderHeatmap(spec, p, w)
	default:
		return errors.Wrapf(domain.ErrUnknownChartKind, "charting: %q", spec.Kind)
	}

	if err != nil {
		return errors.Wrapf(err, "charting: erro ao renderizar gráfico %s", spec.Kind)
	}
	return nil
}

func (s *Service) background(p palette) chart.Style {
	return chart.Style{
		FillColor: p.Background,
		Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
	}
}

func (s *Service) renderLine(spec *domain.ChartSpec, p palette, w io.Writer) error {
	series := make([]chart.Series, 0, len(spec.Series))
	for i, ser := range spec.Series {
		xs := make([]time.Time, 0, len(ser.Points))
		ys := make([]float64, 0, len(ser.Points))
		for _, pt := range ser.Points {
			t, err := time.Parse(domain.DateLayout, pt.Label)
			if err != nil {
				return errors.Wrapf(err, "data inválida %q", pt.Label)
			}
			xs = append(xs, t)
			ys = append(ys, pt.Y)
		}

		ts := chart.TimeSeries{
			Name:    ser.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: p.seriesColor(i),
				StrokeWidth: 1.5,
			},
		}
		// Visitantes têm outra escala, vão para o eixo secundário
		if i > 0 {
			ts.YAxis = chart.YAxisSecondary
		}
		series = append(series, ts)
	}

	if len(series) == 0 || len(spec.Series[0].Points) < 2 {
		return errors.New("são necessários pelo menos dois pontos")
	}

	ch := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: p.Text},
		Width:      s.width,
		Height:     s.height,
		Background: s.background(p),
		Canvas:     chart.Style{FillColor: p.Background},
		XAxis: chart.XAxis{
			Name:           spec.XLabel,
			NameStyle:      p.textStyle(),
			Style:          p.textStyle(),
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Name:      spec.Series[0].Name,
			NameStyle: p.textStyle(),
			Style:     p.textStyle(),
		},
		YAxisSecondary: chart.YAxis{
			Style: p.textStyle(),
		},
		Series: series,
	}
	if len(spec.Series) > 1 {
		ch.YAxisSecondary.Name = spec.Series[1].Name
		ch.YAxisSecondary.NameStyle = p.textStyle()
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}

func (s *Service) renderBar(spec *domain.ChartSpec, p palette, w io.Writer) error {
	if len(spec.Series) == 0 || len(spec.Series[0].Points) == 0 {
		return errors.New("série vazia")
	}

	points := spec.Series[0].Points
	bars := make([]chart.Value, len(points))
	for i, pt := range points {
		bars[i] = chart.Value{
			Label: pt.Label,
			Value: pt.Y,
			Style: chart.Style{
				FillColor:   p.seriesColor(0),
				StrokeColor: p.seriesColor(0),
			},
		}
	}

	barWidth := (s.width - 120) / (2 * len(points))
	if barWidth < 4 {
		barWidth = 4
	}

	bc := chart.BarChart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: p.Text},
		Width:      s.width,
		Height:     s.height,
		BarWidth:   barWidth,
		BarSpacing: barWidth,
		Background: s.background(p),
		Canvas:     chart.Style{FillColor: p.Background},
		XAxis:      p.textStyle(),
		YAxis: chart.YAxis{
			Name:      spec.YLabel,
			NameStyle: p.textStyle(),
			Style:     p.textStyle(),
		},
		Bars: bars,
	}

	return bc.Render(chart.PNG, w)
}

func (s *Service) renderScatter(spec *domain.ChartSpec, p palette, w io.Writer) error {
	if len(spec.Series) == 0 || len(spec.Series[0].Points) < 2 {
		return errors.New("são necessários pelo menos dois pontos")
	}

	points := spec.Series[0].Points
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	colors := make([]float64, len(points))
	minColor, maxColor := points[0].Color, points[0].Color
	for i, pt := range points {
		xs[i] = pt.X
		ys[i] = pt.Y
		colors[i] = pt.Color
		if pt.Color < minColor {
			minColor = pt.Color
		}
		if pt.Color > maxColor {
			maxColor = pt.Color
		}
	}

	ch := chart.Chart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: p.Text},
		Width:      s.width,
		Height:     s.height,
		Background: s.background(p),
		Canvas:     chart.Style{FillColor: p.Background},
		XAxis: chart.XAxis{
			Name:      spec.XLabel,
			NameStyle: p.textStyle(),
			Style:     p.textStyle(),
		},
		YAxis: chart.YAxis{
			Name:      spec.YLabel,
			NameStyle: p.textStyle(),
			Style:     p.textStyle(),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    spec.Series[0].Name,
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
					DotColorProvider: func(_, _ chart.Range, index int, _, _ float64) drawing.Color {
						return p.gradient(colors[index], minColor, maxColor)
					},
				},
			},
		},
	}

	return ch.Render(chart.PNG, w)
}

func (s *Service) renderPie(spec *domain.ChartSpec, p palette, w io.Writer) error {
	if len(spec.Series) == 0 || len(spec.Series[0].Points) == 0 {
		return errors.New("série vazia")
	}

	points := spec.Series[0].Points
	values := make([]chart.Value, len(points))
	for i, pt := range points {
		values[i] = chart.Value{
			Label: pt.Label,
			Value: pt.Y,
			Style: chart.Style{
				FillColor:   p.seriesColor(i),
				StrokeColor: p.Background,
				FontColor:   p.Text,
			},
		}
	}

	size := s.width
	if s.height < size {
		size = s.height
	}

	pc := chart.PieChart{
		Title:      spec.Title,
		TitleStyle: chart.Style{FontColor: p.Text},
		Width:      size,
		Height:     size,
		Background: s.background(p),
		Canvas:     chart.Style{FillColor: p.Background},
		Values:     values,
	}

	return pc.Render(chart.PNG, w)
}
