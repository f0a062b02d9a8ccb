package charting

import (
	"image/color"

	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

type palette struct {
	Background drawing.Color
	Text       drawing.Color
	Grid       drawing.Color
	Series     []drawing.Color
	// Gradiente usado no heatmap e na codificação de cor do scatter
	Low  drawing.Color
	High drawing.Color
}

var palettes = map[domain.ChartTheme]palette{
	domain.ThemeDefault: {
		Background: drawing.ColorWhite,
		Text:       drawing.ColorFromHex("262730"),
		Grid:       drawing.ColorFromHex("e6e6e6"),
		Series: []drawing.Color{
			drawing.ColorFromHex("1f77b4"),
			drawing.ColorFromHex("ff7f0e"),
			drawing.ColorFromHex("2ca02c"),
			drawing.ColorFromHex("d62728"),
			drawing.ColorFromHex("9467bd"),
		},
		Low:  drawing.ColorFromHex("440154"),
		High: drawing.ColorFromHex("fde725"),
	},
	domain.ThemePastel: {
		Background: drawing.ColorFromHex("fcfcfa"),
		Text:       drawing.ColorFromHex("4a4a4a"),
		Grid:       drawing.ColorFromHex("eeeeee"),
		Series: []drawing.Color{
			drawing.ColorFromHex("aec7e8"),
			drawing.ColorFromHex("ffbb78"),
			drawing.ColorFromHex("98df8a"),
			drawing.ColorFromHex("ff9896"),
			drawing.ColorFromHex("c5b0d5"),
		},
		Low:  drawing.ColorFromHex("e0f3f8"),
		High: drawing.ColorFromHex("f4a582"),
	},
	domain.ThemeDark: {
		Background: drawing.ColorFromHex("0e1117"),
		Text:       drawing.ColorFromHex("fafafa"),
		Grid:       drawing.ColorFromHex("31333f"),
		Series: []drawing.Color{
			drawing.ColorFromHex("83c9ff"),
			drawing.ColorFromHex("ffabab"),
			drawing.ColorFromHex("7defa1"),
			drawing.ColorFromHex("ffd16a"),
			drawing.ColorFromHex("d5dae5"),
		},
		Low:  drawing.ColorFromHex("0068c9"),
		High: drawing.ColorFromHex("ff2b2b"),
	},
}

func paletteFor(theme domain.ChartTheme) palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[domain.ThemeDefault]
}

func (p palette) seriesColor(i int) drawing.Color {
	return p.Series[i%len(p.Series)]
}

// gradient interpola entre Low e High para v no intervalo [min, max]
func (p palette) gradient(v, min, max float64) drawing.Color {
	t := 0.5
	if max > min {
		t = (v - min) / (max - min)
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}

	return drawing.Color{
		R: lerp(p.Low.R, p.High.R),
		G: lerp(p.Low.G, p.High.G),
		B: lerp(p.Low.B, p.High.B),
		A: 255,
	}
}

func (p palette) textStyle() chart.Style {
	return chart.Style{
		FontColor:   p.Text,
		StrokeColor: p.Grid,
	}
}

func toRGBA(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
