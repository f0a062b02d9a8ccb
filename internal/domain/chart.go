package domain

import (
	"fmt"
	"strings"
)

// ChartKind é o tipo de gráfico escolhido na barra lateral
type ChartKind string

const (
	ChartLine    ChartKind = "line"
	ChartBar     ChartKind = "bar"
	ChartScatter ChartKind = "scatter"
	ChartPie     ChartKind = "pie"
	ChartHeatmap ChartKind = "heatmap"
)

// ChartKinds lista os tipos na ordem em que aparecem no seletor
var ChartKinds = []ChartKind{ChartLine, ChartBar, ChartScatter, ChartPie, ChartHeatmap}

// ParseChartKind valida o tipo recebido da interface
func ParseChartKind(s string) (ChartKind, error) {
	kind := ChartKind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range ChartKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChartKind, s)
}

// ChartTheme é o tema de cores aplicado na renderização
type ChartTheme string

const (
	ThemeDefault ChartTheme = "default"
	ThemePastel  ChartTheme = "pastel"
	ThemeDark    ChartTheme = "dark"
)

var ChartThemes = []ChartTheme{ThemeDefault, ThemePastel, ThemeDark}

func ParseChartTheme(s string) (ChartTheme, error) {
	if strings.TrimSpace(s) == "" {
		return ThemeDefault, nil
	}
	theme := ChartTheme(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range ChartThemes {
		if t == theme {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// ChartOptions são as opções de exibição enviadas pela interface
type ChartOptions struct {
	Title string     `json:"title"`
	Color string     `json:"color"` // Campo usado para codificação de cor (scatter)
	Theme ChartTheme `json:"theme"`
}

// ChartPoint é um ponto de uma série; X é opcional para séries categóricas
type ChartPoint struct {
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y"`
	Color float64 `json:"color,omitempty"`
}

type ChartSeries struct {
	Name   string       `json:"name"`
	Points []ChartPoint `json:"points"`
}

// HeatmapData representa uma matriz linhas x colunas.
// Células com Counts zero não têm dados e ficam com valor zero.
type HeatmapData struct {
	Rows    []string    `json:"rows"`
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
	Counts  [][]int     `json:"counts"`
	Min     float64     `json:"min"`
	Max     float64     `json:"max"`
}

// ChartSpec é a configuração pronta para o colaborador de gráficos
type ChartSpec struct {
	Kind    ChartKind     `json:"kind"`
	Title   string        `json:"title"`
	Theme   ChartTheme    `json:"theme"`
	XLabel  string        `json:"x_label,omitempty"`
	YLabel  string        `json:"y_label,omitempty"`
	ColorBy string        `json:"color_by,omitempty"`
	Series  []ChartSeries `json:"series,omitempty"`
	Heatmap *HeatmapData  `json:"heatmap,omitempty"`
}
