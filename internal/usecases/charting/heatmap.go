package charting

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Margens do heatmap em pixels
const (
	heatmapTitleHeight = 32
	heatmapLeftMargin  = 48
	heatmapBottom      = 36
	heatmapRightMargin = 16
)

// renderHeatmap desenha a matriz célula a célula; go-chart não tem heatmap
func (s *Service) renderHeatmap(spec *domain.ChartSpec, p palette, w io.Writer) error {
	hm := spec.Heatmap
	if hm == nil || len(hm.Rows) == 0 || len(hm.Columns) == 0 {
		return errors.New("matriz vazia")
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: toRGBA(p.Background)}, image.Point{}, draw.Src)

	text := toRGBA(p.Text)
	drawText(img, spec.Title, heatmapLeftMargin, 20, text)

	gridW := s.width - heatmapLeftMargin - heatmapRightMargin
	gridH := s.height - heatmapTitleHeight - heatmapBottom
	cellW := gridW / len(hm.Columns)
	cellH := gridH / len(hm.Rows)
	if cellW < 1 || cellH < 1 {
		return errors.New("dimensões insuficientes para o heatmap")
	}

	for i, row := range hm.Rows {
		y0 := heatmapTitleHeight + i*cellH
		for j := range hm.Columns {
			x0 := heatmapLeftMargin + j*cellW
			cell := image.Rect(x0, y0, x0+cellW-1, y0+cellH-1)

			fill := toRGBA(p.Grid)
			if hm.Counts == nil || hm.Counts[i][j] > 0 {
				fill = toRGBA(p.gradient(hm.Values[i][j], hm.Min, hm.Max))
			}
			draw.Draw(img, cell, &image.Uniform{C: fill}, image.Point{}, draw.Src)
		}
		drawText(img, row, 8, y0+cellH/2+4, text)
	}

	labelY := heatmapTitleHeight + len(hm.Rows)*cellH + 16
	for j, col := range hm.Columns {
		label := col
		// "2024-03" -> "03" quando não cabe
		if len(label)*7 > cellW && len(label) > 2 {
			label = label[len(label)-2:]
		}
		drawText(img, label, heatmapLeftMargin+j*cellW+2, labelY, text)
	}

	return png.Encode(w, img)
}

func drawText(img *image.RGBA, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
