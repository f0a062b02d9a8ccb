package charting

import (
	"fmt"
	"time"

	"github.com/vfg2006/dashboard-demo-api/internal/domain"
)

// bucket é um período agregado, mantido na ordem em que aparece nos dados
type bucket struct {
	Key   string
	Sum   float64
	Count int
}

func (b bucket) Mean() float64 {
	if b.Count == 0 {
		return 0
	}
	return b.Sum / float64(b.Count)
}

// resample agrupa os registros pela chave de período e soma o valor escolhido
func resample(records []domain.DailyRecord, key func(time.Time) string, value func(domain.DailyRecord) float64) []bucket {
	index := make(map[string]int)
	buckets := make([]bucket, 0)

	for _, r := range records {
		k := key(r.Date)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, bucket{Key: k})
		}
		buckets[i].Sum += value(r)
		buckets[i].Count++
	}

	return buckets
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

func quarterKey(t time.Time) string {
	return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
}

func salesOf(r domain.DailyRecord) float64 { return r.Sales }

// weekdayLabels segue a ordem segunda a domingo
var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// weekdayRow converte time.Weekday (domingo = 0) para a linha da matriz (segunda = 0)
func weekdayRow(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// pivotWeekdayMonth calcula a média de value por dia da semana (linhas) e mês (colunas)
func pivotWeekdayMonth(records []domain.DailyRecord, value func(domain.DailyRecord) float64) *domain.HeatmapData {
	columnIndex := make(map[string]int)
	columns := make([]string, 0)
	for _, r := range records {
		k := monthKey(r.Date)
		if _, ok := columnIndex[k]; !ok {
			columnIndex[k] = len(columns)
			columns = append(columns, k)
		}
	}

	sums := make([][]float64, len(weekdayLabels))
	counts := make([][]int, len(weekdayLabels))
	for i := range sums {
		sums[i] = make([]float64, len(columns))
		counts[i] = make([]int, len(columns))
	}

	for _, r := range records {
		row := weekdayRow(r.Date.Weekday())
		col := columnIndex[monthKey(r.Date)]
		sums[row][col] += value(r)
		counts[row][col]++
	}

	hm := &domain.HeatmapData{
		Rows:    append([]string(nil), weekdayLabels...),
		Columns: columns,
		Values:  make([][]float64, len(weekdayLabels)),
		Counts:  counts,
	}

	first := true
	for i := range sums {
		hm.Values[i] = make([]float64, len(columns))
		for j := range sums[i] {
			if counts[i][j] == 0 {
				continue
			}
			v := sums[i][j] / float64(counts[i][j])
			hm.Values[i][j] = v
			if first || v < hm.Min {
				hm.Min = v
			}
			if first || v > hm.Max {
				hm.Max = v
			}
			first = false
		}
	}

	return hm
}
