// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DateLayout = "2006-01-02"

// DailyRecord representa uma linha do conjunto de dados sintético
type DailyRecord struct {
	Date           time.Time `json:"date"`
	Sales          float64   `json:"sales"`
	Visitors       float64   `json:"visitors"`
	ConversionRate float64   `json:"conversion_rate"`
}

type dailyRecordJSON struct {
	Date           string  `json:"date"`
	Sales          float64 `json:"sales"`
	Visitors       float64 `json:"visitors"`
	ConversionRate float64 `json:"conversion_rate"`
}

// MarshalJSON serializa a data no formato yyyy-mm-dd
func (r DailyRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(dailyRecordJSON{
		Date:           r.Date.Format(DateLayout),
		Sales:          r.Sales,
		Visitors:       r.Visitors,
		ConversionRate: r.ConversionRate,
	})
}

func (r *DailyRecord) UnmarshalJSON(data []byte) error {
	var raw dailyRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	date, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return err
	}

	*r = DailyRecord{
		Date:           date,
		Sales:          raw.Sales,
		Visitors:       raw.Visitors,
		ConversionRate: raw.ConversionRate,
	}
	return nil
}

// DatasetConfig define o intervalo (inclusivo) e a semente da geração
type DatasetConfig struct {
	StartDate time.Time
	EndDate   time.Time
	Seed      uint32
}

// DefaultDatasetConfig retorna a configuração fixa: ano de 2024, semente 42
func DefaultDatasetConfig() DatasetConfig {
	return DatasetConfig{
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
		Seed:      42,
	}
}

// Days retorna a quantidade de dias do intervalo, incluindo as duas pontas
func (c DatasetConfig) Days() int {
	start := truncateDay(c.StartDate)
	end := truncateDay(c.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Validate retorna InvalidRangeError quando a data final precede a inicial
func (c DatasetConfig) Validate() error {
	if truncateDay(c.EndDate).Before(truncateDay(c.StartDate)) {
		return &InvalidRangeError{Start: c.StartDate, End: c.EndDate}
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Dataset é a sequência imutável de registros diários em ordem crescente de data
type Dataset struct {
	config  DatasetConfig
	records []DailyRecord
}

// NewDataset copia os registros; o chamador não consegue mutar o resultado
func NewDataset(config DatasetConfig, records []DailyRecord) *Dataset {
	cp := make([]DailyRecord, len(records))
	copy(cp, records)
	return &Dataset{config: config, records: cp}
}

func (d *Dataset) Config() DatasetConfig { return d.config }

func (d *Dataset) Len() int { return len(d.records) }

func (d *Dataset) At(i int) DailyRecord { return d.records[i] }

func (d *Dataset) Start() time.Time {
	if len(d.records) == 0 {
		return time.Time{}
	}
	return d.records[0].Date
}

func (d *Dataset) End() time.Time {
	if len(d.records) == 0 {
		return time.Time{}
	}
	return d.records[len(d.records)-1].Date
}

// Records retorna uma cópia dos registros
func (d *Dataset) Records() []DailyRecord {
	cp := make([]DailyRecord, len(d.records))
	copy(cp, d.records)
	return cp
}

// Between retorna os registros com data entre from e to (inclusivo).
// Datas zeradas não restringem o intervalo.
func (d *Dataset) Between(from, to time.Time) []DailyRecord {
	out := make([]DailyRecord, 0, len(d.records))
	for _, r := range d.records {
		if !from.IsZero() && r.Date.Before(from) {
			continue
		}
		if !to.IsZero() && r.Date.After(to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (d *Dataset) Sales() []float64 {
	return d.column(func(r DailyRecord) float64 { return r.Sales })
}

func (d *Dataset) Visitors() []float64 {
	return d.column(func(r DailyRecord) float64 { return r.Visitors })
}

func (d *Dataset) ConversionRates() []float64 {
	return d.column(func(r DailyRecord) float64 { return r.ConversionRate })
}

// Column retorna os valores de um campo numérico pelo nome JSON
func (d *Dataset) Column(field string) ([]float64, bool) {
	switch field {
	case FieldSales:
		return d.Sales(), true
	case FieldVisitors:
		return d.Visitors(), true
	case FieldConversionRate:
		return d.ConversionRates(), true
	}
	return nil, false
}

func (d *Dataset) column(get func(DailyRecord) float64) []float64 {
	out := make([]float64, len(d.records))
	for i, r := range d.records {
		out[i] = get(r)
	}
	return out
}

// Nomes dos campos numéricos
const (
	FieldSales          = "sales"
	FieldVisitors       = "visitors"
	FieldConversionRate = "conversion_rate"
)

// NumericFields lista os campos numéricos na ordem das colunas
var NumericFields = []string{FieldSales, FieldVisitors, FieldConversionRate}
