// Package generating contém o gerador do conjunto de dados sintético
package generating

import (
	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/pkg/log"
)

// Parâmetros das distribuições de cada campo
const (
	SalesMean   = 100.0
	SalesStdDev = 15.0

	VisitorsMean   = 500.0
	VisitorsStdDev = 50.0

	ConversionRateLow  = 0.1
	ConversionRateHigh = 0.3
)

type DatasetGenerator interface {
	Generate(cfg domain.DatasetConfig) (*domain.Dataset, error)
}

type Generator struct{}

func NewGenerator() DatasetGenerator {
	return &Generator{}
}

// Generate produz um registro por dia entre StartDate e EndDate (inclusivo).
// Os sorteios são feitos por coluna: todas as vendas, depois todos os
// visitantes e por fim todas as taxas de conversão.
func (g *Generator) Generate(cfg domain.DatasetConfig) (*domain.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "generating: configuração inválida")
	}

	days := cfg.Days()
	dates := dailyRange(cfg.StartDate, days)

	s := newSampler(cfg.Seed)
	sales := s.normals(days, SalesMean, SalesStdDev)
	visitors := s.normals(days, VisitorsMean, VisitorsStdDev)
	rates := s.uniforms(days, ConversionRateLow, ConversionRateHigh)

	records := make([]domain.DailyRecord, days)
	for i := range records {
		records[i] = domain.DailyRecord{
			Date:           dates[i],
			Sales:          sales[i],
			Visitors:       visitors[i],
			ConversionRate: rates[i],
		}
	}

	log.L.WithFields(log.Fields{
		"dataset_records": days,
		"dataset_seed":    cfg.Seed,
	}).Debug("generating: conjunto de dados gerado")

	return domain.NewDataset(cfg, records), nil
}

// Generate usa a configuração padrão (2024, semente 42)
func Generate() (*domain.Dataset, error) {
	return NewGenerator().Generate(domain.DefaultDatasetConfig())
}
