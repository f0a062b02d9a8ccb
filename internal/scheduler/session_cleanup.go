// Package scheduler contém os serviços agendados da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
)

// SessionSweeper é a parte do gerenciador de sessões usada pela limpeza
type SessionSweeper interface {
	SweepExpired(ctx context.Context, now time.Time) int
	Count() int
}

type SessionCleanupConfig struct {
	CronSchedule string
	Enabled      bool
}

type SessionCleanupService struct {
	scheduler           *gocron.Scheduler
	sweeper             SessionSweeper
	config              SessionCleanupConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRemoved         int
	totalRemoved        int
	now                 func() time.Time
}

func NewSessionCleanupService(sweeper SessionSweeper, cfg *config.Config) *SessionCleanupService {
	cleanupConfig := SessionCleanupConfig{
		CronSchedule: cfg.Session.CleanupCron, // Default: a cada 5 minutos
		Enabled:      cfg.Session.CleanupEnabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": cleanupConfig.CronSchedule,
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração do agendador de limpeza de sessões carregada")

	return &SessionCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		sweeper:   sweeper,
		config:    cleanupConfig,
		now:       time.Now,
	}
}

func (s *SessionCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza de sessões desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza de sessões")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunCleanup(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de sessões: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza de sessões")
		s.scheduler.Stop()
	}()

	return nil
}

// RunCleanup remove as sessões expiradas; ignora a chamada se já houver uma em andamento
func (s *SessionCleanupService) RunCleanup(ctx context.Context) int {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Limpeza de sessões já está em execução")
		return 0
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	removed := s.sweeper.SweepExpired(ctx, s.now())

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	s.lastRemoved = removed
	s.totalRemoved += removed
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":  removed,
		"sessions": s.sweeper.Count(),
	}).Info("Limpeza de sessões concluída")

	return removed
}

// TriggerManualSync inicia manualmente uma limpeza de sessões
func (s *SessionCleanupService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Limpeza de sessões já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de sessões")
	go s.RunCleanup(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *SessionCleanupService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"active_sessions":        s.sweeper.Count(),
		"last_removed":           s.lastRemoved,
		"total_removed":          s.totalRemoved,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
