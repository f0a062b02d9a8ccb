package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
)

type fakeSweeper struct {
	mu      sync.Mutex
	removed []int
	calls   []time.Time
	count   int
}

func (f *fakeSweeper) SweepExpired(_ context.Context, now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, now)
	if len(f.removed) == 0 {
		return 0
	}
	n := f.removed[0]
	f.removed = f.removed[1:]
	f.count -= n
	return n
}

func (f *fakeSweeper) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func newCleanupConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		Session: config.Session{CleanupEnabled: enabled, CleanupCron: cron},
	}
}

func TestSessionCleanupService_RunCleanup(t *testing.T) {
	sweeper := &fakeSweeper{removed: []int{3, 2}, count: 10}
	svc := NewSessionCleanupService(sweeper, newCleanupConfig(true, "*/5 * * * *"))

	fixed := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	assert.Equal(t, 3, svc.RunCleanup(context.Background()))
	assert.Equal(t, 2, svc.RunCleanup(context.Background()))

	require.Len(t, sweeper.calls, 2)
	assert.Equal(t, fixed, sweeper.calls[0])

	status := svc.GetStatus()
	assert.Equal(t, 2, status["last_removed"])
	assert.Equal(t, 5, status["total_removed"])
	assert.Equal(t, 5, status["active_sessions"])
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, fixed, status["last_sync_completed_at"])
}

func TestSessionCleanupService_SkipsWhileRunning(t *testing.T) {
	sweeper := &fakeSweeper{removed: []int{1}}
	svc := NewSessionCleanupService(sweeper, newCleanupConfig(true, "*/5 * * * *"))

	svc.syncRunning = true
	assert.Equal(t, 0, svc.RunCleanup(context.Background()))
	assert.Empty(t, sweeper.calls)
}

func TestSessionCleanupService_Start(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		cron    string
		wantErr bool
	}{
		{name: "desabilitado não agenda", enabled: false, cron: "inválida"},
		{name: "cron válida", enabled: true, cron: "*/5 * * * *"},
		{name: "cron inválida", enabled: true, cron: "não é cron", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			svc := NewSessionCleanupService(&fakeSweeper{}, newCleanupConfig(tt.enabled, tt.cron))
			err := svc.Start(ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.enabled, svc.scheduler.IsRunning())
		})
	}
}

func TestSessionCleanupService_TriggerManualSync(t *testing.T) {
	sweeper := &fakeSweeper{removed: []int{4}, count: 4}
	svc := NewSessionCleanupService(sweeper, newCleanupConfig(false, ""))

	svc.TriggerManualSync()

	assert.Eventually(t, func() bool {
		return svc.GetStatus()["total_removed"] == 4
	}, time.Second, 10*time.Millisecond)
}
