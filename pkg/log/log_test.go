package log

import (
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T, env string) (Logger, *test.Hook) {
	t.Helper()
	t.Setenv("APP_ENV", env)

	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	return &logger{entry: logrus.NewEntry(base)}, hook
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	l, hook := newTestLogger(t, "development")

	l.WithFields(Fields{
		"session_id":    "abc",
		"widget":        "button",
		"dataset_seed":  42,
		"remote_addr":   "127.0.0.1",
		"user_agent":    "curl",
		"status_code":   200,
		"session_count": 3,
	}).Info("teste")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "abc", entry.Data["session_id"])
	assert.Equal(t, "button", entry.Data["widget"])
	assert.Equal(t, 42, entry.Data["dataset_seed"])
	assert.Equal(t, 200, entry.Data["status_code"])
	assert.Equal(t, 3, entry.Data["session_count"])
	assert.NotContains(t, entry.Data, "remote_addr")
	assert.NotContains(t, entry.Data, "user_agent")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	l, hook := newTestLogger(t, "production")

	l.WithField("remote_addr", "127.0.0.1").WithFields(Fields{"user_agent": "curl"}).Warn("teste")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "127.0.0.1", entry.Data["remote_addr"])
	assert.Equal(t, "curl", entry.Data["user_agent"])
}

func TestWithContext_CorrelationAndSession(t *testing.T) {
	l, hook := newTestLogger(t, "development")

	ctx, correlationID := WithCorrelationID(context.Background(), "")
	ctx = WithSessionID(ctx, "sessao-1")

	l.WithContext(ctx).Debug("teste")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Len(t, correlationID, 36)
	assert.Equal(t, correlationID, entry.Data["correlation_id"])
	assert.Equal(t, "sessao-1", entry.Data["session_id"])
}

func TestWithCorrelationID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		want     string
	}{
		{"sem cabeçalho", "", ""},
		{"cabeçalho do cliente", "req-123", "req-123"},
		{"cabeçalho com espaços", "  req-456  ", "req-456"},
		{"cabeçalho longo demais", strings.Repeat("x", 65), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, id := WithCorrelationID(context.Background(), tt.incoming)
			assert.Equal(t, id, GetCorrelationID(ctx))
			if tt.want != "" {
				assert.Equal(t, tt.want, id)
			} else {
				assert.Len(t, id, 36)
			}
		})
	}
}

func TestWithSessionID_Empty(t *testing.T) {
	ctx := WithSessionID(context.Background(), "")
	assert.Empty(t, GetSessionID(ctx))
	assert.Empty(t, GetCorrelationID(ctx))
}
