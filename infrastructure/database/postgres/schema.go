package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema cria as tabelas usadas pelo histórico de interações
var schema = []string{
	`CREATE TABLE IF NOT EXISTS widget_interaction (
		id          VARCHAR(16)  PRIMARY KEY,
		session_id  VARCHAR(32)  NOT NULL,
		widget      VARCHAR(32)  NOT NULL,
		input       TEXT         NOT NULL DEFAULT '',
		output      TEXT         NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_widget_interaction_session
		ON widget_interaction (session_id, created_at DESC)`,
}

// EnsureSchema aplica o schema dentro de uma transação
func EnsureSchema(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("erro ao aplicar schema: %w", err)
			}
		}
		return nil
	})
}
