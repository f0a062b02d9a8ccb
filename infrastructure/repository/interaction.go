// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/dashboard-demo-api/infrastructure/database/postgres"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
)

const (
	interactionTable = "widget_interaction wi"
)

//go:generate mockgen -source=interaction.go -destination=mocks/interaction.go -package=mocks

type InteractionRepository interface {
	Save(ctx context.Context, interaction *domain.Interaction) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Interaction, error)
	DeleteBySession(ctx context.Context, sessionID string) (int64, error)
}

type interactionRepository struct {
	conn postgres.Conn
}

func NewInteractionRepository(conn postgres.Conn) InteractionRepository {
	return &interactionRepository{
		conn: conn,
	}
}

func (r *interactionRepository) Save(ctx context.Context, interaction *domain.Interaction) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("widget_interaction").
		Columns("id", "session_id", "widget", "input", "output", "created_at").
		Values(
			interaction.ID,
			interaction.SessionID,
			string(interaction.Widget),
			interaction.Input,
			interaction.Output,
			interaction.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar interação: %w", err)
	}

	return nil
}

func (r *interactionRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]*domain.Interaction, error) {
	queryBuilder := squirrel.
		Select("wi.id", "wi.session_id", "wi.widget", "wi.input", "wi.output", "wi.created_at").
		From(interactionTable).
		Where(squirrel.Eq{"wi.session_id": sessionID}).
		OrderBy("wi.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		queryBuilder = queryBuilder.Limit(uint64(limit))
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []*domain.Interaction{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	interactions := make([]*domain.Interaction, 0)
	for rows.Next() {
		var (
			item   domain.Interaction
			widget string
		)
		if err := rows.Scan(&item.ID, &item.SessionID, &widget, &item.Input, &item.Output, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear interação: %w", err)
		}
		item.Widget = domain.Widget(widget)
		interactions = append(interactions, &item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return interactions, nil
}

func (r *interactionRepository) DeleteBySession(ctx context.Context, sessionID string) (int64, error) {
	query, args, err := squirrel.
		Delete("widget_interaction").
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover interações: %w", err)
	}

	return result.RowsAffected()
}
