package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/vfg2006/dashboard-demo-api/internal/domain"
)

// memoryInteractionRepository guarda o histórico em memória quando não há banco configurado
type memoryInteractionRepository struct {
	mu            sync.RWMutex
	bySession     map[string][]*domain.Interaction
	maxPerSession int
}

// NewMemoryInteractionRepository cria o repositório em memória.
// maxPerSession limita o histórico de cada sessão (0 = sem limite).
func NewMemoryInteractionRepository(maxPerSession int) InteractionRepository {
	return &memoryInteractionRepository{
		bySession:     make(map[string][]*domain.Interaction),
		maxPerSession: maxPerSession,
	}
}

func (r *memoryInteractionRepository) Save(_ context.Context, interaction *domain.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *interaction
	items := append(r.bySession[interaction.SessionID], &cp)
	if r.maxPerSession > 0 && len(items) > r.maxPerSession {
		items = items[len(items)-r.maxPerSession:]
	}
	r.bySession[interaction.SessionID] = items

	return nil
}

func (r *memoryInteractionRepository) ListBySession(_ context.Context, sessionID string, limit int) ([]*domain.Interaction, error) {
	r.mu.RLock()
	items := r.bySession[sessionID]
	out := make([]*domain.Interaction, len(items))
	for i, item := range items {
		cp := *item
		out[i] = &cp
	}
	r.mu.RUnlock()

	// Mais recentes primeiro, como na consulta do postgres
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

func (r *memoryInteractionRepository) DeleteBySession(_ context.Context, sessionID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.bySession[sessionID]))
	delete(r.bySession, sessionID)
	return n, nil
}
