// Package session mantém as sessões abertas e o dataset de cada uma
package session

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/dashboard-demo-api/infrastructure/repository"
	"github.com/vfg2006/dashboard-demo-api/internal/config"
	"github.com/vfg2006/dashboard-demo-api/internal/domain"
	"github.com/vfg2006/dashboard-demo-api/internal/usecases/generating"
	"github.com/vfg2006/dashboard-demo-api/pkg/log"
	"github.com/vfg2006/dashboard-demo-api/pkg/utils"
)

const DefaultTTL = 30 * time.Minute

type SessionManager interface {
	Start(ctx context.Context) (*domain.Session, error)
	Get(id string) (*domain.Session, error)
	End(ctx context.Context, id string) error
	Dataset(id string) (*domain.Dataset, error)
	Count() int
	SweepExpired(ctx context.Context, now time.Time) int
}

// entry guarda a sessão e o dataset gerado sob demanda, uma única vez
type entry struct {
	session domain.Session
	once    sync.Once
	dataset *domain.Dataset
	err     error
}

type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*entry

	generator       generating.DatasetGenerator
	datasetCfg      domain.DatasetConfig
	ttl             time.Duration
	interactionRepo repository.InteractionRepository
	now             func() time.Time
}

func NewManager(
	cfg *config.Config,
	generator generating.DatasetGenerator,
	interactionRepo repository.InteractionRepository,
) (*Manager, error) {
	datasetCfg, err := cfg.DatasetConfig()
	if err != nil {
		return nil, err
	}

	ttl := cfg.Session.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Manager{
		sessions:        make(map[string]*entry),
		generator:       generator,
		datasetCfg:      datasetCfg,
		ttl:             ttl,
		interactionRepo: interactionRepo,
		now:             time.Now,
	}, nil
}

// Start abre uma sessão; o dataset só é gerado no primeiro acesso
func (m *Manager) Start(ctx context.Context) (*domain.Session, error) {
	id, err := utils.GenerateSessionID()
	if err != nil {
		return nil, errors.Wrap(err, "session: erro ao gerar ID")
	}

	now := m.now()
	e := &entry{
		session: domain.Session{
			ID:        id,
			CreatedAt: now,
			ExpiresAt: now.Add(m.ttl),
		},
	}

	m.mu.Lock()
	m.sessions[id] = e
	total := len(m.sessions)
	m.mu.Unlock()

	log.ForContext(ctx).WithFields(log.Fields{
		"session_id": id,
		"sessions":   total,
	}).Info("session: sessão iniciada")

	s := e.session
	return &s, nil
}

func (m *Manager) Get(id string) (*domain.Session, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}
	s := e.session
	return &s, nil
}

// lookup remove na hora a sessão expirada encontrada, junto com o histórico dela
func (m *Manager) lookup(id string) (*entry, error) {
	m.mu.RLock()
	e, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(domain.ErrSessionNotFound, "session: %s", id)
	}

	if e.session.Expired(m.now()) {
		m.mu.Lock()
		_, stillThere := m.sessions[id]
		delete(m.sessions, id)
		m.mu.Unlock()

		// Só quem removeu a sessão do mapa limpa o histórico
		if stillThere {
			m.purgeHistory(context.Background(), id)
		}
		return nil, errors.Wrapf(domain.ErrSessionExpired, "session: %s", id)
	}

	return e, nil
}

func (m *Manager) End(ctx context.Context, id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return errors.Wrapf(domain.ErrSessionNotFound, "session: %s", id)
	}

	m.purgeHistory(ctx, id)

	log.ForContext(ctx).WithField("session_id", id).Info("session: sessão encerrada")
	return nil
}

// Dataset devolve o dataset da sessão, gerando-o no primeiro acesso
func (m *Manager) Dataset(id string) (*domain.Dataset, error) {
	e, err := m.lookup(id)
	if err != nil {
		return nil, err
	}

	e.once.Do(func() {
		e.dataset, e.err = m.generator.Generate(m.datasetCfg)
	})
	if e.err != nil {
		return nil, errors.Wrap(e.err, "session: erro ao gerar dataset")
	}

	return e.dataset, nil
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// SweepExpired remove as sessões vencidas em now e retorna quantas foram removidas
func (m *Manager) SweepExpired(ctx context.Context, now time.Time) int {
	m.mu.Lock()
	expired := make([]string, 0)
	for id, e := range m.sessions {
		if e.session.Expired(now) {
			expired = append(expired, id)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, id := range expired {
		m.purgeHistory(ctx, id)
	}

	return len(expired)
}

func (m *Manager) purgeHistory(ctx context.Context, id string) {
	if m.interactionRepo == nil {
		return
	}

	if _, err := m.interactionRepo.DeleteBySession(ctx, id); err != nil {
		log.ForContext(ctx).WithError(err).WithField("session_id", id).
			Warn("session: erro ao remover histórico de interações")
	}
}
