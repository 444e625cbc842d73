package interview

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/skillsenselab/skillgraph/errors"
	"github.com/skillsenselab/skillgraph/graph"
	"github.com/skillsenselab/skillgraph/judge"
	"github.com/skillsenselab/skillgraph/logger"
)

// Manager tracks live interview sessions keyed by session id.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	registry *graph.Registry
	judge    judge.Judge
	cfg      Config
	log      *logger.Logger
}

// NewManager creates a session manager over the shared node registry. Each
// started session gets its own snapshot of the registry.
func NewManager(reg *graph.Registry, j judge.Judge, cfg Config, log *logger.Logger) *Manager {
	cfg.ApplyDefaults()
	return &Manager{
		sessions: make(map[string]*Session),
		registry: reg,
		judge:    j,
		cfg:      cfg,
		log:      log.WithComponent("interview"),
	}
}

// Start creates a new session at the given level ceiling and returns its id
// and the first question node. ok is false when the scoped graph has no
// questions; the session still exists so Stop can be called on it.
func (m *Manager) Start(level graph.Level) (string, graph.Node, bool) {
	id := uuid.NewString()
	s := NewSession(id, m.registry, m.judge, m.cfg, m.log)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	n, ok := s.Start(level)
	return id, n, ok
}

// Answer routes an answer to the named session.
func (m *Manager) Answer(ctx context.Context, sessionID, answer string) (graph.Node, bool, error) {
	s, err := m.get(sessionID)
	if err != nil {
		return graph.Node{}, false, err
	}
	return s.Answer(ctx, answer)
}

// Stop tears down the named session and returns its summary.
func (m *Manager) Stop(ctx context.Context, sessionID string) (string, error) {
	m.mu.Lock()
	s, ok := m.sessions[sessionID]
	delete(m.sessions, sessionID)
	m.mu.Unlock()

	if !ok {
		return "", errors.NotFound("session", sessionID)
	}
	summary := s.Stop(ctx)
	m.log.Info("Interview stopped", logger.Fields(logger.FieldSessionID, sessionID))
	return summary, nil
}

// Len reports how many sessions are live.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

func (m *Manager) get(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, errors.MissingField("session_id")
	}
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, errors.NotFound("session", sessionID)
	}
	return s, nil
}
