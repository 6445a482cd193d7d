package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/margdarshak/disha/internal/agent"
	"github.com/margdarshak/disha/internal/logger"
)

// Session pairs one agent with its serialization lock and idle clock.
// Turns within a session are strictly sequential: the transport must hold
// the session's lock for the duration of a turn.
type Session struct {
	ID    string
	Agent *agent.Agent

	mu       sync.Mutex
	lastSeen time.Time
}

// Lock serializes turns for this session. At most one request per session
// is in flight at a time.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the session after a turn.
func (s *Session) Unlock() { s.mu.Unlock() }

// Manager owns per-session agents keyed by session id. It is the explicit
// map the transport uses for lifecycle: creation on first contact, eviction
// on idle timeout.
type Manager struct {
	newAgent func() *agent.Agent
	idleTTL  time.Duration
	log      *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager. newAgent builds a fresh agent per session;
// idleTTL bounds how long an untouched session survives.
func NewManager(newAgent func() *agent.Agent, idleTTL time.Duration, log *logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	return &Manager{
		newAgent: newAgent,
		idleTTL:  idleTTL,
		log:      log,
		sessions: map[string]*Session{},
	}
}

// Get returns the session for id, creating it when absent. An empty id
// allocates a new session id.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	s, ok := m.sessions[id]
	if !ok {
		s = &Session{ID: id, Agent: m.newAgent()}
		m.sessions[id] = s
		m.log.Info("session created", "session_id", id)
	}
	s.lastSeen = time.Now()
	return s
}

// Lookup returns the session for id without creating one.
func (m *Manager) Lookup(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if ok {
		s.lastSeen = time.Now()
	}
	return s, ok
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// EvictIdle removes sessions untouched for longer than the idle TTL and
// returns how many were evicted.
func (m *Manager) EvictIdle(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.idleTTL {
			delete(m.sessions, id)
			evicted++
		}
	}
	if evicted > 0 {
		m.log.Info("idle sessions evicted", "count", evicted, "remaining", len(m.sessions))
	}
	return evicted
}

// Janitor evicts idle sessions on the given interval until ctx is canceled.
func (m *Manager) Janitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			m.EvictIdle(now)
		}
	}
}
