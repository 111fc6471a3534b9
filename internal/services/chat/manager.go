package chat

import "sync"

// Manager keeps sessions by ID for the lifetime of the process. Sessions are
// created on first use and never persisted.
type Manager struct {
	analyzer Analyzer
	selector ChartSelector
	source   DataSource

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager(analyzer Analyzer, selector ChartSelector, source DataSource) *Manager {
	return &Manager{
		analyzer: analyzer,
		selector: selector,
		source:   source,
		sessions: make(map[string]*Session),
	}
}

// Session returns the session for id, creating it when absent.
func (m *Manager) Session(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := NewSession(id, m.analyzer, m.selector, m.source)
	m.sessions[id] = s
	return s
}

// Lookup returns an existing session without creating one.
func (m *Manager) Lookup(id string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
