package session

import "sync"

// Manager maps Telegram chats to their live sessions. It exists so that
// every handler receives the session context explicitly instead of reading
// a package-level current user.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

func (m *Manager) Get(chatID int64) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[chatID]
	return sess, ok
}

func (m *Manager) Put(chatID int64, sess *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[chatID] = sess
}

func (m *Manager) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
