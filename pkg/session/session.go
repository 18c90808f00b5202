// Package session is the client-side session manager: it tracks the bearer
// token, schedules auto-logout at expiry, persists the session across client
// restarts, and broadcasts auth-state changes to subscribers.
package session

import (
	"sync"
	"time"
)

// Credentials is what a successful login yields.
type Credentials struct {
	Token     string
	ExpiresIn time.Duration
	UserID    string
}

// Authenticator performs the login call against the backend.
type Authenticator interface {
	Login(email, password string) (*Credentials, error)
}

// Storage persists the session durably between client runs.
type Storage interface {
	// Save stores the session; Expiration is an ISO-8601 timestamp
	Save(state *StoredSession) error
	// Load returns the stored session, or nil when none exists
	Load() (*StoredSession, error)
	// Clear removes any stored session
	Clear() error
}

// StoredSession is the durable form of a session.
type StoredSession struct {
	Token      string    `json:"token"`
	Expiration time.Time `json:"expiration"`
	UserID     string    `json:"userId"`
}

// Manager owns the client's session state. One instance exists per running
// client; all mutation goes through its mutex.
type Manager struct {
	auth    Authenticator
	storage Storage
	now     func() time.Time

	mu            sync.Mutex
	token         string
	userID        string
	authenticated bool
	timer         *time.Timer
	// generation identifies the current session; a pending expiry callback
	// from an earlier session sees a stale generation and does nothing
	generation  uint64
	subscribers map[int]chan bool
	nextSub     int
}

// NewManager creates a session manager in the logged-out state.
func NewManager(auth Authenticator, storage Storage) *Manager {
	return &Manager{
		auth:        auth,
		storage:     storage,
		now:         time.Now,
		subscribers: make(map[int]chan bool),
	}
}

// Subscribe registers an auth-state listener. The current state is delivered
// immediately so late subscribers converge. The returned function must be
// called to unsubscribe; the channel is closed then.
func (m *Manager) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ch := make(chan bool, 8)
	id := m.nextSub
	m.nextSub++
	m.subscribers[id] = ch
	ch <- m.authenticated

	unsubscribe := func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if c, ok := m.subscribers[id]; ok {
			delete(m.subscribers, id)
			close(c)
		}
	}
	return ch, unsubscribe
}

// Login authenticates against the backend. On success the session is stored
// in memory and durably, the expiry timer is armed, and "authenticated" is
// broadcast. On failure "not authenticated" is broadcast and the error
// returned. A Storage failure after a successful login also returns an error,
// but the in-memory session stays authenticated for this run; only the
// restore-on-restart path is lost.
func (m *Manager) Login(email, password string) error {
	creds, err := m.auth.Login(email, password)
	if err != nil {
		m.mu.Lock()
		m.clearLocked()
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiration := m.now().Add(creds.ExpiresIn)
	m.setLocked(creds.Token, creds.UserID, creds.ExpiresIn)

	if err := m.storage.Save(&StoredSession{
		Token:      creds.Token,
		Expiration: expiration,
		UserID:     creds.UserID,
	}); err != nil {
		// The in-memory session stays valid for this run
		return err
	}
	return nil
}

// RestoreSession rehydrates a persisted session at client start. An expired
// or absent session leaves the manager logged out and clears storage.
func (m *Manager) RestoreSession() error {
	stored, err := m.storage.Load()
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if stored == nil {
		m.clearLocked()
		return nil
	}

	remaining := stored.Expiration.Sub(m.now())
	if remaining <= 0 {
		m.clearLocked()
		return m.storage.Clear()
	}

	m.setLocked(stored.Token, stored.UserID, remaining)
	return nil
}

// Logout drops the session, cancels the timer, clears durable storage and
// broadcasts "not authenticated".
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.clearLocked()
	return m.storage.Clear()
}

// IsAuthenticated reports whether a live session exists.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Token returns the current bearer token, empty when logged out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// UserID returns the authenticated user id, empty when logged out.
func (m *Manager) UserID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userID
}

// setLocked installs a session and arms the expiry timer. Callers hold mu.
func (m *Manager) setLocked(token, userID string, ttl time.Duration) {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.token = token
	m.userID = userID
	m.authenticated = true
	m.generation++
	gen := m.generation
	m.timer = time.AfterFunc(ttl, func() { m.expire(gen) })
	m.broadcastLocked()
}

// clearLocked drops the session. Callers hold mu.
func (m *Manager) clearLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.generation++
	m.token = ""
	m.userID = ""
	m.authenticated = false
	m.broadcastLocked()
}

// expire is the timer callback forcing logout when the token's lifetime ends.
// Stop cannot cancel a callback that already fired, so a stale timer from a
// replaced session may still get here; the generation check makes it a no-op.
func (m *Manager) expire(gen uint64) {
	m.mu.Lock()
	if gen != m.generation {
		m.mu.Unlock()
		return
	}
	m.clearLocked()
	m.mu.Unlock()
	_ = m.storage.Clear()
}

// broadcastLocked pushes the current state to all subscribers. Sends are
// non-blocking so a slow consumer drops updates instead of stalling the
// manager.
func (m *Manager) broadcastLocked() {
	for _, ch := range m.subscribers {
		select {
		case ch <- m.authenticated:
		default:
		}
	}
}
