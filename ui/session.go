package ui

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/sachben91/agent-protocol-risk/domain/view"
)

const sessionCookie = "apr_session"

// SessionStore holds each active session's dashboard state in memory.
// State is ephemeral: it lives only as long as the process and is never
// shared across sessions or persisted anywhere.
type SessionStore struct {
	mu     sync.RWMutex
	states map[string]view.State
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{states: make(map[string]view.State)}
}

// Get returns the state for a session ID, or the initial state for an
// unknown one.
func (s *SessionStore) Get(id string) view.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if state, ok := s.states[id]; ok {
		return state
	}
	return view.NewState()
}

// Put replaces a session's state.
func (s *SessionStore) Put(id string, state view.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[id] = state
}

// sessionID reads the session cookie, minting a fresh ID (and setting
// the cookie) when the visitor has none.
func (a *App) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
