package repository

import (
	"errors"
	"sync"
	"time"

	"timeclash/internal/models"
	"timeclash/internal/security"
)

// ErrSessionNotFound is returned for unknown or expired session IDs
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps browser sessions in memory. Nothing survives a restart.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.BrowserSession
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionRepository creates a repository whose sessions expire ttl after their last save
func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]models.BrowserSession),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create starts an empty session: cleared converter, no quiz question.
// The session is not stored until its first Save.
func (r *SessionRepository) Create() models.BrowserSession {
	return r.Resume(security.GenerateSessionID())
}

// Resume starts an empty, unsaved session under an ID the browser already
// holds, dropping whatever expired state was stored for it. Form tokens
// issued for that ID stay valid.
func (r *SessionRepository) Resume(id string) models.BrowserSession {
	r.Delete(id)
	return models.BrowserSession{
		ID:        id,
		ExpiresAt: r.now().Add(r.ttl),
	}
}

// Get returns a live session by ID
func (r *SessionRepository) Get(id string) (models.BrowserSession, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok || s.IsExpired(r.now()) {
		return models.BrowserSession{}, ErrSessionNotFound
	}
	return s, nil
}

// Save replaces the stored session wholesale and extends its expiry
func (r *SessionRepository) Save(s models.BrowserSession) models.BrowserSession {
	s.ExpiresAt = r.now().Add(r.ttl)

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Delete removes a session
func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// DeleteExpired removes expired sessions and returns how many were removed
func (r *SessionRepository) DeleteExpired() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.IsExpired(now) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Count returns the number of stored sessions, expired or not
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
