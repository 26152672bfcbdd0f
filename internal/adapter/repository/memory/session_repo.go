package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// sessionRepository implements domain.SessionRepository
type sessionRepository struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]domain.Session
}

// NewSessionRepository creates an empty in-memory session store
func NewSessionRepository() domain.SessionRepository {
	return &sessionRepository{sessions: make(map[uuid.UUID]domain.Session)}
}

// Get retrieves a session by its ID
func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrNotFound)
	}
	return &s, nil
}

// Save creates or replaces a session
func (r *sessionRepository) Save(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = *session
	return nil
}

// Update replaces an existing session
func (r *sessionRepository) Update(ctx context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return fmt.Errorf("session %s: %w", session.ID, domain.ErrNotFound)
	}
	r.sessions[session.ID] = *session
	return nil
}

// DeleteIdleSince removes sessions not updated since the cutoff
func (r *sessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, s := range r.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed, nil
}
