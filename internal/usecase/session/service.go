package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// Service keeps the selection state of each visitor
type Service struct {
	SessionRepo   domain.SessionRepository
	PortfolioRepo domain.PortfolioRepository
	ReferenceRepo domain.ReferenceRepository

	// Now is the clock used to stamp sessions
	Now func() time.Time

	// Serializes read-modify-write cycles on sessions
	mu sync.Mutex
}

// NewService creates a new session Service instance
func NewService(
	sessionRepo domain.SessionRepository,
	portfolioRepo domain.PortfolioRepository,
	referenceRepo domain.ReferenceRepository,
) *Service {
	return &Service{
		SessionRepo:   sessionRepo,
		PortfolioRepo: portfolioRepo,
		ReferenceRepo: referenceRepo,
		Now:           time.Now,
	}
}

// Start creates an idle session on the default profile
func (s *Service) Start(ctx context.Context) (*domain.Session, error) {
	session := domain.NewSession(s.Now())
	if err := s.SessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// Get retrieves a session
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	session, err := s.SessionRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

// ApplySectorEvent drives the sector ring selection of a session
func (s *Service) ApplySectorEvent(ctx context.Context, id uuid.UUID, event domain.SelectionEvent) (*domain.Session, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		if err := event.Validate(); err != nil {
			return err
		}
		if needsKnownID(event) {
			known, err := s.sectorIDs(ctx, session.Profile)
			if err != nil {
				return err
			}
			if _, ok := known[event.ID]; !ok {
				return fmt.Errorf("sector %s: %w", event.ID, domain.ErrNotFound)
			}
		}
		session.Sectors = session.Sectors.Apply(event)
		return nil
	})
}

// ApplyRiskEvent drives the hovered risk factor of a session
func (s *Service) ApplyRiskEvent(ctx context.Context, id uuid.UUID, event domain.SelectionEvent) (*domain.Session, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		if err := event.Validate(); err != nil {
			return err
		}
		if needsKnownID(event) {
			factors, err := s.ReferenceRepo.ListRiskFactors(ctx)
			if err != nil {
				return fmt.Errorf("failed to list risk factors: %w", err)
			}
			found := false
			for _, f := range factors {
				if f.ID == event.ID {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("risk factor %s: %w", event.ID, domain.ErrNotFound)
			}
		}
		session.Risks = session.Risks.Apply(event)
		return nil
	})
}

// SelectSegment opens the detail panel of an audience segment.
// An empty segmentID closes the panel.
func (s *Service) SelectSegment(ctx context.Context, id uuid.UUID, segmentID string) (*domain.Session, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		if segmentID == "" {
			session.Segments = session.Segments.Reset()
			return nil
		}
		matrix, err := s.ReferenceRepo.GetAudienceMatrix(ctx)
		if err != nil {
			return fmt.Errorf("failed to load audience matrix: %w", err)
		}
		if _, ok := matrix.FindSegment(segmentID); !ok {
			return fmt.Errorf("audience segment %s: %w", segmentID, domain.ErrNotFound)
		}
		session.Segments = session.Segments.Select(segmentID)
		return nil
	})
}

// SelectProfile moves the risk dial of a session
func (s *Service) SelectProfile(ctx context.Context, id uuid.UUID, key domain.ProfileKey) (*domain.Session, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		if _, err := s.ReferenceRepo.GetRiskProfile(ctx, key); err != nil {
			return fmt.Errorf("failed to load risk profile: %w", err)
		}
		session.Profile = key
		return nil
	})
}

func (s *Service) update(ctx context.Context, id uuid.UUID, apply func(*domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.SessionRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err := apply(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = s.Now()
	if err := s.SessionRepo.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	return session, nil
}

// sectorIDs returns the sector ids drawn for a profile. Profiles without a
// breakdown of their own are drawn with the default one.
func (s *Service) sectorIDs(ctx context.Context, profile domain.ProfileKey) (map[string]struct{}, error) {
	portfolio, err := s.PortfolioRepo.GetPortfolio(ctx, profile)
	if errors.Is(err, domain.ErrNotFound) && profile != domain.DefaultProfile {
		portfolio, err = s.PortfolioRepo.GetPortfolio(ctx, domain.DefaultProfile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	ids := make(map[string]struct{}, len(portfolio.Sectors))
	for _, sector := range portfolio.Sectors {
		ids[sector.ID] = struct{}{}
	}
	return ids, nil
}

// Leave and reset events may name elements that are already gone
func needsKnownID(event domain.SelectionEvent) bool {
	switch event.Type {
	case domain.SelectionEventHoverEnter, domain.SelectionEventClick, domain.SelectionEventSelect:
		return true
	}
	return false
}
