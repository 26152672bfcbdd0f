package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PortfolioRepository defines the interface for portfolio sector tables
type PortfolioRepository interface {
	// GetPortfolio retrieves the sector and geographic breakdown of a profile.
	// Sectors are returned in display order.
	GetPortfolio(ctx context.Context, profile ProfileKey) (*Portfolio, error)

	// SavePortfolio stores the breakdown of a profile, replacing any previous one
	SavePortfolio(ctx context.Context, portfolio *Portfolio) error
}

// ReferenceRepository defines the interface for the read-only page tables
type ReferenceRepository interface {
	// GetRiskProfile retrieves a single risk profile
	GetRiskProfile(ctx context.Context, key ProfileKey) (*RiskProfile, error)

	// ListRiskFactors retrieves all disclosed risk factors in display order
	ListRiskFactors(ctx context.Context) ([]RiskFactor, error)

	// GetAudienceMatrix retrieves the segmentation matrix
	GetAudienceMatrix(ctx context.Context) (*AudienceMatrix, error)

	// GetFeeStructure retrieves the annual fee breakdown
	GetFeeStructure(ctx context.Context) (*FeeStructure, error)
}

// SessionRepository defines the interface for visitor session persistence
type SessionRepository interface {
	// Get retrieves a session by its ID
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// Save creates or replaces a session
	Save(ctx context.Context, session *Session) error

	// Update replaces a stored session. It returns ErrNotFound when the
	// session is gone, so an expired session is never brought back.
	Update(ctx context.Context, session *Session) error

	// DeleteIdleSince removes sessions not updated since the cutoff
	// and returns how many were removed
	DeleteIdleSince(ctx context.Context, cutoff time.Time) (int, error)
}
