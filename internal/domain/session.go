package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the interaction state of one visitor across the page sections
type Session struct {
	ID        uuid.UUID
	Sectors   Selection  // Ring chart and sector detail panel
	Risks     Selection  // Hovered risk factor on the dial panel
	Segments  Selection  // Selected audience segment
	Profile   ProfileKey // Risk dial position
	UpdatedAt time.Time
}

// NewSession returns an idle session on the default profile
func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Profile:   DefaultProfile,
		UpdatedAt: now,
	}
}
