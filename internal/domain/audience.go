package domain

import (
	"errors"
	"fmt"
)

// MatrixPosition places a segment on the audience matrix, both axes 0..100
type MatrixPosition struct {
	X float64
	Y float64
}

// AudienceSegment is one group of prospective investors
type AudienceSegment struct {
	ID              string
	Name            string
	Description     string
	Size            int // Percentage of the total audience
	Characteristics []string
	PainPoints      []string
	Motivations     []string
	Color           string
	Position        MatrixPosition
}

// Validate ensures the segment adheres to domain rules
func (s *AudienceSegment) Validate() error {
	if s.ID == "" {
		return errors.New("audience segment id cannot be empty")
	}
	if s.Size <= 0 || s.Size > 100 {
		return fmt.Errorf("audience segment %s: size must be in (0, 100]", s.ID)
	}
	if s.Position.X < 0 || s.Position.X > 100 || s.Position.Y < 0 || s.Position.Y > 100 {
		return fmt.Errorf("audience segment %s: position must be within 0..100", s.ID)
	}
	return nil
}

// MatrixAxis labels one axis of the audience matrix
type MatrixAxis struct {
	Name string
	Low  string
	High string
}

// AudienceMatrix is the segmentation scatter: two labelled axes and the segments on them
type AudienceMatrix struct {
	X        MatrixAxis
	Y        MatrixAxis
	Segments []AudienceSegment
}

// Validate ensures every segment is valid, ids are unique and sizes sum to 100
func (m *AudienceMatrix) Validate() error {
	seen := make(map[string]struct{}, len(m.Segments))
	total := 0
	for i := range m.Segments {
		if err := m.Segments[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[m.Segments[i].ID]; dup {
			return fmt.Errorf("duplicate audience segment id %s", m.Segments[i].ID)
		}
		seen[m.Segments[i].ID] = struct{}{}
		total += m.Segments[i].Size
	}
	if total != 100 {
		return fmt.Errorf("audience segment sizes must sum to 100, got %d", total)
	}
	return nil
}

// FindSegment returns the segment with the given id
func (m *AudienceMatrix) FindSegment(id string) (*AudienceSegment, bool) {
	for i := range m.Segments {
		if m.Segments[i].ID == id {
			return &m.Segments[i], true
		}
	}
	return nil, false
}
