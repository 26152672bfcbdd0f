package audience

import (
	"context"
	"fmt"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/format"
)

// Bubble radius bounds in matrix units
const (
	minBubbleRadius = 4.0
	maxBubbleRadius = 14.0
)

// SegmentPoint is one bubble of the matrix
type SegmentPoint struct {
	Segment  domain.AudienceSegment
	Radius   float64
	Share    string // e.g. "35%"
	Selected bool
}

// MatrixResult is the segmentation scatter with the selected segment detail
type MatrixResult struct {
	X      domain.MatrixAxis
	Y      domain.MatrixAxis
	Points []SegmentPoint
	// Selected is the segment shown in the detail panel, nil when idle
	Selected *domain.AudienceSegment
}

// MatrixService handles the audience segmentation section
type MatrixService struct {
	ReferenceRepo domain.ReferenceRepository
}

// NewMatrixService creates a new MatrixService instance
func NewMatrixService(referenceRepo domain.ReferenceRepository) *MatrixService {
	return &MatrixService{ReferenceRepo: referenceRepo}
}

// Matrix returns the axes and segments with the selected one marked.
// Bubble radii scale linearly with segment size between the smallest and largest segment.
func (s *MatrixService) Matrix(ctx context.Context, sel domain.Selection) (*MatrixResult, error) {
	matrix, err := s.ReferenceRepo.GetAudienceMatrix(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load audience matrix: %w", err)
	}
	if err := matrix.Validate(); err != nil {
		return nil, fmt.Errorf("invalid audience matrix: %w", err)
	}

	minSize, maxSize := matrix.Segments[0].Size, matrix.Segments[0].Size
	for _, seg := range matrix.Segments {
		minSize = min(minSize, seg.Size)
		maxSize = max(maxSize, seg.Size)
	}

	result := &MatrixResult{
		X:      matrix.X,
		Y:      matrix.Y,
		Points: make([]SegmentPoint, len(matrix.Segments)),
	}
	for i, seg := range matrix.Segments {
		selected := sel.IsActive(seg.ID)
		result.Points[i] = SegmentPoint{
			Segment:  seg,
			Radius:   bubbleRadius(seg.Size, minSize, maxSize),
			Share:    fmt.Sprintf("%d%%", seg.Size),
			Selected: selected,
		}
		if selected {
			segment := seg
			result.Selected = &segment
		}
	}

	return result, nil
}

// Describe returns the short label used in the bubble tooltip
func Describe(seg domain.AudienceSegment) string {
	return format.Truncate(seg.Description, 40, "...")
}

func bubbleRadius(size, minSize, maxSize int) float64 {
	if maxSize == minSize {
		return maxBubbleRadius
	}
	t := float64(size-minSize) / float64(maxSize-minSize)
	return minBubbleRadius + t*(maxBubbleRadius-minBubbleRadius)
}
