package ringlayout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// StartOffsetDegrees is where the first slice begins: 12 o'clock in SVG
// coordinates, where the y axis points down and angles grow clockwise
const StartOffsetDegrees = -90.0

// MaxExtent bounds radii and center coordinates. Rendered coordinates keep
// three decimals, so anything larger would lose precision or overflow.
const MaxExtent = 1e9

var (
	startOffset       = decimal.NewFromFloat(StartOffsetDegrees)
	fullTurn          = decimal.NewFromInt(360)
	largeArcThreshold = decimal.New(5, -1)
)

// Point is a position in SVG user units
type Point struct {
	X float64
	Y float64
}

// Geometry is the ring the slices are laid out on
type Geometry struct {
	OuterRadius float64
	InnerRadius float64 // 0 draws pie wedges instead of ring segments
	Center      Point
}

// Slice is one layout input: a sector id and its fraction of the whole
type Slice struct {
	ID         string
	Allocation decimal.Decimal
}

// Arc is the annular sector computed for one slice
type Arc struct {
	ID         string
	StartAngle float64 // Degrees, StartOffsetDegrees based
	EndAngle   float64
	LargeArc   bool
	OuterStart Point
	OuterEnd   Point
	InnerEnd   Point
	InnerStart Point
	LabelPoint Point  // Middle of the segment, for value labels
	Path       string // SVG path data
}

// SweepAngle returns the angular span of the arc in degrees
func (a Arc) SweepAngle() float64 {
	return a.EndAngle - a.StartAngle
}

// SlicesFromPortfolio converts portfolio sectors into layout input, keeping display order
func SlicesFromPortfolio(p *domain.Portfolio) []Slice {
	slices := make([]Slice, len(p.Sectors))
	for i, s := range p.Sectors {
		slices[i] = Slice{ID: s.ID, Allocation: s.Allocation}
	}
	return slices
}

// LayoutRing converts ordered slices into donut chart segments.
// Logic:
//  1. Start the running angle at StartOffsetDegrees
//  2. For each slice: start = running, end = start + allocation * 360, running = end
//  3. Project the four boundary points and build the SVG path
//
// Angles accumulate in decimal arithmetic, so when allocations sum to exactly 1
// the last end angle lands on the first start angle plus 360 with no drift.
// Allocations must already sum to 1 within domain.AllocationTolerance; they are
// never renormalized. One Arc is returned per slice, in input order, including
// zero-span arcs for zero allocations.
func LayoutRing(slices []Slice, g Geometry) ([]Arc, error) {
	if err := validate(slices, g); err != nil {
		return nil, err
	}

	// Anything this close to a full turn has coinciding endpoints and must be split
	fullCircle := fullTurn.Sub(domain.AllocationTolerance.Mul(fullTurn))

	arcs := make([]Arc, 0, len(slices))
	cumulative := startOffset
	for _, s := range slices {
		start := cumulative
		span := s.Allocation.Mul(fullTurn)
		end := start.Add(span)
		cumulative = end

		arc := buildArc(s, start.InexactFloat64(), end.InexactFloat64(), g)
		arc.Path = arcPath(arc, g, span.GreaterThanOrEqual(fullCircle))
		arcs = append(arcs, arc)
	}

	return arcs, nil
}

func validate(slices []Slice, g Geometry) error {
	if len(slices) == 0 {
		return fmt.Errorf("%w: at least one slice is required", domain.ErrLayoutPrecondition)
	}

	for _, v := range []float64{g.OuterRadius, g.InnerRadius, g.Center.X, g.Center.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: geometry must be finite", domain.ErrLayoutPrecondition)
		}
		if math.Abs(v) > MaxExtent {
			return fmt.Errorf("%w: geometry value %g exceeds %g", domain.ErrLayoutPrecondition, v, MaxExtent)
		}
	}
	if g.InnerRadius < 0 {
		return fmt.Errorf("%w: inner radius %g cannot be negative", domain.ErrLayoutPrecondition, g.InnerRadius)
	}
	if g.InnerRadius >= g.OuterRadius {
		return fmt.Errorf("%w: inner radius %g must be smaller than outer radius %g",
			domain.ErrLayoutPrecondition, g.InnerRadius, g.OuterRadius)
	}

	one := decimal.NewFromInt(1)
	seen := make(map[string]struct{}, len(slices))
	total := decimal.Zero
	for _, s := range slices {
		if s.ID == "" {
			return fmt.Errorf("%w: slice id cannot be empty", domain.ErrLayoutPrecondition)
		}
		if _, dup := seen[s.ID]; dup {
			return fmt.Errorf("%w: duplicate slice id %s", domain.ErrLayoutPrecondition, s.ID)
		}
		seen[s.ID] = struct{}{}

		if s.Allocation.IsNegative() {
			return fmt.Errorf("%w: slice %s has negative allocation %s", domain.ErrLayoutPrecondition, s.ID, s.Allocation)
		}
		if s.Allocation.GreaterThan(one) {
			return fmt.Errorf("%w: slice %s allocation %s exceeds 1", domain.ErrLayoutPrecondition, s.ID, s.Allocation)
		}
		total = total.Add(s.Allocation)
	}

	if total.Sub(one).Abs().GreaterThan(domain.AllocationTolerance) {
		return fmt.Errorf("%w: allocations sum to %s, expected 1", domain.ErrLayoutPrecondition, total)
	}
	return nil
}

func buildArc(s Slice, startDeg, endDeg float64, g Geometry) Arc {
	midDeg := (startDeg + endDeg) / 2
	return Arc{
		ID:         s.ID,
		StartAngle: startDeg,
		EndAngle:   endDeg,
		LargeArc:   s.Allocation.GreaterThan(largeArcThreshold),
		OuterStart: polar(g.Center, g.OuterRadius, startDeg),
		OuterEnd:   polar(g.Center, g.OuterRadius, endDeg),
		InnerEnd:   polar(g.Center, g.InnerRadius, endDeg),
		InnerStart: polar(g.Center, g.InnerRadius, startDeg),
		LabelPoint: polar(g.Center, (g.OuterRadius+g.InnerRadius)/2, midDeg),
	}
}

func polar(center Point, radius, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// arcPath writes the SVG path of a segment. The outer edge is drawn
// clockwise (sweep 1) and the inner edge back counter-clockwise (sweep 0).
func arcPath(a Arc, g Geometry, fullCircle bool) string {
	var sb strings.Builder
	ro := num(g.OuterRadius)
	ri := num(g.InnerRadius)

	if fullCircle {
		// A single SVG arc cannot start and end on the same point, so each
		// edge goes through the opposite side of the circle
		outerMid := polar(g.Center, g.OuterRadius, a.StartAngle+180)
		fmt.Fprintf(&sb, "M %s A %s %s 0 0 1 %s A %s %s 0 0 1 %s Z",
			pt(a.OuterStart), ro, ro, pt(outerMid), ro, ro, pt(a.OuterStart))
		if g.InnerRadius > 0 {
			innerMid := polar(g.Center, g.InnerRadius, a.StartAngle+180)
			fmt.Fprintf(&sb, " M %s A %s %s 0 0 0 %s A %s %s 0 0 0 %s Z",
				pt(a.InnerStart), ri, ri, pt(innerMid), ri, ri, pt(a.InnerStart))
		}
		return sb.String()
	}

	large := 0
	if a.LargeArc {
		large = 1
	}

	fmt.Fprintf(&sb, "M %s A %s %s 0 %d 1 %s", pt(a.OuterStart), ro, ro, large, pt(a.OuterEnd))
	if g.InnerRadius > 0 {
		fmt.Fprintf(&sb, " L %s A %s %s 0 %d 0 %s Z", pt(a.InnerEnd), ri, ri, large, pt(a.InnerStart))
	} else {
		fmt.Fprintf(&sb, " L %s Z", pt(g.Center))
	}
	return sb.String()
}

func pt(p Point) string {
	return num(p.X) + " " + num(p.Y)
}

// num renders a coordinate with at most three decimals and no negative zero
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
