// Package presenter converts usecase results into the JSON views served by
// the HTTP API and carried inside gRPC Struct messages.
package presenter

import (
	"time"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/format"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/audience"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/chart"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/riskdial"
)

type PointView struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type GeometryView struct {
	OuterRadius float64   `json:"outer_radius"`
	InnerRadius float64   `json:"inner_radius"`
	Center      PointView `json:"center"`
}

type SectorView struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Allocation string   `json:"allocation"` // Exact fraction, e.g. "0.45"
	Percent    string   `json:"percent"`    // e.g. "45.0%"
	Color      string   `json:"color"`
	Icon       string   `json:"icon,omitempty"`
	Activities []string `json:"activities"`
}

type SegmentView struct {
	Sector     SectorView `json:"sector"`
	StartAngle float64    `json:"start_angle"`
	EndAngle   float64    `json:"end_angle"`
	LargeArc   bool       `json:"large_arc"`
	Path       string     `json:"path"`
	Label      PointView  `json:"label"`
	Percent    string     `json:"percent"`
	Active     bool       `json:"active"`
}

type RingView struct {
	Profile  string        `json:"profile"`
	Geometry GeometryView  `json:"geometry"`
	Segments []SegmentView `json:"segments"`
	Active   *SectorView   `json:"active"`
}

type RegionView struct {
	Region     string  `json:"region"`
	Percentage int     `json:"percentage"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
}

type FeeItemView struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type FeesView struct {
	Total         string        `json:"total"`
	Breakdown     []FeeItemView `json:"breakdown"`
	ExampleAmount string        `json:"example_amount,omitempty"`
	AnnualCost    string        `json:"annual_cost,omitempty"`
}

type PortfolioView struct {
	Profile    string       `json:"profile"`
	Sectors    []SectorView `json:"sectors"`
	Geographic []RegionView `json:"geographic"`
	Fees       *FeesView    `json:"fees,omitempty"`
}

type RiskFactorView struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Mitigation    string `json:"mitigation"`
	Severity      int    `json:"severity"`
	SeverityColor string `json:"severity_color"` // Green (1) to red (5)
	Color         string `json:"color"`
	Hovered       bool   `json:"hovered"`
}

type FactorGroupView struct {
	Category string           `json:"category"`
	Title    string           `json:"title"`
	Factors  []RiskFactorView `json:"factors"`
}

type MetricView struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Level string `json:"level"`
}

type ProfileOptionView struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type AdjustmentView struct {
	Sector string `json:"sector"`
	Change int    `json:"change"`
}

type DialView struct {
	Profile     string              `json:"profile"`
	Name        string              `json:"name"`
	Options     []ProfileOptionView `json:"options"`
	NeedleAngle float64             `json:"needle_angle"`
	Description string              `json:"description"`
	Ratio       string              `json:"ratio"`
	Adjustments []AdjustmentView    `json:"adjustments"`
	Metrics     []MetricView        `json:"metrics"`
	Groups      []FactorGroupView   `json:"groups"`
	Hovered     *RiskFactorView     `json:"hovered"`
}

type AxisView struct {
	Name string `json:"name"`
	Low  string `json:"low"`
	High string `json:"high"`
}

type AudienceSegmentView struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Size            int       `json:"size"`
	Share           string    `json:"share"`
	Characteristics []string  `json:"characteristics"`
	PainPoints      []string  `json:"pain_points"`
	Motivations     []string  `json:"motivations"`
	Color           string    `json:"color"`
	Position        PointView `json:"position"`
	Radius          float64   `json:"radius"`
	Selected        bool      `json:"selected"`
}

type MatrixView struct {
	X        AxisView              `json:"x"`
	Y        AxisView              `json:"y"`
	Segments []AudienceSegmentView `json:"segments"`
	Selected *AudienceSegmentView  `json:"selected"`
}

type SessionView struct {
	ID              string    `json:"id"`
	Profile         string    `json:"profile"`
	ActiveSector    string    `json:"active_sector"`
	HoveredRisk     string    `json:"hovered_risk"`
	SelectedSegment string    `json:"selected_segment"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func Sector(s domain.Sector) SectorView {
	activities := s.Activities
	if activities == nil {
		activities = []string{}
	}
	return SectorView{
		ID:         s.ID,
		Name:       s.Name,
		Allocation: s.Allocation.String(),
		Percent:    format.Allocation(s.Allocation),
		Color:      s.Color,
		Icon:       s.Icon,
		Activities: activities,
	}
}

func Ring(r *chart.RingResult) RingView {
	view := RingView{
		Profile: string(r.Profile),
		Geometry: GeometryView{
			OuterRadius: r.Geometry.OuterRadius,
			InnerRadius: r.Geometry.InnerRadius,
			Center:      PointView{X: r.Geometry.Center.X, Y: r.Geometry.Center.Y},
		},
		Segments: make([]SegmentView, len(r.Segments)),
	}
	for i, seg := range r.Segments {
		view.Segments[i] = SegmentView{
			Sector:     Sector(seg.Sector),
			StartAngle: seg.Arc.StartAngle,
			EndAngle:   seg.Arc.EndAngle,
			LargeArc:   seg.Arc.LargeArc,
			Path:       seg.Arc.Path,
			Label:      PointView{X: seg.Arc.LabelPoint.X, Y: seg.Arc.LabelPoint.Y},
			Percent:    seg.Percent,
			Active:     seg.Active,
		}
	}
	if r.Active != nil {
		active := Sector(*r.Active)
		view.Active = &active
	}
	return view
}

func Portfolio(r *chart.PortfolioResult) PortfolioView {
	view := PortfolioView{
		Profile:    string(r.Portfolio.Profile),
		Sectors:    make([]SectorView, len(r.Portfolio.Sectors)),
		Geographic: make([]RegionView, len(r.Portfolio.Geographic)),
	}
	for i, s := range r.Portfolio.Sectors {
		view.Sectors[i] = Sector(s)
	}
	for i, g := range r.Portfolio.Geographic {
		view.Geographic[i] = RegionView{Region: g.Region, Percentage: g.Percentage, Longitude: g.Longitude, Latitude: g.Latitude}
	}
	if r.Fees != nil {
		fees := &FeesView{
			Total:         format.Fee(r.Fees.Total),
			Breakdown:     make([]FeeItemView, len(r.Fees.Breakdown)),
			ExampleAmount: r.ExampleAmount,
			AnnualCost:    r.AnnualCost,
		}
		for i, item := range r.Fees.Breakdown {
			fees.Breakdown[i] = FeeItemView{Name: item.Name, Value: format.Fee(item.Value), Description: item.Description}
		}
		view.Fees = fees
	}
	return view
}

func riskFactor(f domain.RiskFactor, hovered bool) RiskFactorView {
	return RiskFactorView{
		ID:            f.ID,
		Category:      string(f.Category),
		Name:          f.Name,
		Description:   f.Description,
		Mitigation:    f.Mitigation,
		Severity:      f.Severity,
		SeverityColor: format.ColorForValue(float64(f.Severity), 1, 5),
		Color:         f.Color,
		Hovered:       hovered,
	}
}

func Dial(r *riskdial.DialResult) DialView {
	view := DialView{
		Profile:     string(r.Profile.Key),
		Name:        r.Profile.Name,
		NeedleAngle: r.NeedleAngle,
		Description: r.Description,
		Ratio:       r.Ratio,
		Adjustments: make([]AdjustmentView, len(r.Profile.SectorAdjustments)),
		Metrics:     make([]MetricView, len(r.Metrics)),
		Groups:      make([]FactorGroupView, len(r.Groups)),
	}
	for _, o := range r.Options {
		view.Options = append(view.Options, ProfileOptionView{Key: string(o.Key), Name: o.Name, Active: o.Active})
	}
	for i, a := range r.Profile.SectorAdjustments {
		view.Adjustments[i] = AdjustmentView{Sector: a.Sector, Change: a.Change}
	}
	for i, m := range r.Metrics {
		view.Metrics[i] = MetricView{Label: m.Label, Value: m.Value, Level: m.Level}
	}
	for i, g := range r.Groups {
		group := FactorGroupView{Category: string(g.Category), Title: g.Title}
		for _, f := range g.Factors {
			group.Factors = append(group.Factors, riskFactor(f.Factor, f.Hovered))
		}
		view.Groups[i] = group
	}
	if r.Hovered != nil {
		hovered := riskFactor(*r.Hovered, true)
		view.Hovered = &hovered
	}
	return view
}

func Matrix(r *audience.MatrixResult) MatrixView {
	view := MatrixView{
		X:        AxisView{Name: r.X.Name, Low: r.X.Low, High: r.X.High},
		Y:        AxisView{Name: r.Y.Name, Low: r.Y.Low, High: r.Y.High},
		Segments: make([]AudienceSegmentView, len(r.Points)),
	}
	for i, p := range r.Points {
		seg := p.Segment
		view.Segments[i] = AudienceSegmentView{
			ID:              seg.ID,
			Name:            seg.Name,
			Description:     seg.Description,
			Size:            seg.Size,
			Share:           p.Share,
			Characteristics: seg.Characteristics,
			PainPoints:      seg.PainPoints,
			Motivations:     seg.Motivations,
			Color:           seg.Color,
			Position:        PointView{X: seg.Position.X, Y: seg.Position.Y},
			Radius:          p.Radius,
			Selected:        p.Selected,
		}
		if p.Selected {
			selected := view.Segments[i]
			view.Selected = &selected
		}
	}
	return view
}

func Session(s *domain.Session) SessionView {
	return SessionView{
		ID:              s.ID.String(),
		Profile:         string(s.Profile),
		ActiveSector:    s.Sectors.ActiveID,
		HoveredRisk:     s.Risks.ActiveID,
		SelectedSegment: s.Segments.ActiveID,
		UpdatedAt:       s.UpdatedAt,
	}
}
