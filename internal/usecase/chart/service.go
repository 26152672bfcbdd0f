package chart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/format"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/ringlayout"
)

// DefaultGeometry is the ring drawn when the caller does not pick one
var DefaultGeometry = ringlayout.Geometry{
	OuterRadius: 120,
	InnerRadius: 70,
	Center:      ringlayout.Point{X: 150, Y: 150},
}

// Fee costs are illustrated on this sample investment
var (
	FeeExampleAmount   = decimal.NewFromInt(10000)
	FeeExampleCurrency = "USD"
)

// SectorSegment is one sector of the ring with its geometry and display values
type SectorSegment struct {
	Sector  domain.Sector
	Arc     ringlayout.Arc
	Percent string // e.g. "45%"
	Active  bool
}

// RingResult is everything the rendering layer needs to draw the sector ring
type RingResult struct {
	Profile  domain.ProfileKey
	Geometry ringlayout.Geometry
	Segments []SectorSegment
	// Active is the emphasized sector shown in the detail panel, nil when idle
	Active *domain.Sector
}

// PortfolioResult is the sector list, geographic split and fees of a profile
type PortfolioResult struct {
	Portfolio     *domain.Portfolio
	Allocations   map[string]string // Sector ID -> formatted allocation
	Fees          *domain.FeeStructure
	ExampleAmount string // FeeExampleAmount formatted, e.g. "$10,000"
	AnnualCost    string // Total fee per year on FeeExampleAmount, e.g. "$75"
}

// ChartService handles the money-flow section
type ChartService struct {
	PortfolioRepo domain.PortfolioRepository
	ReferenceRepo domain.ReferenceRepository
}

// NewChartService creates a new ChartService instance
func NewChartService(portfolioRepo domain.PortfolioRepository, referenceRepo domain.ReferenceRepository) *ChartService {
	return &ChartService{
		PortfolioRepo: portfolioRepo,
		ReferenceRepo: referenceRepo,
	}
}

// SectorRing lays out the sector ring of a profile and marks the selected sector.
// A selection pointing at a sector the portfolio does not contain is treated as idle.
func (s *ChartService) SectorRing(ctx context.Context, profile domain.ProfileKey, g ringlayout.Geometry, sel domain.Selection) (*RingResult, error) {
	portfolio, err := s.PortfolioRepo.GetPortfolio(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	// Bad table data is a precondition violation, never something to correct here
	if err := portfolio.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLayoutPrecondition, err)
	}

	arcs, err := ringlayout.LayoutRing(ringlayout.SlicesFromPortfolio(portfolio), g)
	if err != nil {
		return nil, err
	}

	result := &RingResult{
		Profile:  profile,
		Geometry: g,
		Segments: make([]SectorSegment, len(arcs)),
	}
	for i, arc := range arcs {
		sector := portfolio.Sectors[i]
		active := sel.IsActive(sector.ID)
		result.Segments[i] = SectorSegment{
			Sector:  sector,
			Arc:     arc,
			Percent: format.WholePercent(sector.Allocation),
			Active:  active,
		}
		if active {
			activeSector := sector
			result.Active = &activeSector
		}
	}

	return result, nil
}

// Portfolio returns the formatted sector list, geographic split and fees of a profile
func (s *ChartService) Portfolio(ctx context.Context, profile domain.ProfileKey) (*PortfolioResult, error) {
	portfolio, err := s.PortfolioRepo.GetPortfolio(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}

	fees, err := s.ReferenceRepo.GetFeeStructure(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fee structure: %w", err)
	}

	allocations := make(map[string]string, len(portfolio.Sectors))
	for _, sector := range portfolio.Sectors {
		allocations[sector.ID] = format.Allocation(sector.Allocation)
	}

	example, err := format.Currency(FeeExampleAmount, FeeExampleCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to format fee example: %w", err)
	}
	// Fees are percent per year
	cost, err := format.Currency(FeeExampleAmount.Mul(fees.Total).Div(decimal.NewFromInt(100)), FeeExampleCurrency)
	if err != nil {
		return nil, fmt.Errorf("failed to format annual cost: %w", err)
	}

	return &PortfolioResult{
		Portfolio:     portfolio,
		Allocations:   allocations,
		Fees:          fees,
		ExampleAmount: example,
		AnnualCost:    cost,
	}, nil
}
