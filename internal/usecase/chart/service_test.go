package chart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/usecase/ringlayout"
)

// MockPortfolioRepository is a mock implementation of PortfolioRepository
type MockPortfolioRepository struct {
	mock.Mock
}

func (m *MockPortfolioRepository) GetPortfolio(ctx context.Context, profile domain.ProfileKey) (*domain.Portfolio, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *MockPortfolioRepository) SavePortfolio(ctx context.Context, portfolio *domain.Portfolio) error {
	args := m.Called(ctx, portfolio)
	return args.Error(0)
}

// MockReferenceRepository is a mock implementation of ReferenceRepository
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) GetRiskProfile(ctx context.Context, key domain.ProfileKey) (*domain.RiskProfile, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RiskProfile), args.Error(1)
}

func (m *MockReferenceRepository) ListRiskFactors(ctx context.Context) ([]domain.RiskFactor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RiskFactor), args.Error(1)
}

func (m *MockReferenceRepository) GetAudienceMatrix(ctx context.Context) (*domain.AudienceMatrix, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AudienceMatrix), args.Error(1)
}

func (m *MockReferenceRepository) GetFeeStructure(ctx context.Context) (*domain.FeeStructure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeStructure), args.Error(1)
}

func threeSectorPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		Profile: domain.ProfileBalanced,
		Sectors: []domain.Sector{
			{ID: "renewable", Name: "Renewable Energy", Allocation: decimal.RequireFromString("0.5"), Color: "#05BFDB"},
			{ID: "healthcare", Name: "Healthcare", Allocation: decimal.RequireFromString("0.3"), Color: "#FF6B6B"},
			{ID: "liquidity", Name: "Liquidity", Allocation: decimal.RequireFromString("0.2"), Color: "#6C757D"},
		},
	}
}

func TestSectorRing_MarksActiveSector(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	service := NewChartService(portfolioRepo, new(MockReferenceRepository))

	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileBalanced).Return(threeSectorPortfolio(), nil)

	result, err := service.SectorRing(ctx, domain.ProfileBalanced, DefaultGeometry, domain.ActiveSelection("healthcare"))

	require.NoError(t, err)
	require.Len(t, result.Segments, 3)
	assert.Equal(t, "50%", result.Segments[0].Percent)
	assert.Equal(t, "30%", result.Segments[1].Percent)
	assert.False(t, result.Segments[0].Active)
	assert.True(t, result.Segments[1].Active)
	require.NotNil(t, result.Active)
	assert.Equal(t, "Healthcare", result.Active.Name)

	// Arcs follow sector order and close the ring
	assert.Equal(t, "renewable", result.Segments[0].Arc.ID)
	assert.Equal(t, ringlayout.StartOffsetDegrees+360, result.Segments[2].Arc.EndAngle)

	portfolioRepo.AssertExpectations(t)
}

func TestSectorRing_IdleAndUnknownSelection(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	service := NewChartService(portfolioRepo, new(MockReferenceRepository))

	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileBalanced).Return(threeSectorPortfolio(), nil)

	for _, sel := range []domain.Selection{domain.IdleSelection(), domain.ActiveSelection("tobacco")} {
		result, err := service.SectorRing(ctx, domain.ProfileBalanced, DefaultGeometry, sel)
		require.NoError(t, err)
		assert.Nil(t, result.Active)
		for _, seg := range result.Segments {
			assert.False(t, seg.Active)
		}
	}
}

func TestSectorRing_InvalidTableFailsFast(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	service := NewChartService(portfolioRepo, new(MockReferenceRepository))

	broken := threeSectorPortfolio()
	broken.Sectors[2].Allocation = decimal.RequireFromString("0.3") // Sum 1.1
	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileBalanced).Return(broken, nil)

	result, err := service.SectorRing(ctx, domain.ProfileBalanced, DefaultGeometry, domain.IdleSelection())

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrLayoutPrecondition)
	assert.Contains(t, err.Error(), "must sum to 1")
}

func TestSectorRing_InvalidGeometry(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	service := NewChartService(portfolioRepo, new(MockReferenceRepository))

	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileBalanced).Return(threeSectorPortfolio(), nil)

	g := ringlayout.Geometry{OuterRadius: 50, InnerRadius: 80}
	_, err := service.SectorRing(ctx, domain.ProfileBalanced, g, domain.IdleSelection())

	assert.ErrorIs(t, err, domain.ErrLayoutPrecondition)
}

func TestSectorRing_RepositoryError(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	service := NewChartService(portfolioRepo, new(MockReferenceRepository))

	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileGrowth).Return(nil, domain.ErrNotFound)

	_, err := service.SectorRing(ctx, domain.ProfileGrowth, DefaultGeometry, domain.IdleSelection())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to load portfolio")
}

func TestPortfolio_FormatsAllocationsAndFees(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	referenceRepo := new(MockReferenceRepository)
	service := NewChartService(portfolioRepo, referenceRepo)

	fees := &domain.FeeStructure{Total: decimal.RequireFromString("0.75")}
	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileBalanced).Return(threeSectorPortfolio(), nil)
	referenceRepo.On("GetFeeStructure", ctx).Return(fees, nil)

	result, err := service.Portfolio(ctx, domain.ProfileBalanced)

	require.NoError(t, err)
	assert.Equal(t, "50.0%", result.Allocations["renewable"])
	assert.Equal(t, "20.0%", result.Allocations["liquidity"])
	assert.Same(t, fees, result.Fees)
	assert.Equal(t, "$10,000", result.ExampleAmount)
	assert.Equal(t, "$75", result.AnnualCost)
	referenceRepo.AssertExpectations(t)
}

func TestPortfolio_UnknownExampleCurrency(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	referenceRepo := new(MockReferenceRepository)
	service := NewChartService(portfolioRepo, referenceRepo)

	original := FeeExampleCurrency
	FeeExampleCurrency = "XYZW"
	defer func() { FeeExampleCurrency = original }()

	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileBalanced).Return(threeSectorPortfolio(), nil)
	referenceRepo.On("GetFeeStructure", ctx).Return(&domain.FeeStructure{Total: decimal.RequireFromString("0.75")}, nil)

	_, err := service.Portfolio(ctx, domain.ProfileBalanced)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to format fee example")
}

func TestPortfolio_FeeLookupError(t *testing.T) {
	ctx := context.Background()
	portfolioRepo := new(MockPortfolioRepository)
	referenceRepo := new(MockReferenceRepository)
	service := NewChartService(portfolioRepo, referenceRepo)

	portfolioRepo.On("GetPortfolio", ctx, domain.ProfileBalanced).Return(threeSectorPortfolio(), nil)
	referenceRepo.On("GetFeeStructure", ctx).Return(nil, errors.New("boom"))

	_, err := service.Portfolio(ctx, domain.ProfileBalanced)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load fee structure")
}
