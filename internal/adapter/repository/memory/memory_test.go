package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

func TestCatalogRepository_GetPortfolio(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()

	p, err := repo.GetPortfolio(ctx, domain.ProfileBalanced)
	require.NoError(t, err)
	require.Len(t, p.Sectors, 5)
	assert.Equal(t, "renewable", p.Sectors[0].ID)

	// Returned portfolios are copies
	p.Sectors[0].Allocation = decimal.Zero
	again, err := repo.GetPortfolio(ctx, domain.ProfileBalanced)
	require.NoError(t, err)
	assert.True(t, again.Sectors[0].Allocation.Equal(decimal.RequireFromString("0.45")))

	_, err = repo.GetPortfolio(ctx, domain.ProfileGrowth)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogRepository_SavePortfolio(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()

	growth := &domain.Portfolio{
		Profile: domain.ProfileGrowth,
		Sectors: []domain.Sector{{ID: "renewable", Name: "Renewable", Allocation: decimal.NewFromInt(1)}},
	}
	require.NoError(t, repo.SavePortfolio(ctx, growth))

	got, err := repo.GetPortfolio(ctx, domain.ProfileGrowth)
	require.NoError(t, err)
	assert.Equal(t, "Renewable", got.Sectors[0].Name)
}

func TestCatalogRepository_ReferenceTables(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogRepository()

	profile, err := repo.GetRiskProfile(ctx, domain.ProfileCautious)
	require.NoError(t, err)
	assert.Equal(t, 70, profile.EquityRatio)

	_, err = repo.GetRiskProfile(ctx, "reckless")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	factors, err := repo.ListRiskFactors(ctx)
	require.NoError(t, err)
	assert.Len(t, factors, 5)

	matrix, err := repo.GetAudienceMatrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Investment Experience", matrix.X.Name)

	fees, err := repo.GetFeeStructure(ctx)
	require.NoError(t, err)
	assert.True(t, fees.Total.Equal(decimal.RequireFromString("0.75")))
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	_, err := repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	fresh := domain.NewSession(now)
	stale := domain.NewSession(now.Add(-time.Hour))
	require.NoError(t, repo.Save(ctx, fresh))
	require.NoError(t, repo.Save(ctx, stale))

	got, err := repo.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, fresh.ID, got.ID)

	// Mutating the returned value does not touch the store
	got.Sectors = domain.ActiveSelection("renewable")
	again, err := repo.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.True(t, again.Sectors.IsIdle())

	removed, err := repo.DeleteIdleSince(ctx, now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = repo.Get(ctx, fresh.ID)
	assert.NoError(t, err)

	// Update only touches sessions that still exist
	got.Sectors = domain.ActiveSelection("renewable")
	require.NoError(t, repo.Update(ctx, got))
	again, err = repo.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, "renewable", again.Sectors.ActiveID)

	assert.ErrorIs(t, repo.Update(ctx, stale), domain.ErrNotFound)
	_, err = repo.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
