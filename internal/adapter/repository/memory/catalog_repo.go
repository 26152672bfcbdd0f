package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/simaogato/ethicalfolio-backend/internal/catalog"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// CatalogRepository serves the static tables from memory.
// It implements domain.PortfolioRepository and domain.ReferenceRepository.
type CatalogRepository struct {
	mu         sync.RWMutex
	portfolios map[domain.ProfileKey]*domain.Portfolio
}

// NewCatalogRepository creates a repository loaded with the static catalog
func NewCatalogRepository() *CatalogRepository {
	r := &CatalogRepository{portfolios: make(map[domain.ProfileKey]*domain.Portfolio)}
	for _, p := range catalog.Portfolios() {
		r.portfolios[p.Profile] = p
	}
	return r
}

// GetPortfolio retrieves the breakdown of a profile
func (r *CatalogRepository) GetPortfolio(ctx context.Context, profile domain.ProfileKey) (*domain.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.portfolios[profile]
	if !ok {
		return nil, fmt.Errorf("portfolio for profile %s: %w", profile, domain.ErrNotFound)
	}
	return p.Clone(), nil
}

// SavePortfolio replaces the breakdown of a profile
func (r *CatalogRepository) SavePortfolio(ctx context.Context, portfolio *domain.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.portfolios[portfolio.Profile] = portfolio.Clone()
	return nil
}

// GetRiskProfile retrieves a single risk profile
func (r *CatalogRepository) GetRiskProfile(ctx context.Context, key domain.ProfileKey) (*domain.RiskProfile, error) {
	profile, ok := catalog.RiskProfiles()[key]
	if !ok {
		return nil, fmt.Errorf("risk profile %s: %w", key, domain.ErrNotFound)
	}
	return &profile, nil
}

// ListRiskFactors retrieves all disclosed risk factors
func (r *CatalogRepository) ListRiskFactors(ctx context.Context) ([]domain.RiskFactor, error) {
	return catalog.RiskFactors(), nil
}

// GetAudienceMatrix retrieves the segmentation matrix
func (r *CatalogRepository) GetAudienceMatrix(ctx context.Context) (*domain.AudienceMatrix, error) {
	return catalog.Audience(), nil
}

// GetFeeStructure retrieves the annual fee breakdown
func (r *CatalogRepository) GetFeeStructure(ctx context.Context) (*domain.FeeStructure, error) {
	return catalog.Fees(), nil
}
