package seeder

import (
	"context"
	"errors"
	"fmt"

	"github.com/simaogato/ethicalfolio-backend/internal/catalog"
	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// CatalogSeeder copies the static portfolio catalog into a repository
type CatalogSeeder struct {
	repo       domain.PortfolioRepository
	portfolios []*domain.Portfolio
}

// NewCatalogSeeder creates a new CatalogSeeder seeding the built-in catalog
func NewCatalogSeeder(repo domain.PortfolioRepository) *CatalogSeeder {
	return &CatalogSeeder{
		repo:       repo,
		portfolios: catalog.Portfolios(),
	}
}

// Seed ensures every catalog portfolio exists in the repository.
// Portfolios already stored are left untouched, so running it twice is a no-op.
// It returns the number of portfolios created.
func (s *CatalogSeeder) Seed(ctx context.Context) (int, error) {
	created := 0
	for _, portfolio := range s.portfolios {
		_, err := s.repo.GetPortfolio(ctx, portfolio.Profile)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return created, fmt.Errorf("failed to check portfolio %s: %w", portfolio.Profile, err)
		}

		// Validate before creating
		if err := portfolio.Validate(); err != nil {
			return created, fmt.Errorf("catalog portfolio %s is invalid: %w", portfolio.Profile, err)
		}

		if err := s.repo.SavePortfolio(ctx, portfolio); err != nil {
			return created, fmt.Errorf("failed to seed portfolio %s: %w", portfolio.Profile, err)
		}
		created++
	}

	return created, nil
}
