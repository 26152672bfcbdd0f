package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// portfolioRepository implements domain.PortfolioRepository
type portfolioRepository struct {
	db *DB
}

// NewPortfolioRepository creates a new portfolio repository
func NewPortfolioRepository(db *DB) domain.PortfolioRepository {
	return &portfolioRepository{db: db}
}

// GetPortfolio retrieves the sectors and regions of a profile in display order
func (r *portfolioRepository) GetPortfolio(ctx context.Context, profile domain.ProfileKey) (*domain.Portfolio, error) {
	query := `
		SELECT id, name, allocation, color, icon, activities
		FROM portfolio_sectors
		WHERE profile = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, string(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio sectors: %w", err)
	}
	defer rows.Close()

	portfolio := &domain.Portfolio{Profile: profile}
	for rows.Next() {
		var sector domain.Sector
		var allocationStr string
		var activities pq.StringArray

		if err := rows.Scan(
			&sector.ID,
			&sector.Name,
			&allocationStr,
			&sector.Color,
			&sector.Icon,
			&activities,
		); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio sector: %w", err)
		}

		// Parse allocation (NUMERIC)
		allocation, err := decimal.NewFromString(allocationStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse allocation of sector %s: %w", sector.ID, err)
		}
		sector.Allocation = allocation
		sector.Activities = []string(activities)

		portfolio.Sectors = append(portfolio.Sectors, sector)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio sectors: %w", err)
	}

	if len(portfolio.Sectors) == 0 {
		return nil, fmt.Errorf("portfolio for profile %s: %w", profile, domain.ErrNotFound)
	}

	regions, err := r.getRegions(ctx, profile)
	if err != nil {
		return nil, err
	}
	portfolio.Geographic = regions

	return portfolio, nil
}

func (r *portfolioRepository) getRegions(ctx context.Context, profile domain.ProfileKey) ([]domain.RegionAllocation, error) {
	query := `
		SELECT region, percentage, longitude, latitude
		FROM portfolio_regions
		WHERE profile = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, string(profile))
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio regions: %w", err)
	}
	defer rows.Close()

	var regions []domain.RegionAllocation
	for rows.Next() {
		var region domain.RegionAllocation
		if err := rows.Scan(&region.Region, &region.Percentage, &region.Longitude, &region.Latitude); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio region: %w", err)
		}
		regions = append(regions, region)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio regions: %w", err)
	}

	return regions, nil
}

// SavePortfolio replaces the sectors and regions of a profile in a database transaction
func (r *portfolioRepository) SavePortfolio(ctx context.Context, portfolio *domain.Portfolio) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	profile := string(portfolio.Profile)

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM portfolio_sectors WHERE profile = $1`, profile); err != nil {
		return fmt.Errorf("failed to clear portfolio sectors: %w", err)
	}
	if _, err := dbTx.ExecContext(ctx, `DELETE FROM portfolio_regions WHERE profile = $1`, profile); err != nil {
		return fmt.Errorf("failed to clear portfolio regions: %w", err)
	}

	insertSectorQuery := `
		INSERT INTO portfolio_sectors (profile, id, position, name, allocation, color, icon, activities)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for i, sector := range portfolio.Sectors {
		_, err = dbTx.ExecContext(ctx, insertSectorQuery,
			profile,
			sector.ID,
			i,
			sector.Name,
			sector.Allocation.String(),
			sector.Color,
			sector.Icon,
			pq.Array(sector.Activities),
		)
		if err != nil {
			return fmt.Errorf("failed to insert sector %s: %w", sector.ID, err)
		}
	}

	insertRegionQuery := `
		INSERT INTO portfolio_regions (profile, region, position, percentage, longitude, latitude)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for i, region := range portfolio.Geographic {
		_, err = dbTx.ExecContext(ctx, insertRegionQuery,
			profile,
			region.Region,
			i,
			region.Percentage,
			region.Longitude,
			region.Latitude,
		)
		if err != nil {
			return fmt.Errorf("failed to insert region %s: %w", region.Region, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
