// Package catalog holds the static tables shown on the site: portfolio
// sectors, risk profiles and factors, audience segments and fees.
// Every function returns a fresh copy; callers may not mutate shared state.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
)

// Portfolios returns the sector breakdown of every profile that has one
func Portfolios() []*domain.Portfolio {
	return []*domain.Portfolio{balanced()}
}

func balanced() *domain.Portfolio {
	return &domain.Portfolio{
		Profile: domain.ProfileBalanced,
		Sectors: []domain.Sector{
			{
				ID:         "renewable",
				Name:       "Renewable Energy & Efficiency",
				Allocation: decimal.RequireFromString("0.45"),
				Color:      "#05BFDB",
				Icon:       "wind",
				Activities: []string{
					"Solar/wind farms",
					"Green building tech",
					"Energy-smart grid infrastructure",
				},
			},
			{
				ID:         "healthcare",
				Name:       "Healthcare Innovation",
				Allocation: decimal.RequireFromString("0.25"),
				Color:      "#FF6B6B",
				Icon:       "heart",
				Activities: []string{
					"Affordable medicines",
					"Medical access in emerging markets",
					"Ethical biotech research",
				},
			},
			{
				ID:         "agriculture",
				Name:       "Sustainable Agriculture",
				Allocation: decimal.RequireFromString("0.15"),
				Color:      "#A3B763",
				Icon:       "leaf",
				Activities: []string{
					"Regenerative farming",
					"Clean water technology",
					"Reduced-waste supply chains",
				},
			},
			{
				ID:         "education",
				Name:       "Education Technology",
				Allocation: decimal.RequireFromString("0.10"),
				Color:      "#9368B7",
				Icon:       "graduation-cap",
				Activities: []string{
					"Ed-tech for underserved communities",
					"Digital literacy platforms",
					"Vocational training programs",
				},
			},
			{
				ID:         "liquidity",
				Name:       "Liquidity Reserve",
				Allocation: decimal.RequireFromString("0.05"),
				Color:      "#6C757D",
				Icon:       "shield",
				Activities: []string{
					"High-grade green bonds",
					"Cash equivalents",
					"Market stability buffer",
				},
			},
		},
		Geographic: []domain.RegionAllocation{
			{Region: "North America", Percentage: 50, Longitude: -100, Latitude: 40},
			{Region: "Europe", Percentage: 30, Longitude: 15, Latitude: 54},
			{Region: "Asia-Pacific", Percentage: 15, Longitude: 110, Latitude: 30},
			{Region: "Other Regions", Percentage: 5, Longitude: 20, Latitude: -20},
		},
	}
}

// Fees returns the annual fee breakdown, values in percent per year
func Fees() *domain.FeeStructure {
	return &domain.FeeStructure{
		Total: decimal.RequireFromString("0.75"),
		Breakdown: []domain.FeeItem{
			{
				Name:        "Platform & Management",
				Value:       decimal.RequireFromString("0.45"),
				Description: "Portfolio construction, monitoring, and reporting",
			},
			{
				Name:        "Underlying Fund Costs",
				Value:       decimal.RequireFromString("0.25"),
				Description: "Average Total Expense Ratio (TER)",
			},
			{
				Name:        "Custody & Administration",
				Value:       decimal.RequireFromString("0.05"),
				Description: "Third-party bank custody services",
			},
		},
	}
}
