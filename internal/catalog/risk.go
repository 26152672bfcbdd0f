package catalog

import "github.com/simaogato/ethicalfolio-backend/internal/domain"

// RiskFactors returns the disclosed risks in display order
func RiskFactors() []domain.RiskFactor {
	return []domain.RiskFactor{
		{
			ID:          "market-risk",
			Category:    domain.RiskCategoryMarket,
			Name:        "Market Risk",
			Description: "The value of investments can fall due to broad economic downturns, interest-rate changes, or geopolitical events.",
			Mitigation:  "Broad global diversification across sectors and regions; long-term horizon to smooth volatility.",
			Severity:    3,
			Color:       "#FFD93D",
		},
		{
			ID:          "currency-risk",
			Category:    domain.RiskCategoryMarket,
			Name:        "Currency Risk",
			Description: "Fluctuations in foreign exchange rates may affect the value of international investments.",
			Mitigation:  "Natural hedging through geographic diversification and selective currency hedging strategies.",
			Severity:    2,
			Color:       "#FFD93D",
		},
		{
			ID:          "concentration-risk",
			Category:    domain.RiskCategoryEthical,
			Name:        "Concentration Risk",
			Description: "Heavy ethical screening can reduce diversification, potentially concentrating exposure in fewer sectors.",
			Mitigation:  "Our positive screening actively builds a diversified portfolio across multiple high-impact themes.",
			Severity:    2,
			Color:       "#05BFDB",
		},
		{
			ID:          "greenwashing-risk",
			Category:    domain.RiskCategoryEthical,
			Name:        "Greenwashing Risk",
			Description: "Companies may overstate their environmental or social credentials, leading to misallocation.",
			Mitigation:  "Rigorous due diligence process with independent third-party verification of ESG claims.",
			Severity:    2,
			Color:       "#05BFDB",
		},
		{
			ID:          "liquidity-risk",
			Category:    domain.RiskCategoryOperational,
			Name:        "Liquidity Risk",
			Description: "Some ethical investments may be less liquid than mainstream alternatives.",
			Mitigation:  "Maintaining 5% liquidity buffer and investing primarily in publicly traded securities.",
			Severity:    1,
			Color:       "#A3B763",
		},
	}
}

// RiskProfiles returns every profile keyed by its ProfileKey
func RiskProfiles() map[domain.ProfileKey]domain.RiskProfile {
	return map[domain.ProfileKey]domain.RiskProfile{
		domain.ProfileCautious: {
			Key:         domain.ProfileCautious,
			Name:        "Cautious",
			EquityRatio: 70,
			BondRatio:   30,
			SectorAdjustments: []domain.SectorAdjustment{
				{Sector: "Renewable Energy", Change: -10},
				{Sector: "Liquidity Reserve", Change: 10},
			},
			MarketVolatility:  2,
			ConcentrationRisk: 2,
			ImpactPotential:   2,
			IncomeStability:   4,
		},
		domain.ProfileBalanced: {
			Key:               domain.ProfileBalanced,
			Name:              "Balanced",
			EquityRatio:       85,
			BondRatio:         15,
			MarketVolatility:  3,
			ConcentrationRisk: 3,
			ImpactPotential:   3,
			IncomeStability:   3,
		},
		domain.ProfileGrowth: {
			Key:         domain.ProfileGrowth,
			Name:        "Growth",
			EquityRatio: 95,
			BondRatio:   5,
			SectorAdjustments: []domain.SectorAdjustment{
				{Sector: "Renewable Energy & Tech", Change: 10},
				{Sector: "Liquidity Reserve", Change: -5},
			},
			MarketVolatility:  4,
			ConcentrationRisk: 4,
			ImpactPotential:   4,
			IncomeStability:   2,
		},
	}
}
