package riskdial

import (
	"context"
	"fmt"

	"github.com/simaogato/ethicalfolio-backend/internal/domain"
	"github.com/simaogato/ethicalfolio-backend/internal/format"
)

var profileDescriptions = map[domain.ProfileKey]string{
	domain.ProfileCautious: "Lower volatility, steady growth focus",
	domain.ProfileBalanced: "Optimal risk-return balance",
	domain.ProfileGrowth:   "Higher potential, more volatility",
}

// Panel order on the page
var categories = []domain.RiskCategory{
	domain.RiskCategoryMarket,
	domain.RiskCategoryEthical,
	domain.RiskCategoryOperational,
}

var titleOverrides = map[domain.RiskCategory]string{
	domain.RiskCategoryEthical: "Ethical-Specific Risks",
}

// categoryTitle names a factor panel, e.g. "market" -> "Market Risks"
func categoryTitle(c domain.RiskCategory) string {
	if title, ok := titleOverrides[c]; ok {
		return title
	}
	return format.TitleCase(string(c)) + " Risks"
}

// ProfileOption is one button of the profile picker
type ProfileOption struct {
	Key    domain.ProfileKey
	Name   string
	Active bool
}

// Metric is one bar group under the dial
type Metric struct {
	Label string
	Value int    // 1..5 filled bars
	Level string // e.g. "Medium"
}

// FactorView is a risk factor with its panel state
type FactorView struct {
	Factor  domain.RiskFactor
	Hovered bool
}

// FactorGroup is one category panel next to the dial
type FactorGroup struct {
	Category domain.RiskCategory
	Title    string
	Factors  []FactorView
}

// DialResult is the full state of the risk transparency section
type DialResult struct {
	Profile     domain.RiskProfile
	Options     []ProfileOption
	NeedleAngle float64
	Description string
	Ratio       string // e.g. "85% / 15%"
	Metrics     []Metric
	Groups      []FactorGroup
	// Hovered is the factor whose description and mitigation are expanded, nil when idle
	Hovered *domain.RiskFactor
}

// DialService handles the risk transparency dial
type DialService struct {
	ReferenceRepo domain.ReferenceRepository
}

// NewDialService creates a new DialService instance
func NewDialService(referenceRepo domain.ReferenceRepository) *DialService {
	return &DialService{ReferenceRepo: referenceRepo}
}

// Dial builds the dial for a profile with the hovered risk factor expanded
func (s *DialService) Dial(ctx context.Context, key domain.ProfileKey, hovered domain.Selection) (*DialResult, error) {
	profile, err := s.ReferenceRepo.GetRiskProfile(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk profile: %w", err)
	}

	factors, err := s.ReferenceRepo.ListRiskFactors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk factors: %w", err)
	}

	result := &DialResult{
		Profile:     *profile,
		NeedleAngle: domain.DialAngle(key),
		Description: profileDescriptions[key],
		Ratio:       format.Ratio(profile.EquityRatio, profile.BondRatio),
		Metrics: []Metric{
			metric("Market Volatility", profile.MarketVolatility),
			metric("Concentration Risk", profile.ConcentrationRisk),
			metric("Impact Potential", profile.ImpactPotential),
			metric("Income Stability", profile.IncomeStability),
		},
	}

	for _, option := range domain.ProfileKeys() {
		name := format.TitleCase(string(option))
		if p, err := s.ReferenceRepo.GetRiskProfile(ctx, option); err == nil {
			name = p.Name
		}
		result.Options = append(result.Options, ProfileOption{Key: option, Name: name, Active: option == key})
	}

	for _, category := range categories {
		group := FactorGroup{Category: category, Title: categoryTitle(category)}
		for _, f := range factors {
			if f.Category != category {
				continue
			}
			view := FactorView{Factor: f, Hovered: hovered.IsActive(f.ID)}
			if view.Hovered {
				factor := f
				result.Hovered = &factor
			}
			group.Factors = append(group.Factors, view)
		}
		if len(group.Factors) > 0 {
			result.Groups = append(result.Groups, group)
		}
	}

	return result, nil
}

func metric(label string, value int) Metric {
	return Metric{Label: label, Value: value, Level: format.RiskLevel(value)}
}
