package domain

import (
	"errors"
	"fmt"
)

// RiskCategory groups risk factors on the dial panel
type RiskCategory string

const (
	RiskCategoryMarket      RiskCategory = "market"
	RiskCategoryEthical     RiskCategory = "ethical"
	RiskCategoryOperational RiskCategory = "operational"
)

const (
	minLevel = 1
	maxLevel = 5
)

// RiskFactor is a disclosed risk with its mitigation
type RiskFactor struct {
	ID          string
	Category    RiskCategory
	Name        string
	Description string
	Mitigation  string
	Severity    int // 1 (lowest) to 5
	Color       string
}

// Validate ensures the risk factor adheres to domain rules
func (r *RiskFactor) Validate() error {
	if r.ID == "" {
		return errors.New("risk factor id cannot be empty")
	}
	switch r.Category {
	case RiskCategoryMarket, RiskCategoryEthical, RiskCategoryOperational:
	default:
		return fmt.Errorf("risk factor %s: unknown category %q", r.ID, r.Category)
	}
	if r.Severity < minLevel || r.Severity > maxLevel {
		return fmt.Errorf("risk factor %s: severity must be between %d and %d", r.ID, minLevel, maxLevel)
	}
	return nil
}

// SectorAdjustment is a percentage-point tilt a profile applies to a sector
type SectorAdjustment struct {
	Sector string
	Change int
}

// RiskProfile describes how a risk tolerance shapes the portfolio
type RiskProfile struct {
	Key               ProfileKey
	Name              string
	EquityRatio       int
	BondRatio         int
	SectorAdjustments []SectorAdjustment
	MarketVolatility  int
	ConcentrationRisk int
	ImpactPotential   int
	IncomeStability   int
}

// Validate ensures ratios add to 100 and metric levels are in range
func (p *RiskProfile) Validate() error {
	if p.Name == "" {
		return errors.New("risk profile name cannot be empty")
	}
	if p.EquityRatio < 0 || p.BondRatio < 0 || p.EquityRatio+p.BondRatio != 100 {
		return fmt.Errorf("risk profile %s: equity/bond ratio must sum to 100", p.Key)
	}
	for _, level := range []int{p.MarketVolatility, p.ConcentrationRisk, p.ImpactPotential, p.IncomeStability} {
		if level < minLevel || level > maxLevel {
			return fmt.Errorf("risk profile %s: metric levels must be between %d and %d", p.Key, minLevel, maxLevel)
		}
	}
	return nil
}

// DialAngle returns the needle rotation in degrees for a profile, 0 being straight up
func DialAngle(key ProfileKey) float64 {
	switch key {
	case ProfileCautious:
		return -40
	case ProfileGrowth:
		return 40
	default:
		return 0
	}
}
