package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ProfileKey identifies one of the portfolio risk profiles
type ProfileKey string

const (
	ProfileCautious ProfileKey = "cautious"
	ProfileBalanced ProfileKey = "balanced"
	ProfileGrowth   ProfileKey = "growth"
)

// DefaultProfile is the profile shown before the visitor picks one
const DefaultProfile = ProfileBalanced

// ProfileKeys lists the profiles in dial order (left to right)
func ProfileKeys() []ProfileKey {
	return []ProfileKey{ProfileCautious, ProfileBalanced, ProfileGrowth}
}

// ParseProfileKey converts a raw string into a ProfileKey
func ParseProfileKey(raw string) (ProfileKey, error) {
	for _, key := range ProfileKeys() {
		if string(key) == raw {
			return key, nil
		}
	}
	return "", fmt.Errorf("unknown risk profile %q", raw)
}

// AllocationTolerance is the maximum distance between the sum of sector
// allocations and 1 that is still treated as a closed ring
var AllocationTolerance = decimal.New(1, -6)

// Sector is one allocation category of a portfolio breakdown
type Sector struct {
	ID         string
	Name       string
	Allocation decimal.Decimal // Fraction of the portfolio in (0, 1]
	Color      string          // Display color token, opaque to the geometry
	Icon       string
	Activities []string // Ordered, display only
}

// Validate ensures the sector adheres to domain rules
func (s *Sector) Validate() error {
	if s.ID == "" {
		return errors.New("sector id cannot be empty")
	}
	if s.Name == "" {
		return fmt.Errorf("sector %s: name cannot be empty", s.ID)
	}
	if s.Allocation.LessThanOrEqual(decimal.Zero) || s.Allocation.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("sector %s: allocation must be in (0, 1], got %s", s.ID, s.Allocation)
	}
	return nil
}

// RegionAllocation is the geographic share of a portfolio
type RegionAllocation struct {
	Region     string
	Percentage int
	Longitude  float64
	Latitude   float64
}

// Portfolio is the sector and geographic breakdown of one risk profile
type Portfolio struct {
	Profile    ProfileKey
	Sectors    []Sector
	Geographic []RegionAllocation
}

// Validate ensures sector ids are unique and allocations form a full ring
func (p *Portfolio) Validate() error {
	if len(p.Sectors) == 0 {
		return errors.New("portfolio must have at least one sector")
	}

	seen := make(map[string]struct{}, len(p.Sectors))
	for i := range p.Sectors {
		if err := p.Sectors[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.Sectors[i].ID]; dup {
			return fmt.Errorf("duplicate sector id %s", p.Sectors[i].ID)
		}
		seen[p.Sectors[i].ID] = struct{}{}
	}

	total := p.TotalAllocation()
	if total.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(AllocationTolerance) {
		return fmt.Errorf("sector allocations must sum to 1, got %s", total)
	}

	if len(p.Geographic) > 0 {
		percent := 0
		for _, region := range p.Geographic {
			if region.Percentage < 0 {
				return fmt.Errorf("region %s: percentage cannot be negative", region.Region)
			}
			percent += region.Percentage
		}
		if percent != 100 {
			return fmt.Errorf("geographic percentages must sum to 100, got %d", percent)
		}
	}

	return nil
}

// TotalAllocation sums the allocation of every sector
func (p *Portfolio) TotalAllocation() decimal.Decimal {
	total := decimal.Zero
	for _, s := range p.Sectors {
		total = total.Add(s.Allocation)
	}
	return total
}

// FindSector returns the sector with the given id
func (p *Portfolio) FindSector(id string) (*Sector, bool) {
	for i := range p.Sectors {
		if p.Sectors[i].ID == id {
			return &p.Sectors[i], true
		}
	}
	return nil, false
}

// Clone returns a deep copy so callers cannot mutate a shared static table
func (p *Portfolio) Clone() *Portfolio {
	out := &Portfolio{
		Profile:    p.Profile,
		Sectors:    make([]Sector, len(p.Sectors)),
		Geographic: make([]RegionAllocation, len(p.Geographic)),
	}
	for i, s := range p.Sectors {
		s.Activities = append([]string(nil), s.Activities...)
		out.Sectors[i] = s
	}
	copy(out.Geographic, p.Geographic)
	return out
}
