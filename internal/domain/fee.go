package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// FeeItem is one line of the annual fee breakdown
type FeeItem struct {
	Name        string
	Value       decimal.Decimal // Percent per year, e.g. 0.45 means 0.45%
	Description string
}

// FeeStructure is the total annual fee and its components
type FeeStructure struct {
	Total     decimal.Decimal
	Breakdown []FeeItem
}

// Validate ensures the breakdown adds up to the advertised total
func (f *FeeStructure) Validate() error {
	if f.Total.LessThan(decimal.Zero) {
		return errors.New("total fee cannot be negative")
	}

	sum := decimal.Zero
	for _, item := range f.Breakdown {
		if item.Value.LessThan(decimal.Zero) {
			return fmt.Errorf("fee %s cannot be negative", item.Name)
		}
		sum = sum.Add(item.Value)
	}

	if !sum.Equal(f.Total) {
		return fmt.Errorf("fee breakdown sums to %s, total is %s", sum, f.Total)
	}
	return nil
}
