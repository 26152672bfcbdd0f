// Package format renders numbers and labels the way the site displays them.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.AmericanEnglish)
	hundred = decimal.NewFromInt(100)
)

var riskLevels = []string{"Very Low", "Low", "Medium", "High", "Very High"}

var currencySymbols = map[currency.Unit]string{
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
	currency.JPY: "¥",
}

// Percentage renders a fraction as a percentage, e.g. 0.45 -> "45.0%"
func Percentage(fraction decimal.Decimal, decimals int32) string {
	return fraction.Mul(hundred).StringFixed(decimals) + "%"
}

// Allocation renders a sector allocation with one decimal
func Allocation(fraction decimal.Decimal) string {
	return Percentage(fraction, 1)
}

// WholePercent renders a fraction as a rounded percentage, e.g. 0.45 -> "45%"
func WholePercent(fraction decimal.Decimal) string {
	return Percentage(fraction, 0)
}

// Fee renders an annual fee that is already expressed in percent, e.g. 0.75 -> "0.75%"
func Fee(percent decimal.Decimal) string {
	return percent.StringFixed(2) + "%"
}

// Ratio renders an equity/bond mix, e.g. "85% / 15%"
func Ratio(equity, bond int) string {
	return fmt.Sprintf("%d%% / %d%%", equity, bond)
}

// Number renders an integer with thousands separators
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// Currency renders a whole amount in the given ISO currency, e.g. "$1,250"
func Currency(amount decimal.Decimal, code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("invalid currency code %q: %w", code, err)
	}

	symbol, ok := currencySymbols[unit]
	if !ok {
		symbol = unit.String() + " "
	}

	whole := amount.Round(0).IntPart()
	if whole < 0 {
		return "-" + symbol + Number(-whole), nil
	}
	return symbol + Number(whole), nil
}

// RiskLevel maps a 1..5 level to its label, clamping out of range values
func RiskLevel(level int) string {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx > len(riskLevels)-1 {
		idx = len(riskLevels) - 1
	}
	return riskLevels[idx]
}

// ColorForValue maps value within [min, max] onto a green-to-red hsl color
func ColorForValue(value, min, max float64) string {
	normalized := 0.0
	if max != min {
		normalized = (value - min) / (max - min)
	}
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	hue := (1 - normalized) * 120
	return "hsl(" + strconv.FormatFloat(hue, 'f', -1, 64) + ", 70%, 50%)"
}

// TitleCase capitalizes every word and lowercases the rest
func TitleCase(s string) string {
	// Casers keep state between calls
	return cases.Title(language.English).String(s)
}

// Truncate shortens s to at most maxLength runes, ending with suffix when cut
func Truncate(s string, maxLength int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	keep := maxLength - len([]rune(suffix))
	if keep < 0 {
		keep = 0
	}
	return strings.TrimRight(string(runes[:keep]), " ") + suffix
}
