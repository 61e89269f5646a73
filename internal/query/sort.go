package query

import (
	"cmp"
	"slices"

	"github.com/rickgao/poe-ninja-cli/internal/model"
)

// SortCurrenciesByValue orders currencies by ChaosEquivalent, highest first.
// Lines without a ChaosEquivalent rank below every priced line. The sort is
// stable, so equal values (and unpriced lines) keep their input order.
func SortCurrenciesByValue(lines []model.CurrencyLine) []model.CurrencyLine {
	out := append(make([]model.CurrencyLine, 0, len(lines)), lines...)
	slices.SortStableFunc(out, func(a, b model.CurrencyLine) int {
		return compareOptionalDesc(a.ChaosEquivalent, b.ChaosEquivalent)
	})
	return out
}

// SortItemsByValue orders items by ChaosValue, highest first. The sort is
// stable.
func SortItemsByValue(lines []model.ItemLine) []model.ItemLine {
	out := append(make([]model.ItemLine, 0, len(lines)), lines...)
	slices.SortStableFunc(out, func(a, b model.ItemLine) int {
		return cmp.Compare(b.ChaosValue, a.ChaosValue)
	})
	return out
}

// compareOptionalDesc orders present values descending, then absent ones.
func compareOptionalDesc(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*b, *a)
	}
}
