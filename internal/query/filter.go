package query

import (
	"strings"

	"github.com/rickgao/poe-ninja-cli/internal/model"
)

// FilterCurrenciesByName keeps currencies whose name contains substr,
// ignoring case. A nil substr keeps every line.
func FilterCurrenciesByName(lines []model.CurrencyLine, substr *string) []model.CurrencyLine {
	return filterByName(lines, substr, func(l model.CurrencyLine) string { return l.Name })
}

// FilterItemsByName keeps items whose name contains substr, ignoring case.
// A nil substr keeps every line.
func FilterItemsByName(lines []model.ItemLine, substr *string) []model.ItemLine {
	return filterByName(lines, substr, func(l model.ItemLine) string { return l.Name })
}

// FilterItemsByRange keeps items with minChaos <= ChaosValue <= maxChaos.
// A nil bound does not constrain.
func FilterItemsByRange(lines []model.ItemLine, minChaos, maxChaos *float64) []model.ItemLine {
	return filter(lines, func(l model.ItemLine) bool {
		if minChaos != nil && l.ChaosValue < *minChaos {
			return false
		}
		if maxChaos != nil && l.ChaosValue > *maxChaos {
			return false
		}
		return true
	})
}

func filterByName[T any](lines []T, substr *string, name func(T) string) []T {
	if substr == nil {
		return filter(lines, nil)
	}
	needle := strings.ToLower(*substr)
	return filter(lines, func(l T) bool {
		return strings.Contains(strings.ToLower(name(l)), needle)
	})
}

// filter returns the lines accepted by keep in input order; a nil keep
// accepts everything.
func filter[T any](lines []T, keep func(T) bool) []T {
	out := make([]T, 0, len(lines))
	for _, l := range lines {
		if keep == nil || keep(l) {
			out = append(out, l)
		}
	}
	return out
}
