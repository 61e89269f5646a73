package query

import (
	"strings"

	"github.com/rickgao/poe-ninja-cli/internal/model"
)

// CurrencyQuery selects currency lines. Nil fields do not filter.
type CurrencyQuery struct {
	Name *string // case-insensitive substring
}

// ItemQuery selects item lines. Nil fields do not filter.
type ItemQuery struct {
	Name     *string  // case-insensitive substring
	MinChaos *float64 // inclusive
	MaxChaos *float64 // inclusive
}

// Currencies applies q to lines and returns the matches, most valuable first.
func Currencies(lines []model.CurrencyLine, q CurrencyQuery) []model.CurrencyLine {
	return SortCurrenciesByValue(FilterCurrenciesByName(lines, q.Name))
}

// Items applies q to lines and returns the matches, most valuable first.
func Items(lines []model.ItemLine, q ItemQuery) []model.ItemLine {
	filtered := FilterItemsByName(lines, q.Name)
	filtered = FilterItemsByRange(filtered, q.MinChaos, q.MaxChaos)
	return SortItemsByValue(filtered)
}

// FindCurrencyByName returns the first currency whose name equals name,
// ignoring case.
func FindCurrencyByName(lines []model.CurrencyLine, name string) (model.CurrencyLine, bool) {
	for _, l := range lines {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return model.CurrencyLine{}, false
}

// FindItemByName returns the first item whose name equals name, ignoring case.
func FindItemByName(lines []model.ItemLine, name string) (model.ItemLine, bool) {
	for _, l := range lines {
		if strings.EqualFold(l.Name, name) {
			return l, true
		}
	}
	return model.ItemLine{}, false
}
