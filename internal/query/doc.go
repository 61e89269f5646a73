// Package query filters and orders decoded overview lines before display.
//
// Every function is pure: inputs are never modified and each call returns a
// newly allocated slice, so one decoded overview can be queried repeatedly.
// Filters run before sorting.
package query
