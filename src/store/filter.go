package store

import (
	"strings"

	"github.com/alexmcqw/signmap/src/types"
)

// Filter is the pure evaluator: it returns the order-preserving subsequence
// of rows matching the state. A row is included iff the search predicate and
// every column predicate hold. Same inputs always yield the same output.
func Filter(rows []types.Row, state types.FilterState) []types.Row {
	search := strings.ToLower(state.Search)

	out := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		if search != "" && !strings.Contains(row.SearchBlob(), search) {
			continue
		}
		if !matchesSelections(row, state.Selected) {
			continue
		}
		out = append(out, row)
	}
	return out
}

// matchesSelections checks every column with a non-empty selected value for
// exact, case-sensitive equality. Columns with no selection impose no
// constraint.
func matchesSelections(row types.Row, selected map[string]string) bool {
	for col, want := range selected {
		if want == "" {
			continue
		}
		if row.Fields[col] != want {
			return false
		}
	}
	return true
}
