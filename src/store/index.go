package store

import (
	"sort"

	"github.com/alexmcqw/signmap/src/types"
)

// maxFilterValues bounds dropdown size: a column with this many or more
// distinct values is not offered as a filter.
const maxFilterValues = 50

// Coordinate, name and identity columns never become dropdown filters.
var nonFilterColumns = map[string]bool{
	"latitude":  true,
	"longitude": true,
	"name":      true,
	"title":     true,
	"id":        true,
}

// buildFilterIndex derives, per eligible column, the sorted set of distinct
// non-empty values. Columns keep their first-seen source order; columns with
// zero or too many distinct values are silently omitted. Distinctness is
// case-sensitive exact equality.
func buildFilterIndex(columns []string, rows []types.Row) []types.FilterColumn {
	var index []types.FilterColumn
	for _, col := range columns {
		if nonFilterColumns[col] {
			continue
		}

		seen := map[string]bool{}
		for _, row := range rows {
			if v := row.Fields[col]; v != "" {
				seen[v] = true
			}
		}
		if len(seen) == 0 || len(seen) >= maxFilterValues {
			continue
		}

		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)

		index = append(index, types.FilterColumn{Name: col, Values: values})
	}
	return index
}
