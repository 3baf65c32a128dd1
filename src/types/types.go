package types

import (
	"math"
	"strconv"
	"strings"
)

// Icon is the marker icon class shown on the map.
type Icon string

const (
	IconDrink   Icon = "drink"
	IconFood    Icon = "food"
	IconDefault Icon = "default"
)

// foodDrinkKeywords classify a venue as food/drink when any of them appears
// in the category, case-insensitively.
var foodDrinkKeywords = []string{"food", "restaurant", "cafe", "bar"}

// iconByType maps the raw "type" column to a marker icon. Lookup is exact;
// anything else falls back to IconDefault.
var iconByType = map[string]Icon{
	"bar":        IconDrink,
	"pub":        IconDrink,
	"restaurant": IconFood,
	"cafe":       IconFood,
	"food":       IconFood,
}

// Row is one record of the source dataset: the shared column order plus the
// raw string value per column. Absent fields are empty strings. Derived
// values (coordinates, classification, icon) are computed on demand, never
// stored.
type Row struct {
	ID      string
	Columns []string
	Fields  map[string]string
}

// Get returns the raw value for a column, empty when absent.
func (r Row) Get(col string) string {
	return r.Fields[col]
}

// Latitude parses the latitude column. ok is false unless the value is a
// finite number.
func (r Row) Latitude() (float64, bool) {
	return finiteField(r.Fields["latitude"])
}

// Longitude parses the longitude column. ok is false unless the value is a
// finite number.
func (r Row) Longitude() (float64, bool) {
	return finiteField(r.Fields["longitude"])
}

// Geolocatable reports whether both coordinates parse as finite numbers.
// Rows failing this are excluded from every downstream stage.
func (r Row) Geolocatable() bool {
	_, latOK := r.Latitude()
	_, lonOK := r.Longitude()
	return latOK && lonOK
}

// Name returns the display name, preferring "name" over "title".
func (r Row) Name() string {
	if n := r.Fields["name"]; n != "" {
		return n
	}
	return r.Fields["title"]
}

// Category returns the free-text classification, possibly empty.
func (r Row) Category() string {
	return r.Fields["category"]
}

// IsFoodDrink reports whether the category contains any food/drink keyword,
// case-insensitively.
func (r Row) IsFoodDrink() bool {
	cat := strings.ToLower(r.Category())
	if cat == "" {
		return false
	}
	for _, kw := range foodDrinkKeywords {
		if strings.Contains(cat, kw) {
			return true
		}
	}
	return false
}

// IconClass selects the marker icon from the "type" column, falling back to
// the default icon when the value is absent or unknown.
func (r Row) IconClass() Icon {
	if icon, ok := iconByType[r.Fields["type"]]; ok {
		return icon
	}
	return IconDefault
}

// SearchBlob is the lowered concatenation of all field values in column
// order, joined by single spaces. The search predicate is a substring match
// against it.
func (r Row) SearchBlob() string {
	vals := make([]string, 0, len(r.Columns))
	for _, col := range r.Columns {
		vals = append(vals, r.Fields[col])
	}
	return strings.ToLower(strings.Join(vals, " "))
}

func finiteField(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FilterState is the ephemeral UI state driving the evaluator: the search
// string plus per-column selections. An empty selection imposes no
// constraint.
type FilterState struct {
	Search   string
	Selected map[string]string
}

// Empty reports whether the state constrains nothing.
func (s FilterState) Empty() bool {
	if s.Search != "" {
		return false
	}
	for _, v := range s.Selected {
		if v != "" {
			return false
		}
	}
	return true
}

// FilterColumn is one dropdown filter: a column name and its sorted distinct
// non-empty values.
type FilterColumn struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Catalog is the read-only venue dataset the handlers work against.
type Catalog interface {
	Rows() []Row
	Filter(state FilterState) []Row
	FilterColumns() []FilterColumn
	Nearby(lat, lon float64, n int) []Row
	SkippedRows() int
}
