package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/alexmcqw/signmap/src/diag"
	"github.com/alexmcqw/signmap/src/types"
)

// VenueStore holds the dataset in memory: the geolocatable rows in source
// order plus the filter column index built once at load. It is immutable
// after New returns, so concurrent readers need no locking.
type VenueStore struct {
	columns []string
	rows    []types.Row
	filters []types.FilterColumn
	skipped int
}

// New fetches, parses and partitions the dataset. Rows without finite
// coordinates are reported to the diagnostic stream and excluded from every
// downstream stage. The filter index is derived from the full geolocatable
// set and never recomputed from a filtered subset.
func New(source string, log *diag.Logger) (*VenueStore, error) {
	data, err := fetchSource(source)
	if err != nil {
		return nil, err
	}

	columns, parsed, err := parseRows(data)
	if err != nil {
		return nil, err
	}

	s := &VenueStore{columns: columns}
	for i, row := range parsed {
		if !row.Geolocatable() {
			// Line numbers are 1-based and include the header.
			log.RowSkipped(diag.StageLoad, fmt.Sprintf("line:%d", i+2), "non-finite coordinates")
			s.skipped++
			continue
		}
		row.ID = row.Fields["id"]
		if row.ID == "" {
			row.ID = uuid.NewString()
		}
		s.rows = append(s.rows, row)
	}

	s.filters = buildFilterIndex(columns, s.rows)

	log.DatasetLoaded(source, len(s.rows), s.skipped)
	return s, nil
}

// Rows returns the geolocatable rows in source order.
func (s *VenueStore) Rows() []types.Row { return s.rows }

// Filter applies the evaluator to the full geolocatable set.
func (s *VenueStore) Filter(state types.FilterState) []types.Row {
	return Filter(s.rows, state)
}

// FilterColumns returns the eligible dropdown columns in first-seen source
// order.
func (s *VenueStore) FilterColumns() []types.FilterColumn { return s.filters }

// SkippedRows returns how many source rows failed coordinate validation.
func (s *VenueStore) SkippedRows() int { return s.skipped }
