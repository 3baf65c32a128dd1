// Package render turns filtered rows into map markers and aggregate stats.
// It owns the only mutable state in the pipeline, the MarkerSet; the pure
// filtering lives in the store package.
package render

import (
	"github.com/alexmcqw/signmap/src/diag"
	"github.com/alexmcqw/signmap/src/types"
)

// Marker is one rendered map point.
type Marker struct {
	ID    string     `json:"id"`
	Lat   float64    `json:"lat"`
	Lon   float64    `json:"lon"`
	Icon  types.Icon `json:"icon"`
	Popup string     `json:"popup"`
}

// Stats are the aggregate counters shown next to the map. Visible echoes
// Total: everything rendered is visible.
type Stats struct {
	Total     int `json:"total"`
	FoodDrink int `json:"foodDrink"`
	Visible   int `json:"visible"`
}

// MarkerSet is the owned collection of rendered markers. Each Replace swaps
// the whole set, so stale markers never survive a re-render. A MarkerSet is
// not safe for concurrent use; handlers build one per request.
type MarkerSet struct {
	markers []Marker
	stats   Stats
}

// Replace re-renders the set from scratch. Rows whose coordinates are not
// both finite are skipped (a defensive re-check: rows reaching this stage
// already passed the loader's partition). A row whose popup assembly fails
// is reported and dropped; the remaining rows still render.
func (s *MarkerSet) Replace(rows []types.Row, log *diag.Logger) {
	markers := make([]Marker, 0, len(rows))
	var stats Stats

	for _, row := range rows {
		lat, latOK := row.Latitude()
		lon, lonOK := row.Longitude()
		if !latOK || !lonOK {
			log.RowSkipped(diag.StageRender, row.ID, "non-finite coordinates")
			continue
		}

		popup, err := buildPopup(row)
		if err != nil {
			log.RowError(diag.StageRender, row.ID, err)
			continue
		}

		markers = append(markers, Marker{
			ID:    row.ID,
			Lat:   lat,
			Lon:   lon,
			Icon:  row.IconClass(),
			Popup: popup,
		})
		if row.IsFoodDrink() {
			stats.FoodDrink++
		}
	}

	stats.Total = len(markers)
	stats.Visible = stats.Total

	s.markers = markers
	s.stats = stats
}

// Markers returns the current rendered set.
func (s *MarkerSet) Markers() []Marker { return s.markers }

// Stats returns the counters for the current rendered set.
func (s *MarkerSet) Stats() Stats { return s.stats }
