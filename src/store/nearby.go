package store

import (
	"sort"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/alexmcqw/signmap/src/types"
)

// Nearby returns the n venues closest to the given point by great-circle
// distance, nearest first. Ties keep source order.
func (s *VenueStore) Nearby(lat, lon float64, n int) []types.Row {
	from := s2.LatLngFromDegrees(lat, lon)

	type candidate struct {
		row  types.Row
		dist s1.Angle
	}

	candidates := make([]candidate, 0, len(s.rows))
	for _, row := range s.rows {
		rlat, _ := row.Latitude()
		rlon, _ := row.Longitude()
		candidates = append(candidates, candidate{
			row:  row,
			dist: from.Distance(s2.LatLngFromDegrees(rlat, rlon)),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].dist < candidates[j].dist
	})

	if n > len(candidates) {
		n = len(candidates)
	}
	out := make([]types.Row, 0, n)
	for _, c := range candidates[:n] {
		out = append(out, c.row)
	}
	return out
}
