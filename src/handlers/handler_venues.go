package handlers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/alexmcqw/signmap/src/diag"
	"github.com/alexmcqw/signmap/src/render"
	"github.com/alexmcqw/signmap/src/types"
)

const pageSize = 10

// MapPage is the data passed to the map template.
type MapPage struct {
	Title   string
	Filters []types.FilterColumn
}

// VenueSummary is the flat venue representation used by the list and
// recommend endpoints.
type VenueSummary struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Address  string  `json:"address,omitempty"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// VenueList is one page of the filtered venue directory.
type VenueList struct {
	Total    int            `json:"total"`
	Venues   []VenueSummary `json:"venues"`
	Page     int            `json:"page"`
	LastPage int            `json:"lastPage"`
	PrevPage int            `json:"prevPage,omitempty"`
	NextPage int            `json:"nextPage,omitempty"`
}

// MarkersResponse is the full filtered marker set plus its stats. It is
// never paginated: the client replaces its marker layer wholesale.
type MarkersResponse struct {
	Markers []render.Marker `json:"markers"`
	Stats   render.Stats    `json:"stats"`
}

// HandleMapHTML serves the interactive map page with the dropdown filters
// pre-rendered from the filter index.
func HandleMapHTML(w http.ResponseWriter, r *http.Request, cat types.Catalog, tmpl *template.Template) {
	page := MapPage{Title: "Venues", Filters: cat.FilterColumns()}
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Error rendering template", http.StatusInternalServerError)
	}
}

// HandleVenuesAPI evaluates the filter state from the query string against
// the full geolocatable dataset and responds with the rendered marker set.
func HandleVenuesAPI(w http.ResponseWriter, r *http.Request, cat types.Catalog, log *diag.Logger) {
	state := filterStateFromQuery(r.URL.Query())

	var set render.MarkerSet
	set.Replace(cat.Filter(state), log)

	writeJSON(w, MarkersResponse{Markers: set.Markers(), Stats: set.Stats()})
}

// HandleFiltersAPI responds with the eligible filter columns and their
// sorted option lists, as built once at startup from the full dataset.
func HandleFiltersAPI(w http.ResponseWriter, r *http.Request, cat types.Catalog) {
	writeJSON(w, map[string][]types.FilterColumn{"columns": cat.FilterColumns()})
}

// HandleListAPI serves a paginated directory of the filtered venues.
func HandleListAPI(w http.ResponseWriter, r *http.Request, cat types.Catalog) {
	pageStr := r.URL.Query().Get("page")
	if pageStr == "" {
		pageStr = "1"
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		http.Error(w, "Invalid page number", http.StatusBadRequest)
		return
	}

	rows := cat.Filter(filterStateFromQuery(r.URL.Query()))
	total := len(rows)
	lastPage := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	list := VenueList{
		Total:    total,
		Venues:   summarize(rows[start:end]),
		Page:     page,
		LastPage: lastPage,
	}
	if page > 1 {
		list.PrevPage = page - 1
	}
	if page < lastPage {
		list.NextPage = page + 1
	}

	writeJSON(w, list)
}

// HandleRecommendAPI responds with the three venues nearest to the given
// point.
func HandleRecommendAPI(w http.ResponseWriter, r *http.Request, cat types.Catalog) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" || lonStr == "" {
		http.Error(w, "Missing latitude or longitude", http.StatusBadRequest)
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		http.Error(w, "Invalid latitude", http.StatusBadRequest)
		return
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		http.Error(w, "Invalid longitude", http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string][]VenueSummary{
		"venues": summarize(cat.Nearby(lat, lon, 3)),
	})
}

// LoadTemplate reads and parses the map page template.
func LoadTemplate(filename string) (*template.Template, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return template.New("venues").Parse(string(data))
}

// filterStateFromQuery decodes the search box plus the "f.<column>=<value>"
// dropdown selections. Empty selections impose no constraint.
func filterStateFromQuery(q url.Values) types.FilterState {
	state := types.FilterState{
		Search:   q.Get("search"),
		Selected: map[string]string{},
	}
	for key, vals := range q {
		col, ok := strings.CutPrefix(key, "f.")
		if !ok || col == "" || len(vals) == 0 || vals[0] == "" {
			continue
		}
		state.Selected[col] = vals[0]
	}
	return state
}

func summarize(rows []types.Row) []VenueSummary {
	out := make([]VenueSummary, 0, len(rows))
	for _, row := range rows {
		lat, _ := row.Latitude()
		lon, _ := row.Longitude()
		out = append(out, VenueSummary{
			ID:       row.ID,
			Name:     row.Name(),
			Category: row.Category(),
			Address:  row.Get("address"),
			Lat:      lat,
			Lon:      lon,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Error rendering JSON", http.StatusInternalServerError)
	}
}
