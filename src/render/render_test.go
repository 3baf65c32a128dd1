package render

import (
	"strings"
	"testing"

	"github.com/alexmcqw/signmap/src/diag"
	"github.com/alexmcqw/signmap/src/types"
)

var venueColumns = []string{
	"id", "name", "category", "type", "subcategory",
	"website", "image", "address", "postcode", "latitude", "longitude",
}

func venueRow(fields map[string]string) types.Row {
	return types.Row{ID: fields["id"], Columns: venueColumns, Fields: fields}
}

func TestReplaceRendersMarkersWithIconAndStats(t *testing.T) {
	_, log := diag.NewCapture()

	rows := []types.Row{
		venueRow(map[string]string{"id": "1", "name": "Blue Bar", "category": "Bar", "type": "bar", "latitude": "40.70", "longitude": "-74.00"}),
		venueRow(map[string]string{"id": "2", "name": "Corner Cafe", "category": "Cafe", "type": "cafe", "latitude": "40.71", "longitude": "-74.01"}),
		venueRow(map[string]string{"id": "3", "name": "Old Mill", "category": "Museum", "type": "museum", "latitude": "40.72", "longitude": "-74.02"}),
	}

	var set MarkerSet
	set.Replace(rows, log)

	markers := set.Markers()
	if len(markers) != 3 {
		t.Fatalf("expected 3 markers, got %d", len(markers))
	}
	if markers[0].Icon != types.IconDrink {
		t.Fatalf("expected drink icon, got %q", markers[0].Icon)
	}
	if markers[1].Icon != types.IconFood {
		t.Fatalf("expected food icon, got %q", markers[1].Icon)
	}
	if markers[2].Icon != types.IconDefault {
		t.Fatalf("expected default icon, got %q", markers[2].Icon)
	}

	stats := set.Stats()
	if stats.Total != 3 || stats.Visible != 3 {
		t.Fatalf("expected total=visible=3, got %+v", stats)
	}
	if stats.FoodDrink != 2 {
		t.Fatalf("expected 2 food/drink venues, got %d", stats.FoodDrink)
	}
}

func TestReplaceSwapsTheWholeSet(t *testing.T) {
	_, log := diag.NewCapture()

	first := []types.Row{
		venueRow(map[string]string{"id": "1", "name": "Blue Bar", "latitude": "40.70", "longitude": "-74.00"}),
		venueRow(map[string]string{"id": "2", "name": "Dockside", "latitude": "40.71", "longitude": "-74.01"}),
	}
	second := first[:1]

	var set MarkerSet
	set.Replace(first, log)
	set.Replace(second, log)
	set.Replace(second, log)

	if len(set.Markers()) != 1 {
		t.Fatalf("expected 1 marker after re-render, got %d", len(set.Markers()))
	}
	if set.Stats().Total != 1 {
		t.Fatalf("expected total 1, got %d", set.Stats().Total)
	}
}

func TestReplaceSkipsNonFiniteCoordinatesDefensively(t *testing.T) {
	capture, log := diag.NewCapture()

	rows := []types.Row{
		venueRow(map[string]string{"id": "bad", "name": "Nowhere", "latitude": "NaN", "longitude": "-74.00"}),
		venueRow(map[string]string{"id": "ok", "name": "Somewhere", "latitude": "40.70", "longitude": "-74.00"}),
	}

	var set MarkerSet
	set.Replace(rows, log)

	if len(set.Markers()) != 1 || set.Markers()[0].ID != "ok" {
		t.Fatalf("expected only the valid row to render, got %+v", set.Markers())
	}

	skipped := capture.ByMessage("row_skipped")
	if len(skipped) != 1 || skipped[0].Attrs["stage"] != diag.StageRender || skipped[0].Attrs["row"] != "bad" {
		t.Fatalf("expected one render-stage skip event for row bad, got %+v", skipped)
	}
}

func TestReplaceIsolatesPerRowFailures(t *testing.T) {
	capture, log := diag.NewCapture()

	rows := []types.Row{
		venueRow(map[string]string{"id": "1", "name": "First", "latitude": "40.70", "longitude": "-74.00"}),
		venueRow(map[string]string{"id": "2", "name": "Broken", "website": "::not-a-url", "latitude": "40.71", "longitude": "-74.01"}),
		venueRow(map[string]string{"id": "3", "name": "Last", "latitude": "40.72", "longitude": "-74.02"}),
	}

	var set MarkerSet
	set.Replace(rows, log)

	if len(set.Markers()) != 2 {
		t.Fatalf("expected the failing row to be dropped, got %d markers", len(set.Markers()))
	}
	if set.Markers()[0].ID != "1" || set.Markers()[1].ID != "3" {
		t.Fatalf("expected rows 1 and 3 in order, got %+v", set.Markers())
	}

	failures := capture.ByMessage("row_error")
	if len(failures) != 1 || failures[0].Attrs["row"] != "2" {
		t.Fatalf("expected one row_error event for row 2, got %+v", failures)
	}
}

func TestPopupSectionsAreOrderedAndConditional(t *testing.T) {
	popup, err := buildPopup(venueRow(map[string]string{
		"name":        "Blue Bar",
		"subcategory": "Cocktails",
		"website":     "https://bluebar.example",
		"image":       "https://bluebar.example/front.jpg",
		"address":     "1 Dock St",
		"postcode":    "E1 6AN",
		"category":    "Bar",
	}))
	if err != nil {
		t.Fatalf("buildPopup: %v", err)
	}

	sections := []string{"Blue Bar", "Cocktails", "bluebar.example", "front.jpg", "1 Dock St, E1 6AN", "Bar"}
	last := -1
	for _, want := range sections {
		idx := strings.Index(popup, want)
		if idx < 0 {
			t.Fatalf("popup missing section %q: %s", want, popup)
		}
		if idx <= last {
			t.Fatalf("popup sections out of order at %q: %s", want, popup)
		}
		last = idx
	}
}

func TestPopupOmitsEmptySections(t *testing.T) {
	popup, err := buildPopup(venueRow(map[string]string{"name": "Plain Venue"}))
	if err != nil {
		t.Fatalf("buildPopup: %v", err)
	}
	for _, fragment := range []string{"<a ", "<img", "subcategory", "address", "<em>"} {
		if strings.Contains(popup, fragment) {
			t.Fatalf("popup should omit %q when field is empty: %s", fragment, popup)
		}
	}
	if !strings.Contains(popup, "Plain Venue") {
		t.Fatalf("popup missing name: %s", popup)
	}
}

func TestPopupEscapesFieldValues(t *testing.T) {
	popup, err := buildPopup(venueRow(map[string]string{"name": "<script>alert(1)</script>"}))
	if err != nil {
		t.Fatalf("buildPopup: %v", err)
	}
	if strings.Contains(popup, "<script>") {
		t.Fatalf("popup not escaped: %s", popup)
	}
}

func TestPopupRejectsNonHTTPWebsite(t *testing.T) {
	_, err := buildPopup(venueRow(map[string]string{
		"name":    "Sneaky",
		"website": "javascript:alert(1)",
	}))
	if err == nil {
		t.Fatal("expected error for non-http website URL")
	}
}
