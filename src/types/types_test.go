package types

import "testing"

func row(fields map[string]string) Row {
	cols := []string{"name", "category", "type", "latitude", "longitude"}
	return Row{Columns: cols, Fields: fields}
}

func TestGeolocatableRequiresBothFiniteCoordinates(t *testing.T) {
	cases := []struct {
		lat, lon string
		want     bool
	}{
		{"40.7", "-74.0", true},
		{" 40.7 ", "-74.0", true},
		{"bad", "-74.0", false},
		{"40.7", "", false},
		{"NaN", "-74.0", false},
		{"+Inf", "-74.0", false},
	}
	for _, tc := range cases {
		r := row(map[string]string{"latitude": tc.lat, "longitude": tc.lon})
		if got := r.Geolocatable(); got != tc.want {
			t.Fatalf("Geolocatable(%q, %q) = %v, want %v", tc.lat, tc.lon, got, tc.want)
		}
	}
}

func TestIsFoodDrinkMatchesKeywordsCaseInsensitively(t *testing.T) {
	for _, cat := range []string{"Cafe", "Seafood Restaurant", "BAR", "street food"} {
		if !row(map[string]string{"category": cat}).IsFoodDrink() {
			t.Fatalf("category %q should classify as food/drink", cat)
		}
	}
	for _, cat := range []string{"", "Museum", "Gallery"} {
		if row(map[string]string{"category": cat}).IsFoodDrink() {
			t.Fatalf("category %q should not classify as food/drink", cat)
		}
	}
	// Containment, not equality: "Barbershop" contains "bar".
	if !row(map[string]string{"category": "Barbershop"}).IsFoodDrink() {
		t.Fatal("keyword match is containment over the category string")
	}
}

func TestIconClassIsExactMatchWithDefaultFallback(t *testing.T) {
	cases := map[string]Icon{
		"bar":        IconDrink,
		"pub":        IconDrink,
		"cafe":       IconFood,
		"restaurant": IconFood,
		"Bar":        IconDefault,
		"gallery":    IconDefault,
		"":           IconDefault,
	}
	for raw, want := range cases {
		if got := row(map[string]string{"type": raw}).IconClass(); got != want {
			t.Fatalf("IconClass(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSearchBlobJoinsAllFieldsLowered(t *testing.T) {
	r := row(map[string]string{"name": "Blue Bar", "category": "Bar", "latitude": "40.7", "longitude": "-74.0"})
	want := "blue bar bar  40.7 -74.0"
	if got := r.SearchBlob(); got != want {
		t.Fatalf("SearchBlob() = %q, want %q", got, want)
	}
}
