package render

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/alexmcqw/signmap/src/types"
)

// buildPopup assembles the marker popup HTML: an ordered composition of
// optional sections (name, subcategory, website, image, address+postcode,
// category), each emitted only when its source field is non-empty. A
// malformed website or image URL fails the whole row.
func buildPopup(row types.Row) (string, error) {
	var b strings.Builder

	if name := row.Name(); name != "" {
		fmt.Fprintf(&b, "<strong>%s</strong>", html.EscapeString(name))
	}

	if sub := row.Get("subcategory"); sub != "" {
		fmt.Fprintf(&b, "<div class=\"subcategory\">%s</div>", html.EscapeString(sub))
	}

	if site := row.Get("website"); site != "" {
		u, err := parseHTTPURL("website", site)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "<div><a href=\"%s\" target=\"_blank\" rel=\"noopener\">Website</a></div>", html.EscapeString(u))
	}

	if img := row.Get("image"); img != "" {
		u, err := parseHTTPURL("image", img)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"\">", html.EscapeString(u))
	}

	if addr := row.Get("address"); addr != "" {
		if pc := row.Get("postcode"); pc != "" {
			addr += ", " + pc
		}
		fmt.Fprintf(&b, "<div class=\"address\">%s</div>", html.EscapeString(addr))
	}

	if cat := row.Category(); cat != "" {
		fmt.Fprintf(&b, "<em>%s</em>", html.EscapeString(cat))
	}

	return b.String(), nil
}

// parseHTTPURL accepts absolute http(s) URLs only.
func parseHTTPURL(field, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("malformed %s URL %q: %w", field, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("malformed %s URL %q", field, raw)
	}
	return u.String(), nil
}
