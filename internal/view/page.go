package view

import (
	"net/url"
	"strings"

	"github.com/narwhalmedia/cinedex/internal/catalog/query"
)

// PageKind identifies which page a session renders.
type PageKind string

const (
	PageHome      PageKind = "home"
	PageDetails   PageKind = "details"
	PageYears     PageKind = "years"
	PageDirectory PageKind = "directory"
	PageFavorites PageKind = "favorites"
	PageResults   PageKind = "results"
)

// Page is the resolved route with its parameters. ID is set for details,
// Filter for results.
type Page struct {
	Kind   PageKind              `json:"kind"`
	ID     string                `json:"id,omitempty"`
	Filter query.AttributeFilter `json:"filter"`
}

// NavItem is the navigation entry highlighted for the page. Details and
// results pages have no entry of their own and highlight home.
func (p Page) NavItem() string {
	switch p.Kind {
	case PageYears:
		return "years"
	case PageDirectory:
		return "cast"
	case PageFavorites:
		return "favorites"
	default:
		return "home"
	}
}

// ResolvePage maps a location to a page. Matching is by substring, first
// match wins, and anything unrecognized is home.
func ResolvePage(path, rawQuery string) Page {
	params, _ := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))

	switch {
	case strings.Contains(path, "details.html"):
		return Page{Kind: PageDetails, ID: params.Get("id")}
	case strings.Contains(path, "years.html"):
		return Page{Kind: PageYears}
	case strings.Contains(path, "cast.html"):
		return Page{Kind: PageDirectory}
	case strings.Contains(path, "favorites.html"):
		return Page{Kind: PageFavorites}
	case strings.Contains(path, "results.html"):
		typ, _ := query.ParseFilterType(params.Get("type"))
		return Page{Kind: PageResults, Filter: query.AttributeFilter{Type: typ, Value: params.Get("value")}}
	default:
		return Page{Kind: PageHome}
	}
}

// ParseLocation resolves a full location such as "results.html?type=year&value=2010".
func ParseLocation(location string) Page {
	path, rawQuery, _ := strings.Cut(location, "?")
	return ResolvePage(path, rawQuery)
}

// ResultsLink is the location of a results page.
func ResultsLink(filter query.AttributeFilter) string {
	return "results.html?" + url.Values{
		"type":  {string(filter.Type)},
		"value": {filter.Value},
	}.Encode()
}

// DetailsLink is the location of a movie's detail page.
func DetailsLink(id string) string {
	return "details.html?" + url.Values{"id": {id}}.Encode()
}
