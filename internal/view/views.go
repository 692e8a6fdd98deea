package view

import (
	"strconv"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
	"github.com/narwhalmedia/cinedex/internal/catalog/query"
	"github.com/narwhalmedia/cinedex/internal/catalog/service"
	"github.com/narwhalmedia/cinedex/internal/favorites"
	"github.com/narwhalmedia/cinedex/pkg/pagination"
)

// Messages shown in place of a page.
const (
	LoadErrorMessage = "Failed to load data. Please ensure JSON is present."
	NotFoundMessage  = "Movie not found"
	EmptyMessage     = "No movies found."
)

// View is a render-ready page model handed to a Renderer.
type View interface {
	Kind() PageKind
}

// Frame carries what every page shows around its content.
type Frame struct {
	Page  PageKind        `json:"page"`
	Nav   string          `json:"nav"`
	Theme favorites.Theme `json:"theme"`
}

func (f Frame) Kind() PageKind {
	return f.Page
}

// Link is a labelled location.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Card is a movie as shown in a grid.
type Card struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Year   string  `json:"year"`
	Rating float64 `json:"rating,omitempty"`
	Poster string  `json:"poster"`
	Href   string  `json:"href"`
}

// Grid is a cumulatively paged list of cards.
type Grid struct {
	Cards   []Card `json:"cards"`
	Total   int    `json:"total"`
	HasMore bool   `json:"hasMore"`
	Empty   string `json:"empty,omitempty"`
}

type HomeView struct {
	Frame
	State query.State `json:"state"`
	Grid  Grid        `json:"grid"`
}

type DetailView struct {
	Frame
	Movie      domain.Movie         `json:"movie"`
	IsFavorite bool                 `json:"isFavorite"`
	Links      service.TrailerLinks `json:"links"`
	Year       *Link                `json:"year,omitempty"`
	Genres     []Link               `json:"genres"`
	Director   Link                 `json:"director"`
	Cast       []Link               `json:"cast"`
}

type ResultsView struct {
	Frame
	Title  string                `json:"title"`
	Filter query.AttributeFilter `json:"filter"`
	Search string                `json:"search"`
	Grid   Grid                  `json:"grid"`
}

type FavoritesView struct {
	Frame
	Search  string            `json:"search"`
	Grid    Grid              `json:"grid"`
	Entries []favorites.Entry `json:"entries"`
}

type YearsView struct {
	Frame
	Years []Link `json:"years"`
}

type DirectoryView struct {
	Frame
	Tab    query.DirectoryMode           `json:"tab"`
	Filter string                        `json:"filter"`
	Page   pagination.Page[query.Credit] `json:"page"`
	Links  []Link                        `json:"links"`
}

type NotFoundView struct {
	Frame
	ID      string `json:"id"`
	Message string `json:"message"`
}

type ErrorView struct {
	Frame
	Message string `json:"message"`
}

func newFrame(page Page, theme favorites.Theme) Frame {
	return Frame{Page: page.Kind, Nav: page.NavItem(), Theme: theme}
}

func card(m domain.Movie) Card {
	year := "N/A"
	if m.HasYear() {
		year = strconv.Itoa(m.Year)
	}
	return Card{
		ID:     m.ID,
		Title:  m.Title,
		Year:   year,
		Rating: m.Rating,
		Poster: m.Poster,
		Href:   DetailsLink(m.ID),
	}
}

// grid reveals the first page pages of movies.
func grid(movies []domain.Movie, page, size int) Grid {
	shown := pagination.Prefix(movies, page, size)
	g := Grid{
		Cards:   make([]Card, len(shown)),
		Total:   len(movies),
		HasMore: pagination.HasMore(len(movies), page, size),
	}
	for i, m := range shown {
		g.Cards[i] = card(m)
	}
	if len(shown) == 0 {
		g.Empty = EmptyMessage
	}
	return g
}

func filterLink(t query.FilterType, value string) Link {
	return Link{Label: value, Href: ResultsLink(query.AttributeFilter{Type: t, Value: value})}
}

func filterLinks(t query.FilterType, values []string) []Link {
	links := make([]Link, len(values))
	for i, v := range values {
		links[i] = filterLink(t, v)
	}
	return links
}
