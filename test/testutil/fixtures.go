package testutil

import (
	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
)

// CatalogJSON is a small raw catalog in the shape the scraper produces,
// including the messy records real data contains.
const CatalogJSON = `[
  {
    "_id": "tt0093603",
    "title": "Nayakan",
    "year": 1987,
    "rating": 8.7,
    "genre": "Crime, Drama",
    "runtime": "145 min",
    "released": "21 Oct 1987 (India)",
    "plot": "A common man's struggles against a corrupt police force.",
    "director": "Mani Ratnam",
    "cast": ["Kamal Haasan", "Saranya Ponvannan", "Delhi Ganesh"],
    "poster": "https://m.media-amazon.com/images/M/MV5BNayakan@._V1_UX67_CR0,0,67,98_AL_.jpg"
  },
  {
    "_id": "tt1305797",
    "title": "Enthiran",
    "year": "2010",
    "rating": "7.1",
    "genre": "Action, Sci-Fi",
    "runtime": "177 min",
    "released": "1 Oct 2010",
    "director": "S. Shankar",
    "cast": ["Rajinikanth", "Aishwarya Rai Bachchan"],
    "image": "https://m.media-amazon.com/images/M/MV5BEnthiran@._V1_UY268_CR4,0,182,268_AL_.png"
  },
  {
    "index": 3,
    "title": "Rajapattai",
    "year": 2011,
    "genre": "Action",
    "runtime": "N/A",
    "cast": ["Vikram", "Deeksha Seth"]
  },
  {
    "_id": "tt0000004",
    "title": "  ",
    "year": "unknown",
    "rating": 0,
    "cast": ["Raja Kumar"]
  },
  {
    "_id": "tt0093603",
    "title": "Nayakan (duplicate)",
    "year": 1987,
    "director": "Mani Ratnam",
    "cast": ["Kamal Haasan"]
  }
]`

// CreateTestMovie creates a normalized movie with placeholders filled in.
func CreateTestMovie(id, title string, year int) domain.Movie {
	return domain.Movie{
		ID:       id,
		Title:    title,
		Year:     year,
		Genre:    []string{},
		Runtime:  domain.DefaultRuntime,
		Plot:     domain.DefaultPlot,
		Director: domain.DefaultDirector,
		Cast:     []string{},
		Poster:   domain.DefaultPoster,
	}
}

// TestMovies returns a fixed collection covering dated, undated, rated and
// unrated movies with overlapping cast.
func TestMovies() []domain.Movie {
	baasha := CreateTestMovie("m1", "Baasha", 1995)
	baasha.Rating = 8.3
	baasha.Genre = []string{"Action", "Drama"}
	baasha.Director = "Suresh Krissna"
	baasha.Cast = []string{"Rajinikanth", "Nagma"}

	enthiran := CreateTestMovie("m2", "Enthiran", 2010)
	enthiran.Rating = 7.1
	enthiran.Genre = []string{"Action", "Sci-Fi"}
	enthiran.Director = "S. Shankar"
	enthiran.Cast = []string{"Rajinikanth", "Aishwarya Rai Bachchan"}

	anniyan := CreateTestMovie("m3", "Anniyan", 2005)
	anniyan.Genre = []string{"Thriller"}
	anniyan.Director = "S. Shankar"
	anniyan.Cast = []string{"Vikram", "Sadha"}

	untitled := CreateTestMovie("m4", domain.DefaultTitle, 0)
	untitled.Cast = []string{"Vikram"}

	return []domain.Movie{baasha, enthiran, anniyan, untitled}
}
