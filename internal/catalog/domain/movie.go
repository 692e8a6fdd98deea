package domain

// Placeholders used when a record lacks the field.
const (
	DefaultTitle    = "Untitled"
	DefaultRuntime  = "N/A"
	DefaultPlot     = "No plot summary available."
	DefaultDirector = "Unknown director"
	DefaultPoster   = "default.png"
)

// Movie is the canonical, immutable catalog entry. Year and Rating use zero
// for "absent"; a real year is always positive and the catalog encodes a
// missing rating as zero.
type Movie struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Year             int      `json:"year,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	Genre            []string `json:"genre"`
	Runtime          string   `json:"runtime"`
	RuntimeMinutes   int      `json:"runtimeMinutes"`
	Released         string   `json:"released"`
	ReleaseTimestamp int64    `json:"releaseTimestamp"`
	Plot             string   `json:"plot"`
	Director         string   `json:"director"`
	Cast             []string `json:"cast"`
	Poster           string   `json:"poster"`
}

// HasYear reports whether the release year is known.
func (m Movie) HasYear() bool {
	return m.Year > 0
}

// HasRating reports whether the movie carries a rating.
func (m Movie) HasRating() bool {
	return m.Rating != 0
}

// HasKnownDirector is false for the placeholder director.
func (m Movie) HasKnownDirector() bool {
	return m.Director != "" && m.Director != DefaultDirector
}
