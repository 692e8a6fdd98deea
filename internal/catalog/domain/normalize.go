package domain

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

const maxYear = 9999

// Normalize converts a raw record into a Movie. It never fails: every field
// falls back to its placeholder.
func Normalize(raw RawRecord) Movie {
	year := normalizeYear(raw)
	released := raw.text("released")
	runtime := strings.TrimSpace(raw.text("runtime"))

	m := Movie{
		ID:               resolveID(raw),
		Title:            orDefault(strings.TrimSpace(raw.text("title")), DefaultTitle),
		Year:             year,
		Genre:            raw.list("genre"),
		Runtime:          orDefault(runtime, DefaultRuntime),
		RuntimeMinutes:   RuntimeMinutes(runtime),
		Released:         released,
		ReleaseTimestamp: ReleaseTimestamp(released, year),
		Plot:             orDefault(strings.TrimSpace(raw.text("plot")), DefaultPlot),
		Director:         orDefault(strings.TrimSpace(raw.text("director")), DefaultDirector),
		Cast:             raw.list("cast"),
		Poster:           resolvePoster(raw),
	}

	if r, ok := raw.number("rating"); ok {
		m.Rating = r
	}

	return m
}

// NormalizeAll normalizes a collection and guarantees unique ids: a record
// whose id was already taken gets a generated one. The second result lists
// the replaced source ids.
func NormalizeAll(raws []RawRecord) ([]Movie, []string) {
	movies := make([]Movie, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))
	var duplicates []string

	for _, raw := range raws {
		m := Normalize(raw)
		if _, dup := seen[m.ID]; dup {
			duplicates = append(duplicates, m.ID)
			m.ID = uuid.NewString()
		}
		seen[m.ID] = struct{}{}
		movies = append(movies, m)
	}
	return movies, duplicates
}

func resolveID(raw RawRecord) string {
	for _, key := range []string{"_id", "id", "index"} {
		v, ok := raw[key]
		if !ok {
			continue
		}
		if f, isNum := v.(float64); isNum && f == 0 {
			continue
		}
		if id := strings.TrimSpace(toText(v)); id != "" {
			return id
		}
	}
	return uuid.NewString()
}

func normalizeYear(raw RawRecord) int {
	f, ok := raw.number("year")
	if !ok {
		return 0
	}
	y := math.Trunc(f)
	if y <= 0 || y > maxYear {
		return 0
	}
	return int(y)
}

func resolvePoster(raw RawRecord) string {
	for _, key := range []string{"poster", "image"} {
		if p := strings.TrimSpace(raw.text(key)); p != "" {
			return UpgradePosterURL(p)
		}
	}
	return DefaultPoster
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
