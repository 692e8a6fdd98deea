package favorites

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/narwhalmedia/cinedex/internal/catalog/domain"
)

// Entry is a movie snapshot taken when it was favorited. It is not updated
// when the catalog changes.
type Entry struct {
	domain.Movie
	SavedAt time.Time
}

// entryJSON flattens the movie fields next to savedAt (epoch milliseconds).
type entryJSON struct {
	domain.Movie
	SavedAt int64 `json:"savedAt"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(entryJSON{Movie: e.Movie, SavedAt: e.SavedAt.UnixMilli()})
}

// UnmarshalJSON reads entries loosely: ids may be numbers, year and rating may
// be null, and the minutes field may use the older runtimeMins name. An entry
// must be an object with an id.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var rec domain.RawRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("favorite entry is not an object")
	}

	m := rec.Snapshot()
	if m.ID == "" {
		return fmt.Errorf("favorite entry has no id")
	}

	var savedAt int64
	if v, ok := rec["savedAt"].(float64); ok {
		savedAt = int64(v)
	}
	e.Movie = m
	e.SavedAt = time.UnixMilli(savedAt).UTC()
	return nil
}

// decodeEntries decodes a stored collection element by element. Elements that
// do not decode are skipped and counted; only a value that is not an array
// fails as a whole.
func decodeEntries(data []byte) ([]Entry, int, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, 0, err
	}

	entries := make([]Entry, 0, len(elems))
	skipped := 0
	for _, elem := range elems {
		var e Entry
		if err := json.Unmarshal(elem, &e); err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped, nil
}
