package query

// SortKey selects the ordering of the home grid.
type SortKey string

const (
	SortYear     SortKey = "year"
	SortRating   SortKey = "rating"
	SortTitle    SortKey = "title"
	SortRuntime  SortKey = "runtime"
	SortReleased SortKey = "released"
	// SortPopularity has no data of its own and orders by rating.
	SortPopularity SortKey = "popularity"
)

// ParseSortKey returns the key named by s, falling back to year.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(s); k {
	case SortYear, SortRating, SortTitle, SortRuntime, SortReleased, SortPopularity:
		return k
	default:
		return SortYear
	}
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection returns desc only for "desc"; everything else is asc.
func ParseDirection(s string) Direction {
	if Direction(s) == Desc {
		return Desc
	}
	return Asc
}

func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// DirectoryMode is the active tab of the people directory.
type DirectoryMode string

const (
	ModeCast     DirectoryMode = "cast"
	ModeDirector DirectoryMode = "director"
)

// ParseDirectoryMode falls back to cast for anything but "director".
func ParseDirectoryMode(s string) DirectoryMode {
	if DirectoryMode(s) == ModeDirector {
		return ModeDirector
	}
	return ModeCast
}

const (
	DefaultPageSize          = 36
	DefaultDirectoryPageSize = 40
)

// State is the transient per-page query state. It is a value; callers
// replace it rather than share it.
type State struct {
	Search          string        `json:"search"`
	Page            int           `json:"page"`
	PageSize        int           `json:"pageSize"`
	Sort            SortKey       `json:"sort"`
	Direction       Direction     `json:"direction"`
	Tab             DirectoryMode `json:"tab"`
	DirectoryFilter string        `json:"directoryFilter"`
	DirectoryPage   int           `json:"directoryPage"`
}

// DefaultState is the state every page starts from.
func DefaultState() State {
	return State{
		Page:          1,
		PageSize:      DefaultPageSize,
		Sort:          SortYear,
		Direction:     Asc,
		Tab:           ModeCast,
		DirectoryPage: 1,
	}
}
