package config

import "time"

const (
	// ServiceName doubles as the env prefix (CINEDEX_).
	ServiceName = "cinedex"

	// Browse defaults.
	DefaultPageSize          = 36
	DefaultDirectoryPageSize = 40
	DefaultSearchDebounce    = 300 * time.Millisecond
	DefaultOldFilmYear       = 2005
	DefaultTrailerLanguage   = "tamil"

	// Storage keys kept compatible with the browser's local storage.
	DefaultFavoritesKey = "imdbFavorites_v2"
	DefaultThemeKey     = "imdbTheme"

	// Source defaults.
	DefaultSourcePath    = "imdb_tamil_movies_with_cast.json"
	DefaultSourceTimeout = 30 * time.Second

	// Database defaults.
	DefaultSQLitePath     = "cinedex.db"
	DefaultPostgresPort   = 5432
	DefaultMaxConnections = 10
	DefaultMinConnections = 2

	DefaultSubjectPrefix = "cinedex"
)

// Accepted values for enumerated settings.
var (
	sourceKinds    = []string{"file", "http", "s3"}
	storageDrivers = []string{"sqlite", "postgres", "memory"}
	sortKeys       = []string{"year", "rating", "title", "runtime", "released", "popularity"}
	directions     = []string{"asc", "desc"}
)
