package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config is the interface that all loadable configs must implement.
type Config interface {
	Validate() error
}

// CatalogConfig is the full configuration of the catalog browser.
type CatalogConfig struct {
	Service ServiceConfig `koanf:"service"`
	Logger  LoggerConfig  `koanf:"logger"`
	Source  SourceConfig  `koanf:"source"`
	Storage StorageConfig `koanf:"storage"`
	Browse  BrowseConfig  `koanf:"browse"`
	Events  EventsConfig  `koanf:"events"`
}

// ServiceConfig contains service-specific metadata.
type ServiceConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"` // dev, staging, production
}

// LoggerConfig contains logging configuration.
type LoggerConfig struct {
	Level       string `koanf:"level"`  // debug, info, warn, error
	Format      string `koanf:"format"` // json, console
	Development bool   `koanf:"development"`
	OutputPath  string `koanf:"output_path"` // stdout, stderr, or file path
}

// SourceConfig selects where the catalog JSON is fetched from.
type SourceConfig struct {
	Kind       string        `koanf:"kind"` // file, http, s3
	Path       string        `koanf:"path"`
	URL        string        `koanf:"url"`
	Timeout    time.Duration `koanf:"timeout"`
	S3Bucket   string        `koanf:"s3_bucket"`
	S3Key      string        `koanf:"s3_key"`
	S3Region   string        `koanf:"s3_region"`
	S3Endpoint string        `koanf:"s3_endpoint"`
}

// StorageConfig configures the key-value store behind favorites and theme.
type StorageConfig struct {
	Driver           string `koanf:"driver"` // sqlite, postgres, memory
	SQLitePath       string `koanf:"sqlite_path"`
	PostgresHost     string `koanf:"postgres_host"`
	PostgresPort     int    `koanf:"postgres_port"`
	PostgresUser     string `koanf:"postgres_user"`
	PostgresPassword string `koanf:"postgres_password"`
	PostgresDatabase string `koanf:"postgres_database"`
	PostgresSSLMode  string `koanf:"postgres_ssl_mode"`
	MaxConnections   int    `koanf:"max_connections"`
	MinConnections   int    `koanf:"min_connections"`
	FavoritesKey     string `koanf:"favorites_key"`
	ThemeKey         string `koanf:"theme_key"`
}

// BrowseConfig holds the paging and presentation knobs of the browser.
type BrowseConfig struct {
	PageSize          int           `koanf:"page_size"`
	DirectoryPageSize int           `koanf:"directory_page_size"`
	DefaultSort       string        `koanf:"default_sort"`
	DefaultDirection  string        `koanf:"default_direction"`
	SearchDebounce    time.Duration `koanf:"search_debounce"`
	TrailerLanguage   string        `koanf:"trailer_language"`
	OldFilmYear       int           `koanf:"old_film_year"`
}

// EventsConfig enables forwarding of favorites events to NATS.
type EventsConfig struct {
	NATSURL       string `koanf:"nats_url"`
	SubjectPrefix string `koanf:"subject_prefix"`
}

// Manager handles configuration loading and parsing.
type Manager struct {
	k           *koanf.Koanf
	serviceName string
	configPaths []string
}

// NewManager creates a new configuration manager.
func NewManager(serviceName string) *Manager {
	return &Manager{
		k:           koanf.New("."),
		serviceName: serviceName,
		configPaths: getDefaultConfigPaths(serviceName),
	}
}

// WithConfigPaths replaces the file search list.
func (m *Manager) WithConfigPaths(paths ...string) *Manager {
	m.configPaths = paths
	return m
}

// LoadConfig loads configuration from all sources.
func (m *Manager) LoadConfig(cfg Config) error {
	// 1. Defaults from the struct passed in
	if err := m.loadDefaults(cfg); err != nil {
		return fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config files, later paths override earlier ones
	for _, path := range m.configPaths {
		if err := m.loadFromFile(path); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to load config from %s: %w", path, err)
			}
		}
	}

	// 3. Environment variables
	if err := m.loadFromEnv(); err != nil {
		return fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := m.k.Unmarshal("", cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

func (m *Manager) loadDefaults(cfg Config) error {
	return m.k.Load(structs.Provider(cfg, "koanf"), nil)
}

func (m *Manager) loadFromFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return fmt.Errorf("unsupported config file format: %s", ext)
	}

	return m.k.Load(file.Provider(path), parser)
}

// loadFromEnv maps CINEDEX_SECTION_SOME_KEY to section.some_key. Only the
// first underscore after the prefix separates the section, so multi-word
// keys keep their underscores.
func (m *Manager) loadFromEnv() error {
	prefix := strings.ToUpper(m.serviceName) + "_"

	return m.k.Load(env.Provider(prefix, ".", func(s string) string {
		return envKey(prefix, s)
	}), nil)
}

func envKey(prefix, name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, prefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + rest
}

func getDefaultConfigPaths(serviceName string) []string {
	paths := []string{
		"config.yaml",
		"config.json",
		fmt.Sprintf("%s.yaml", serviceName),
		fmt.Sprintf("%s.json", serviceName),

		"configs/config.yaml",
		"configs/config.json",
		fmt.Sprintf("configs/%s.yaml", serviceName),
		fmt.Sprintf("configs/%s.json", serviceName),

		fmt.Sprintf("configs/%s.%s.yaml", serviceName, getEnvironment()),
		fmt.Sprintf("configs/%s.%s.json", serviceName, getEnvironment()),
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		paths = append(paths, configPath)
	}

	return paths
}

func getEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "dev"
}

// Validate validates the catalog configuration.
func (c *CatalogConfig) Validate() error {
	if c.Service.Name == "" {
		return errors.New("service name is required")
	}

	switch c.Source.Kind {
	case "file":
		if c.Source.Path == "" {
			return errors.New("source path is required for file sources")
		}
	case "http":
		if c.Source.URL == "" {
			return errors.New("source url is required for http sources")
		}
	case "s3":
		if c.Source.S3Bucket == "" || c.Source.S3Key == "" {
			return errors.New("s3 bucket and key are required for s3 sources")
		}
	default:
		return fmt.Errorf("invalid source kind %q, expected one of %v", c.Source.Kind, sourceKinds)
	}

	if !slices.Contains(storageDrivers, c.Storage.Driver) {
		return fmt.Errorf("invalid storage driver %q, expected one of %v", c.Storage.Driver, storageDrivers)
	}
	if c.Storage.Driver == "sqlite" && c.Storage.SQLitePath == "" {
		return errors.New("sqlite path is required")
	}
	if c.Storage.Driver == "postgres" && c.Storage.PostgresHost == "" {
		return errors.New("postgres host is required")
	}
	if c.Storage.FavoritesKey == "" || c.Storage.ThemeKey == "" {
		return errors.New("favorites and theme keys are required")
	}
	if c.Storage.FavoritesKey == c.Storage.ThemeKey {
		return errors.New("favorites and theme keys must differ")
	}

	if c.Browse.PageSize <= 0 {
		return fmt.Errorf("invalid page size: %d", c.Browse.PageSize)
	}
	if c.Browse.DirectoryPageSize <= 0 {
		return fmt.Errorf("invalid directory page size: %d", c.Browse.DirectoryPageSize)
	}
	if !slices.Contains(sortKeys, c.Browse.DefaultSort) {
		return fmt.Errorf("invalid default sort %q", c.Browse.DefaultSort)
	}
	if !slices.Contains(directions, c.Browse.DefaultDirection) {
		return fmt.Errorf("invalid default direction %q", c.Browse.DefaultDirection)
	}
	if c.Browse.SearchDebounce < 0 {
		return errors.New("search debounce must not be negative")
	}

	return nil
}

// GetDefaults returns default configuration values.
func GetDefaults() *CatalogConfig {
	return &CatalogConfig{
		Service: ServiceConfig{
			Name:        ServiceName,
			Environment: "dev",
		},
		Logger: LoggerConfig{
			Level:      "info",
			Format:     "json",
			OutputPath: "stderr",
		},
		Source: SourceConfig{
			Kind:    "file",
			Path:    DefaultSourcePath,
			Timeout: DefaultSourceTimeout,
		},
		Storage: StorageConfig{
			Driver:          "sqlite",
			SQLitePath:      DefaultSQLitePath,
			PostgresPort:    DefaultPostgresPort,
			PostgresSSLMode: "disable",
			MaxConnections:  DefaultMaxConnections,
			MinConnections:  DefaultMinConnections,
			FavoritesKey:    DefaultFavoritesKey,
			ThemeKey:        DefaultThemeKey,
		},
		Browse: BrowseConfig{
			PageSize:          DefaultPageSize,
			DirectoryPageSize: DefaultDirectoryPageSize,
			DefaultSort:       "year",
			DefaultDirection:  "asc",
			SearchDebounce:    DefaultSearchDebounce,
			TrailerLanguage:   DefaultTrailerLanguage,
			OldFilmYear:       DefaultOldFilmYear,
		},
		Events: EventsConfig{
			SubjectPrefix: DefaultSubjectPrefix,
		},
	}
}
