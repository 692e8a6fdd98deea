package config

import (
	"os"

	"github.com/narwhalmedia/cinedex/pkg/database"
	"github.com/narwhalmedia/cinedex/pkg/logger"
)

// LoadServiceConfig is a generic helper to load service configuration
func LoadServiceConfig[T Config](serviceName string, cfg T) error {
	manager := NewManager(serviceName)
	return manager.LoadConfig(cfg)
}

// Load reads the catalog config starting from GetDefaults.
func Load() (*CatalogConfig, error) {
	cfg := GetDefaults()
	if err := LoadServiceConfig(ServiceName, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ToDatabaseConfig converts storage settings to the database package config.
func (c StorageConfig) ToDatabaseConfig() *database.Config {
	sslMode := c.PostgresSSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return &database.Config{
		Driver:         c.Driver,
		SQLitePath:     c.SQLitePath,
		Host:           c.PostgresHost,
		Port:           c.PostgresPort,
		User:           c.PostgresUser,
		Password:       c.PostgresPassword,
		Database:       c.PostgresDatabase,
		SSLMode:        sslMode,
		MaxConnections: c.MaxConnections,
		MinConnections: c.MinConnections,
	}
}

// ToLoggerConfig converts logger settings to the logger package config.
func (c LoggerConfig) ToLoggerConfig() *logger.Config {
	cfg := logger.DefaultConfig()
	if c.Development {
		cfg = logger.DevelopmentConfig()
	}
	if c.Level != "" {
		cfg.Level = c.Level
	}
	if c.Format != "" {
		cfg.Encoding = c.Format
	}
	if c.OutputPath != "" {
		cfg.OutputPaths = []string{c.OutputPath}
	}
	return cfg
}

// GetServiceVersion returns the service version from config or environment
func GetServiceVersion(cfg *ServiceConfig) string {
	if cfg.Version != "" {
		return cfg.Version
	}
	if version := os.Getenv("SERVICE_VERSION"); version != "" {
		return version
	}
	return "dev"
}
