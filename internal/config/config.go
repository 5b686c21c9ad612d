package config

import (
	"os"

	"github.com/sachben91/agent-protocol-risk/internal/errors"
)

// Backend selects where protocol records are read from.
type Backend string

const (
	// BackendFS reads hand-curated JSON records from the data directory.
	BackendFS Backend = "fs"
	// BackendPostgres reads the same records from a protocols table.
	BackendPostgres Backend = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
	GinMode string
}

// DataConfig holds the backing record store settings
type DataConfig struct {
	Backend      Backend
	ProtocolsDir string
	EssaysDir    string
}

// DatabaseConfig holds database connection settings, only consulted
// when the postgres backend is selected.
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			APIPort: getEnv("API_PORT", "8081"),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Data: DataConfig{
			Backend:      Backend(getEnv("DATA_BACKEND", string(BackendFS))),
			ProtocolsDir: getEnv("PROTOCOLS_DIR", "data/protocols"),
			EssaysDir:    getEnv("ESSAYS_DIR", "content/essays"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
	}

	switch cfg.Data.Backend {
	case BackendFS, BackendPostgres:
	default:
		return nil, errors.ConfigInvalid("DATA_BACKEND must be fs or postgres")
	}
	if cfg.Data.Backend == BackendPostgres && cfg.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required with the postgres backend")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
