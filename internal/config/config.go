package config

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/caarlos0/env/v11"
)

const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

type Config struct {
	// StoreBackend selects where the two collections live.
	StoreBackend string `env:"TREDGATE_STORE" envDefault:"file"`
	// DataDir holds the file backend's documents and the default sqlite db.
	DataDir string `env:"TREDGATE_DATA_DIR"`

	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB    int    `env:"REDIS_DB" envDefault:"0"`
	SQLitePath string `env:"SQLITE_PATH"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config.Load: resolve home dir: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".tredgate")
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = filepath.Join(cfg.DataDir, "tredgate.db")
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendFile, BackendRedis, BackendSQLite:
	default:
		return fmt.Errorf("invalid TREDGATE_STORE %q (want file, redis or sqlite)", c.StoreBackend)
	}
	if c.StoreBackend == BackendRedis && c.RedisAddr == "" {
		return fmt.Errorf("missing REDIS_ADDR for redis backend")
	}
	return nil
}
