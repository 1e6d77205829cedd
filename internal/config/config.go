// Package config loads process configuration for the quoteforge binary.
// Pricing configuration is data and lives in the database instead.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds process-level settings.
type Config struct {
	Database  Database  `yaml:"database"`
	Server    Server    `yaml:"server"`
	Logging   Logging   `yaml:"logging"`
	Cache     Cache     `yaml:"cache"`
	Repricing Repricing `yaml:"repricing"`
}

type Database struct {
	Path string `yaml:"path"`
}

type Server struct {
	Addr string `yaml:"addr"`
	// BodyLimit caps request bodies in bytes.
	BodyLimit    int64         `yaml:"body_limit"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or text
}

type Cache struct {
	MaxCostBytes int64         `yaml:"max_cost_bytes"`
	TTL          time.Duration `yaml:"ttl"`
}

// Repricing bounds the workers used when simulating a configuration
// change across every stored quote.
type Repricing struct {
	Workers int `yaml:"workers"`
}

// DefaultDBPath is ~/.quoteforge/quoteforge.db, or a relative path when
// the home directory is unknown.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".quoteforge", "quoteforge.db")
	}
	return filepath.Join(home, ".quoteforge", "quoteforge.db")
}

// Defaults returns a Config with sensible local defaults.
func Defaults() Config {
	return Config{
		Database: Database{Path: DefaultDBPath()},
		Server: Server{
			Addr:         ":8080",
			BodyLimit:    1 << 20,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Logging:   Logging{Level: "info", Format: "text"},
		Cache:     Cache{MaxCostBytes: 8 << 20, TTL: 5 * time.Minute},
		Repricing: Repricing{Workers: 4},
	}
}
