package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "quoteforge.yaml"

// Load reads .env when present, then returns a Config using the hierarchy
// defaults < YAML < ENV.
func Load() (*Config, error) {
	_ = godotenv.Load()
	path := DefaultConfigFile
	if v := os.Getenv("QUOTEFORGE_CONFIG"); v != "" {
		path = v
	}
	return LoadFrom(path)
}

// LoadFrom is Load without the .env step, reading YAML from yamlPath.
// A missing YAML file is not an error.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}
	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}
	return &cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays non-empty QUOTEFORGE_* variables onto cfg.
func loadEnv(cfg *Config) {
	setString(&cfg.Database.Path, "QUOTEFORGE_DB")
	setString(&cfg.Server.Addr, "QUOTEFORGE_ADDR")
	setInt64(&cfg.Server.BodyLimit, "QUOTEFORGE_BODY_LIMIT")
	setDuration(&cfg.Server.ReadTimeout, "QUOTEFORGE_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "QUOTEFORGE_WRITE_TIMEOUT")
	setString(&cfg.Logging.Level, "QUOTEFORGE_LOG_LEVEL")
	setString(&cfg.Logging.Format, "QUOTEFORGE_LOG_FORMAT")
	setInt64(&cfg.Cache.MaxCostBytes, "QUOTEFORGE_CACHE_BYTES")
	setDuration(&cfg.Cache.TTL, "QUOTEFORGE_CACHE_TTL")
	setInt(&cfg.Repricing.Workers, "QUOTEFORGE_REPRICE_WORKERS")
}

func validate(cfg *Config) error {
	var errs []error
	if strings.TrimSpace(cfg.Database.Path) == "" {
		errs = append(errs, errors.New("database.path is required"))
	}
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if cfg.Server.BodyLimit < 1 {
		errs = append(errs, errors.New("server.body_limit must be >= 1"))
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format %q must be json or text", cfg.Logging.Format))
	}
	if _, ok := levels[strings.ToLower(cfg.Logging.Level)]; !ok {
		errs = append(errs, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", cfg.Logging.Level))
	}
	if cfg.Cache.MaxCostBytes < 1 {
		errs = append(errs, errors.New("cache.max_cost_bytes must be >= 1"))
	}
	if cfg.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache.ttl must not be negative"))
	}
	if cfg.Repricing.Workers < 1 {
		errs = append(errs, errors.New("repricing.workers must be >= 1"))
	}
	return errors.Join(errs...)
}

var levels = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {}}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
