package config

import (
	"errors"
	"hobbitname-server/internal/util"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the hobbit name server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Generator struct {
		// Source is either "crypto" or "math"
		Source string `yaml:"source" envconfig:"source"`
		Seed   int64  `yaml:"seed" envconfig:"seed"`
	}
	MaxBatch       int      `yaml:"maxBatch" envconfig:"max_batch"`
	PoolCacheTTL   int      `yaml:"poolCacheTTL" envconfig:"pool_cache_ttl"`
	AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	cfg := Config{
		MaxBatch:       100,
		PoolCacheTTL:   600,
		AllowedOrigins: []string{"*"},
	}
	cfg.Log.Level = "info"
	cfg.Generator.Source = "crypto"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("HOBBITNAME_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("hobbitname", &cfg); err != nil {
		return err
	}

	if cfg.Generator.Source != "crypto" && cfg.Generator.Source != "math" {
		return errors.New(`generator.source must be "crypto" or "math"`)
	}

	if cfg.MaxBatch < 1 {
		return errors.New("maxBatch must be at least 1")
	}

	cfg.loaded = true
	config = cfg
	return nil
}
