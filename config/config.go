package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	bplus "ShowroomDB/bplustree"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Index     IndexConfig    `yaml:"index"`
	Showrooms ShowroomConfig `yaml:"showrooms"`
	Log       LogConfig      `yaml:"log"`
}

type IndexConfig struct {
	Order int         `yaml:"order"` // max children per internal node
	Cache CacheConfig `yaml:"cache"`
}

// CacheConfig sizes the optional point-lookup cache kept in front of each index.
type CacheConfig struct {
	Enabled     bool  `yaml:"enabled"`
	NumCounters int64 `yaml:"num_counters"`
	MaxCost     int64 `yaml:"max_cost"`
}

type ShowroomConfig struct {
	Count int `yaml:"count"` // showrooms with a salesperson index
}

type LogConfig struct {
	Level       string `yaml:"level"` // debug|info|warn|error
	Development bool   `yaml:"development"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		Index: IndexConfig{
			Order: bplus.DefaultOrder,
			Cache: CacheConfig{
				Enabled:     false,
				NumCounters: 10000,
				MaxCost:     1000,
			},
		},
		Showrooms: ShowroomConfig{Count: 3},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads configPath over the defaults. An empty path probes the usual
// locations and falls back to Default when none exists.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range []string{"configs/showroom.yaml", "showroom.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				return parse(cfg, data, p)
			}
		}
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", configPath)
	}
	return parse(cfg, data, configPath)
}

func parse(cfg *Config, data []byte, path string) (*Config, error) {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Index.Order == 0 {
		cfg.Index.Order = bplus.DefaultOrder
	}
	if cfg.Index.Cache.NumCounters <= 0 {
		cfg.Index.Cache.NumCounters = 10000
	}
	if cfg.Index.Cache.MaxCost <= 0 {
		cfg.Index.Cache.MaxCost = 1000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate fails fast on values the indexes cannot be built with.
func (c *Config) Validate() error {
	if c.Index.Order < bplus.MinOrder || c.Index.Order > bplus.MaxOrder {
		return errors.Wrapf(ErrInvalidConfig, "index.order %d outside [%d, %d]",
			c.Index.Order, bplus.MinOrder, bplus.MaxOrder)
	}
	if c.Showrooms.Count < 1 {
		return errors.Wrapf(ErrInvalidConfig, "showrooms.count must be positive, got %d", c.Showrooms.Count)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log.level %q", c.Log.Level)
	}
	return nil
}
