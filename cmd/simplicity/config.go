package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	envPrefix       = "SIMPLICITY_"
	defaultDebounce = 100 * time.Millisecond
	defaultCache    = 256
)

// Config is the on-disk configuration. Zero fields keep their defaults.
type Config struct {
	Workers   int           `yaml:"workers"`
	Strict    bool          `yaml:"strict"`
	NoColor   bool          `yaml:"no_color"`
	DOTDir    string        `yaml:"dot_dir"`
	Include   []string      `yaml:"include"`
	Exclude   []string      `yaml:"exclude"`
	CacheSize int           `yaml:"cache_size"`
	Debounce  time.Duration `yaml:"debounce"`
	Log       LogConfig     `yaml:"log"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		Include:   []string{"**.inet"},
		CacheSize: defaultCache,
		Debounce:  defaultDebounce,
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig overlays the YAML file at path and then the environment on the
// defaults. A missing file is an error only when explicit is set.
func LoadConfig(path string, explicit bool, lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err = yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config %s: %w", path, err)
			}
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv reads SIMPLICITY_* overrides. NO_COLOR is honoured as well.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sWORKERS: %w", envPrefix, err)
		}
		cfg.Workers = n
	}
	for name, dst := range map[string]*bool{"STRICT": &cfg.Strict, "NO_COLOR": &cfg.NoColor} {
		v, ok := lookup(envPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, name, err)
		}
		*dst = b
	}
	if _, ok := lookup("NO_COLOR"); ok {
		cfg.NoColor = true
	}
	if v, ok := lookup(envPrefix + "DOT_DIR"); ok {
		cfg.DOTDir = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(envPrefix + "LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	return nil
}

// Validate rejects settings no command can run with.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("config: debounce must not be negative, got %s", c.Debounce)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format %q, want text or json", c.Log.Format)
	}
	return nil
}

func lookupEnv(key string) (string, bool) { return os.LookupEnv(key) }
