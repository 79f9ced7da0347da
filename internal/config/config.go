package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-pptx2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidWorkers = errors.New("invalid worker count")
	ErrInvalidTimeout = errors.New("invalid timeout")
	ErrInvalidUpload  = errors.New("invalid max upload size")
)

// Limits for validated settings.
const (
	MaxWorkers     = 64  // parallel conversion workers
	MaxUploadMB    = 512 // HTTP upload size ceiling
	MaxTimeoutMins = 30  // per-conversion deadline ceiling
)

// Defaults applied when a setting is absent.
const (
	DefaultOutputDir   = "out"
	DefaultTimeout     = 30 * time.Second
	DefaultPort        = "8080"
	DefaultDataDir     = "data"
	DefaultMaxUploadMB = 50
)

// Config holds all configuration for conversion and the HTTP adapter.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

// OutputConfig defines conversion output options.
type OutputConfig struct {
	Dir     string `yaml:"dir"`     // default output root (empty = "out")
	Workers int    `yaml:"workers"` // parallel workers (0 = auto)
	Timeout string `yaml:"timeout"` // per-conversion deadline, e.g. "30s", "2m"
}

// ServerConfig defines HTTP server options.
type ServerConfig struct {
	Port        string `yaml:"port"`        // listen port (default: 8080)
	DataDir     string `yaml:"dataDir"`     // root for uploads and converted decks
	MaxUploadMB int64  `yaml:"maxUploadMB"` // upload size limit in MB
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:     DefaultOutputDir,
			Timeout: DefaultTimeout.String(),
		},
		Server: ServerConfig{
			Port:        DefaultPort,
			DataDir:     DefaultDataDir,
			MaxUploadMB: DefaultMaxUploadMB,
		},
	}
}

// LoadConfig reads and parses a YAML config file, filling defaults for
// absent fields and validating the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadServerEnv overlays server settings from environment variables:
// PORT, DATA_DIR, MAX_UPLOAD_MB. Unset variables leave the config as is.
func (c *Config) LoadServerEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = port
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		c.Server.DataDir = dir
	}
	if raw := os.Getenv("MAX_UPLOAD_MB"); raw != "" {
		var mb int64
		if _, err := fmt.Sscanf(raw, "%d", &mb); err != nil {
			return fmt.Errorf("%w: MAX_UPLOAD_MB=%q", ErrInvalidUpload, raw)
		}
		c.Server.MaxUploadMB = mb
	}

	abs, err := filepath.Abs(c.Server.DataDir)
	if err != nil {
		return fmt.Errorf("resolving data dir: %w", err)
	}
	c.Server.DataDir = abs
	return c.Validate()
}

// applyDefaults fills zero-valued fields after parsing.
func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Timeout == "" {
		c.Output.Timeout = DefaultTimeout.String()
	}
	if c.Server.Port == "" {
		c.Server.Port = DefaultPort
	}
	if c.Server.DataDir == "" {
		c.Server.DataDir = DefaultDataDir
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = DefaultMaxUploadMB
	}
}

// Validate checks ranges on all validated settings.
func (c *Config) Validate() error {
	if c.Output.Workers < 0 || c.Output.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkers, c.Output.Workers, MaxWorkers)
	}
	if _, err := c.Timeout(); err != nil {
		return err
	}
	if c.Server.MaxUploadMB < 1 || c.Server.MaxUploadMB > MaxUploadMB {
		return fmt.Errorf("%w: %d MB (must be 1-%d)", ErrInvalidUpload, c.Server.MaxUploadMB, MaxUploadMB)
	}
	return nil
}

// Timeout parses the configured conversion deadline.
func (c *Config) Timeout() (time.Duration, error) {
	d, err := time.ParseDuration(c.Output.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Output.Timeout)
	}
	if d <= 0 || d > MaxTimeoutMins*time.Minute {
		return 0, fmt.Errorf("%w: %s (must be positive, at most %dm)", ErrInvalidTimeout, d, MaxTimeoutMins)
	}
	return d, nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB * 1024 * 1024
}
