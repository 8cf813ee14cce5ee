package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/ulamspiral/internal/raster"
)

// Config holds all configuration for the ulam tool.
type Config struct {
	LogLevel string `yaml:"log_level"` // debug | info | warn | error

	Render   Render         `yaml:"render"`
	Catalog  Catalog        `yaml:"catalog"`
	Database DatabaseConfig `yaml:"database"`
}

// Render holds image generation settings.
type Render struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Mode    string `yaml:"mode"`    // sweep | sieve
	Inverse string `yaml:"inverse"` // exact | approx (sieve mode only)
	Format  string `yaml:"format"`  // png | bmp | tiff
	Output  string `yaml:"output"`
	Workers int    `yaml:"workers"` // 0 = GOMAXPROCS
}

// Catalog holds settings for persisting spiral points.
type Catalog struct {
	BatchSize int `yaml:"batch_size"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		Render: Render{
			Width:   1001,
			Height:  1001,
			Mode:    "sweep",
			Inverse: "exact",
			Format:  "png",
			Output:  "ulam.png",
		},
		Catalog: Catalog{
			BatchSize: 5000,
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "ulam",
			Password: "ulam",
			DBName:   "ulam",
			SSLMode:  "disable",
		},
	}
}

// Load loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and enum names.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if _, err := c.Render.Spec(); err != nil {
		return err
	}
	if _, err := raster.ParseFormat(c.Render.Format); err != nil {
		return fmt.Errorf("render.format: %w", err)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers must not be negative, got %d", c.Render.Workers)
	}
	if c.Catalog.BatchSize <= 0 {
		return fmt.Errorf("catalog.batch_size must be positive, got %d", c.Catalog.BatchSize)
	}
	return nil
}

// Spec converts the render settings into a raster.Spec.
func (r Render) Spec() (raster.Spec, error) {
	win, err := raster.NewWindow(r.Width, r.Height)
	if err != nil {
		return raster.Spec{}, fmt.Errorf("render window: %w", err)
	}
	mode, err := raster.ParseMode(r.Mode)
	if err != nil {
		return raster.Spec{}, fmt.Errorf("render.mode: %w", err)
	}
	inv, err := raster.ParseInverse(r.Inverse)
	if err != nil {
		return raster.Spec{}, fmt.Errorf("render.inverse: %w", err)
	}
	return raster.Spec{Window: win, Mode: mode, Inverse: inv}, nil
}
