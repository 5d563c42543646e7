// Package config loads runtime settings for the lending shell from an optional YAML
// file and LENDING_* environment variables, in that order of precedence (env wins).
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the shell's settings.
type Config struct {
	SeedFile  string `yaml:"seed_file"`
	Seed      bool   `yaml:"seed"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	StartDay  int    `yaml:"start_day"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Seed:      true,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load reads path (skipped when empty or missing) over the defaults, then applies
// environment overrides. A .env file in the working directory is loaded first if present.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()
	if path != "" {
		buf, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(buf, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("LENDING_SEED_FILE")); v != "" {
		c.SeedFile = v
	}
	if v := strings.TrimSpace(os.Getenv("LENDING_SEED")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LENDING_SEED: %w", err)
		}
		c.Seed = b
	}
	if v := strings.TrimSpace(os.Getenv("LENDING_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("LENDING_LOG_FORMAT")); v != "" {
		c.LogFormat = v
	}
	if v := strings.TrimSpace(os.Getenv("LENDING_START_DAY")); v != "" {
		day, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("LENDING_START_DAY: %w", err)
		}
		c.StartDay = day
	}
	return nil
}

// Validate rejects settings the shell cannot run with.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log format must be text or json, got %q", c.LogFormat)
	}
	if c.StartDay < 0 {
		return errors.New("start day cannot be negative")
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}

// NewLogger builds the slog logger described by the settings, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := c.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
