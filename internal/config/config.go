// Package config loads brainz client settings from a YAML or TOML file and
// the environment.
//
// The loading sequence is:
//  1. Start from defaults
//  2. Overlay the file, if it exists (".toml" is TOML, anything else YAML)
//  3. Apply BRAINZ_* environment overrides
//  4. Validate
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/roach88/brainz/internal/transport"
)

// Environment variables consulted by Load.
const (
	EnvBaseURL     = "BRAINZ_BASE_URL"
	EnvCoverArtURL = "BRAINZ_COVER_ART_URL"
	EnvTimeout     = "BRAINZ_TIMEOUT"
	EnvContact     = "BRAINZ_CONTACT"
	EnvLogLevel    = "BRAINZ_LOG_LEVEL"
)

const defaultPath = "~/.config/brainz/config.yaml"

// Config is the resolved client configuration.
type Config struct {
	BaseURL string
	// CoverArtURL is the Cover Art Archive root.
	CoverArtURL string
	Timeout     time.Duration
	UserAgent transport.UserAgent
	Log       Log
	// RulesFile replaces the embedded rule tables when set.
	RulesFile string
}

// Log selects the slog handler.
type Log struct {
	Level  string
	Format string
}

// file mirrors the on-disk layout. Timeout stays a string so both decoders
// accept "10s".
type file struct {
	BaseURL     string `yaml:"base_url" toml:"base_url"`
	CoverArtURL string `yaml:"cover_art_url" toml:"cover_art_url"`
	Timeout     string `yaml:"timeout" toml:"timeout"`
	UserAgent   struct {
		App     string `yaml:"app" toml:"app"`
		Version string `yaml:"version" toml:"version"`
		Contact string `yaml:"contact" toml:"contact"`
	} `yaml:"user_agent" toml:"user_agent"`
	Log struct {
		Level  string `yaml:"level" toml:"level"`
		Format string `yaml:"format" toml:"format"`
	} `yaml:"log" toml:"log"`
	RulesFile string `yaml:"rules_file" toml:"rules_file"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		BaseURL:     transport.DefaultBaseURL,
		CoverArtURL: transport.DefaultCoverArtURL,
		Timeout:     transport.DefaultTimeout,
		UserAgent: transport.UserAgent{
			App:     "brainz",
			Version: "dev",
		},
		Log: Log{Level: "info", Format: "text"},
	}
}

// Load reads path (or the default location when path is empty), applies
// environment overrides and validates the result. A missing file at the
// default location is not an error.
func Load(path string) (Config, error) {
	return load(path, os.LookupEnv)
}

func load(path string, lookupEnv func(string) (string, bool)) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = defaultPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	data, err := os.ReadFile(resolved)
	switch {
	case err == nil:
		if err := decode(resolved, data, &cfg); err != nil {
			return Config{}, err
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg, lookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	var raw file
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to io.EOF.
		if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	overlay(&cfg.BaseURL, raw.BaseURL)
	overlay(&cfg.CoverArtURL, raw.CoverArtURL)
	overlay(&cfg.UserAgent.App, raw.UserAgent.App)
	overlay(&cfg.UserAgent.Version, raw.UserAgent.Version)
	overlay(&cfg.UserAgent.Contact, raw.UserAgent.Contact)
	overlay(&cfg.Log.Level, raw.Log.Level)
	overlay(&cfg.Log.Format, raw.Log.Format)
	overlay(&cfg.RulesFile, raw.RulesFile)

	if t := strings.TrimSpace(raw.Timeout); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("parse config %s: timeout: %w", path, err)
		}
		cfg.Timeout = d
	}
	switch {
	case cfg.RulesFile == "":
	case strings.HasPrefix(cfg.RulesFile, "~"):
		rules, err := expandPath(cfg.RulesFile)
		if err != nil {
			return err
		}
		cfg.RulesFile = rules
	case !filepath.IsAbs(cfg.RulesFile):
		cfg.RulesFile = filepath.Join(filepath.Dir(path), cfg.RulesFile)
	}
	return nil
}

func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvBaseURL); ok && v != "" {
		cfg.BaseURL = v
	}
	if v, ok := lookupEnv(EnvCoverArtURL); ok && v != "" {
		cfg.CoverArtURL = v
	}
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookupEnv(EnvContact); ok && v != "" {
		cfg.UserAgent.Contact = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base_url is required")
	}
	if strings.TrimSpace(c.CoverArtURL) == "" {
		return errors.New("cover_art_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// SlogLevel converts Level. Unknown names map to info.
func (l Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func overlay(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
