// Package config loads bitsctl settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/joshuapare/bitskit/internal/logger"
	"github.com/joshuapare/bitskit/internal/transmission"
	"github.com/joshuapare/bitskit/pkg/packet"
	"github.com/joshuapare/bitskit/pkg/packet/printer"
)

const (
	appDir   = "bitsctl"
	fileName = "config.toml"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the effective CLI configuration.
type Config struct {
	Format        printer.Format `json:"format"`
	Color         string         `json:"color"`
	LogLevel      string         `json:"log_level"`
	MaxInputBytes int64          `json:"max_input_bytes"`
	Strict        bool           `json:"strict"`
	Limits        packet.Limits  `json:"limits"`

	// Path is the file the config was read from, empty for defaults.
	Path string `json:"path,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:        printer.FormatText,
		Color:         ColorAuto,
		LogLevel:      "warn",
		MaxInputBytes: transmission.DefaultMaxBytes,
		Limits:        packet.DefaultLimits(),
	}
}

type fileLimits struct {
	MaxDepth    int `toml:"max_depth"`
	MaxChildren int `toml:"max_children"`
	MaxPackets  int `toml:"max_packets"`
}

type fileConfig struct {
	Format        string     `toml:"format"`
	Color         string     `toml:"color"`
	LogLevel      string     `toml:"log_level"`
	MaxInputBytes int64      `toml:"max_input_bytes"`
	Strict        bool       `toml:"strict"`
	Limits        fileLimits `toml:"limits"`
}

// DefaultPath returns $XDG_CONFIG_HOME/bitsctl/config.toml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Load reads the config at path. An empty path means DefaultPath, and a
// missing default file yields Default.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg, err := loadFile(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

func loadFile(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path

	if meta.IsDefined("format") {
		f, err := printer.ParseFormat(raw.Format)
		if err != nil {
			return Config{}, fmt.Errorf("parse format: %w", err)
		}
		cfg.Format = f
	}

	if meta.IsDefined("color") {
		c := strings.ToLower(strings.TrimSpace(raw.Color))
		switch c {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.Color = c
		default:
			return Config{}, fmt.Errorf("parse color: unknown mode %q", raw.Color)
		}
	}

	if meta.IsDefined("log_level") {
		if _, _, err := logger.ParseLevel(raw.LogLevel); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(raw.LogLevel))
	}

	if meta.IsDefined("max_input_bytes") {
		if raw.MaxInputBytes <= 0 {
			return Config{}, fmt.Errorf("max_input_bytes must be positive, got %d", raw.MaxInputBytes)
		}
		cfg.MaxInputBytes = raw.MaxInputBytes
	}

	if meta.IsDefined("strict") && raw.Strict {
		cfg.Strict = true
		cfg.Limits = packet.StrictLimits()
	}

	limits := []struct {
		key string
		val int
		dst *int
	}{
		{"max_depth", raw.Limits.MaxDepth, &cfg.Limits.MaxDepth},
		{"max_children", raw.Limits.MaxChildren, &cfg.Limits.MaxChildren},
		{"max_packets", raw.Limits.MaxPackets, &cfg.Limits.MaxPackets},
	}
	for _, l := range limits {
		if !meta.IsDefined("limits", l.key) {
			continue
		}
		if l.val < 0 {
			return Config{}, fmt.Errorf("limits.%s must not be negative, got %d", l.key, l.val)
		}
		*l.dst = l.val
	}

	return cfg, nil
}

// Write encodes cfg as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(fileConfig{
		Format:        string(c.Format),
		Color:         c.Color,
		LogLevel:      c.LogLevel,
		MaxInputBytes: c.MaxInputBytes,
		Strict:        c.Strict,
		Limits: fileLimits{
			MaxDepth:    c.Limits.MaxDepth,
			MaxChildren: c.Limits.MaxChildren,
			MaxPackets:  c.Limits.MaxPackets,
		},
	})
}
