// Package config loads CLI settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/reoring/lavasearch"
)

type Config struct {
	Driver string       `koanf:"driver"` // "go-json" or "encoding/json"
	Log    LogConfig    `koanf:"log"`
	Decode DecodeConfig `koanf:"decode"`
	Output OutputConfig `koanf:"output"`
}

type LogConfig struct {
	Level string `koanf:"level"` // debug, info, warn, error
}

// DecodeConfig maps onto lavasearch.Options.
type DecodeConfig struct {
	Match          string `koanf:"match"`          // "full" or "discriminator"
	StrictLoadType bool   `koanf:"strict_load_type"`
	DuplicateKeys  string `koanf:"duplicate_keys"` // "ignore", "warn" or "error"
	MaxDepth       int    `koanf:"max_depth"`
	MaxBytes       int64  `koanf:"max_bytes"`
}

type OutputConfig struct {
	Format string `koanf:"format"` // "yaml" or "json"
}

// Default returns the settings used when no file overrides them.
func Default() *Config {
	return &Config{
		Driver: "go-json",
		Log:    LogConfig{Level: "info"},
		Decode: DecodeConfig{Match: "full", DuplicateKeys: "ignore", MaxDepth: 64},
		Output: OutputConfig{Format: "yaml"},
	}
}

// Load reads the given TOML files in order (last wins) over Default.
// Missing files are skipped; an empty list falls back to DefaultPaths.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = DefaultPaths()
	}
	k := koanf.New(".")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists ~/.config/lavasearch/config.toml then ./lavasearch.toml.
func DefaultPaths() []string {
	paths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lavasearch", "config.toml"))
	}
	return append(paths, "lavasearch.toml")
}

// Options converts the decode section into decoder options.
func (c *Config) Options() (lavasearch.Options, error) {
	var opt lavasearch.Options
	switch c.Decode.Match {
	case "", "full":
		opt.FieldMatch = lavasearch.MatchFullName
	case "discriminator":
		opt.FieldMatch = lavasearch.MatchDiscriminator
	default:
		return opt, fmt.Errorf("unknown match mode %q", c.Decode.Match)
	}
	switch c.Decode.DuplicateKeys {
	case "", "ignore":
		opt.Strictness.OnDuplicateKey = lavasearch.Ignore
	case "warn":
		opt.Strictness.OnDuplicateKey = lavasearch.Warn
	case "error":
		opt.Strictness.OnDuplicateKey = lavasearch.Error
	default:
		return opt, fmt.Errorf("unknown duplicate key policy %q", c.Decode.DuplicateKeys)
	}
	if c.Decode.StrictLoadType {
		opt.LoadTypes = lavasearch.LoadTypeChecked
	}
	opt.MaxDepth = c.Decode.MaxDepth
	opt.MaxBytes = c.Decode.MaxBytes
	return opt, nil
}

// JSONDriver resolves the configured token reader.
func (c *Config) JSONDriver() (lavasearch.JSONDriver, error) {
	d, ok := lavasearch.JSONDriverByName(c.Driver)
	if !ok {
		return nil, fmt.Errorf("unknown json driver %q", c.Driver)
	}
	return d, nil
}
