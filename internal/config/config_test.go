package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/lavasearch"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_MissingFilesKeepDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_LastFileWins(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.toml", `
driver = "encoding/json"

[decode]
match = "discriminator"
max_depth = 8

[output]
format = "json"
`)
	override := writeFile(t, dir, "override.toml", `
[decode]
max_depth = 16
duplicate_keys = "error"
strict_load_type = true
`)

	cfg, err := Load(base, override)
	require.NoError(t, err)
	assert.Equal(t, "encoding/json", cfg.Driver)
	assert.Equal(t, "discriminator", cfg.Decode.Match)
	assert.Equal(t, 16, cfg.Decode.MaxDepth)
	assert.Equal(t, "error", cfg.Decode.DuplicateKeys)
	assert.True(t, cfg.Decode.StrictLoadType)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_InvalidTOML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.toml", "driver = ")
	_, err := Load(p)
	require.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Decode.Match = "discriminator"
	cfg.Decode.DuplicateKeys = "warn"
	cfg.Decode.StrictLoadType = true
	cfg.Decode.MaxBytes = 1024

	opt, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, lavasearch.MatchDiscriminator, opt.FieldMatch)
	assert.Equal(t, lavasearch.Warn, opt.Strictness.OnDuplicateKey)
	assert.Equal(t, lavasearch.LoadTypeChecked, opt.LoadTypes)
	assert.Equal(t, 64, opt.MaxDepth)
	assert.Equal(t, int64(1024), opt.MaxBytes)

	cfg.Decode.Match = "fuzzy"
	_, err = cfg.Options()
	require.Error(t, err)

	cfg.Decode.Match = "full"
	cfg.Decode.DuplicateKeys = "sometimes"
	_, err = cfg.Options()
	require.Error(t, err)
}

func TestJSONDriver(t *testing.T) {
	cfg := Default()
	d, err := cfg.JSONDriver()
	require.NoError(t, err)
	assert.Equal(t, "go-json", d.Name())

	cfg.Driver = "encoding/json"
	d, err = cfg.JSONDriver()
	require.NoError(t, err)
	assert.Equal(t, "encoding/json", d.Name())

	cfg.Driver = "simdjson"
	_, err = cfg.JSONDriver()
	require.Error(t, err)
}
