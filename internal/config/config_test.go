package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.MatchCase)
	assert.True(t, cfg.WholeWord)
	assert.False(t, cfg.Regex)
	assert.True(t, cfg.Wrap)
	assert.Equal(t, "region", cfg.Format)
	assert.Equal(t, "Matching Lines", cfg.Pane)
	assert.True(t, cfg.IncludeTests)
	assert.False(t, cfg.IncludeVendor)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, filepath.Join(t.TempDir(), ".findgroup.yaml"), `
match_case: true
whole_word: false
format: markdown
workers: 4
extensions: [".go", ".cs"]
`)
	f, err := Load(path)
	require.NoError(t, err)

	cfg := Default()
	cfg.Apply(f)
	assert.True(t, cfg.MatchCase)
	assert.False(t, cfg.WholeWord)
	assert.True(t, cfg.Wrap, "unset keys keep their default")
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, []string{".go", ".cs"}, cfg.Extensions)
}

func TestLoad_TOML(t *testing.T) {
	path := writeConfig(t, filepath.Join(t.TempDir(), "config.toml"), `
regex = true
wrap = false
pane = "Find Results"
max_width = 100
include_vendor = true
`)
	f, err := Load(path)
	require.NoError(t, err)

	cfg := Default()
	cfg.Apply(f)
	assert.True(t, cfg.Regex)
	assert.False(t, cfg.Wrap)
	assert.Equal(t, "Find Results", cfg.Pane)
	assert.Equal(t, 100, cfg.MaxWidth)
	assert.True(t, cfg.IncludeVendor)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeConfig(t, filepath.Join(dir, "a.yaml"), "colour: red\n"))
	assert.Error(t, err, "unknown yaml key")

	_, err = Load(writeConfig(t, filepath.Join(dir, "b.toml"), "colour = \"red\"\n"))
	assert.Error(t, err, "unknown toml key")

	_, err = Load(writeConfig(t, filepath.Join(dir, "c.yaml"), "workers: many\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, filepath.Join(dir, "d.ini"), "x=1\n"))
	assert.ErrorContains(t, err, "unsupported config extension")

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyFile(t *testing.T) {
	f, err := Load(writeConfig(t, filepath.Join(t.TempDir(), "empty.yaml"), ""))
	require.NoError(t, err)
	assert.Equal(t, File{}, f)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown format", func(c *Config) { c.Format = "xml" }},
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"negative width", func(c *Config) { c.MaxWidth = -5 }},
		{"empty extension", func(c *Config) { c.Extensions = []string{".go", ""} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidValue)
		})
	}
}

func TestFind_WalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, filepath.Join(root, ".findgroup.toml"), "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	got, err := Find(nested, "", filepath.Join(root, "xdg"), root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFind_PrefersYAMLInSameDir(t *testing.T) {
	root := t.TempDir()
	yml := writeConfig(t, filepath.Join(root, ".findgroup.yaml"), "")
	writeConfig(t, filepath.Join(root, ".findgroup.toml"), "")

	got, err := Find(root, "", "", root)
	require.NoError(t, err)
	assert.Equal(t, yml, got)
}

func TestFind_XDG(t *testing.T) {
	root := t.TempDir()
	work := filepath.Join(root, "work")
	require.NoError(t, os.MkdirAll(work, 0755))
	xdg := filepath.Join(root, "xdg")
	want := writeConfig(t, filepath.Join(xdg, "findgroup", "config.yml"), "")

	got, err := Find(work, "", xdg, root)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// without XDG_CONFIG_HOME the home directory's .config is used
	home := filepath.Join(root, "home")
	want = writeConfig(t, filepath.Join(home, ".config", "findgroup", "config.toml"), "")
	got, err = Find(work, "", "", home)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFind_Explicit(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, filepath.Join(dir, "custom.yaml"), "")

	got, err := Find(t.TempDir(), path, "", "")
	require.NoError(t, err)
	assert.Equal(t, path, got)

	_, err = Find(dir, filepath.Join(dir, "missing.yaml"), "", "")
	assert.Error(t, err)

	_, err = Find(dir, dir, "", "")
	assert.ErrorContains(t, err, "is a directory")
}

func TestResolve_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, filepath.Join(dir, "env.yaml"), "format: json\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Resolve(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, path, cfg.Source)

	flagPath := writeConfig(t, filepath.Join(dir, "flag.yaml"), "format: markdown\n")
	cfg, err = Resolve(t.TempDir(), flagPath)
	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format, "--config wins over the environment")
}

func TestResolve_InvalidValue(t *testing.T) {
	path := writeConfig(t, filepath.Join(t.TempDir(), "bad.yaml"), "workers: -2\n")

	_, err := Resolve(t.TempDir(), path)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestExplicitPath(t *testing.T) {
	t.Setenv(EnvConfigPath, " /from/env.yaml ")
	assert.Equal(t, "/from/flag.yaml", ExplicitPath("/from/flag.yaml"))
	assert.Equal(t, "/from/env.yaml", ExplicitPath(""))
}
