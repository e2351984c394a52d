package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"localesync/internal/config"
	"localesync/internal/domain"
)

var envKeys = []string{"LOCALES_DIR", "PATCH_FILE", "LANGUAGES", "SORT_KEYS", "DRY_RUN", "UI_LOCALE", "LOG_LEVEL"}

// clearEnv unsets every variable Load reads, restoring them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("LOCALES_DIR", dir)
	t.Setenv("PATCH_FILE", "patches/dialog.toml")
	t.Setenv("LANGUAGES", " es, fr ,,es,pt-BR")
	t.Setenv("SORT_KEYS", "true")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.LocalesDir)
	assert.Equal(t, "patches/dialog.toml", cfg.PatchFile)
	assert.Equal(t, []string{"es", "fr", "pt-BR"}, cfg.Languages)
	assert.True(t, cfg.SortKeys)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, "en", cfg.UILocale)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_OptionsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOCALES_DIR", filepath.Join(t.TempDir(), "missing"))
	t.Setenv("LANGUAGES", "es")
	dir := t.TempDir()

	cfg, err := config.Load(
		config.WithLocalesDir(dir),
		config.WithPatchFile("p.json"),
		config.WithLanguages([]string{"de"}),
		config.WithDryRun(true),
		config.WithUILocale("fr"),
		config.WithLogLevel("DEBUG"),
	)

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.LocalesDir)
	assert.Equal(t, []string{"de"}, cfg.Languages)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "fr", cfg.UILocale)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(filepath.Join(cwd, "locales"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, ".env"),
		[]byte("LOCALES_DIR=locales\nPATCH_FILE=patch.json\nLANGUAGES=es,fr\n"), 0o644))

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "locales", cfg.LocalesDir)
	assert.Equal(t, []string{"es", "fr"}, cfg.Languages)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing dir", map[string]string{"PATCH_FILE": "p.json"}},
		{"dir does not exist", map[string]string{"LOCALES_DIR": filepath.Join(dir, "nope"), "PATCH_FILE": "p.json"}},
		{"dir is a file", map[string]string{"LOCALES_DIR": file, "PATCH_FILE": "p.json"}},
		{"missing patch", map[string]string{"LOCALES_DIR": dir}},
		{"patch extension", map[string]string{"LOCALES_DIR": dir, "PATCH_FILE": "p.yaml"}},
		{"bad language", map[string]string{"LOCALES_DIR": dir, "PATCH_FILE": "p.json", "LANGUAGES": "es,../fr"}},
		{"bad bool", map[string]string{"LOCALES_DIR": dir, "PATCH_FILE": "p.json", "DRY_RUN": "maybe"}},
		{"bad ui locale", map[string]string{"LOCALES_DIR": dir, "PATCH_FILE": "p.json", "UI_LOCALE": "not a tag"}},
		{"bad log level", map[string]string{"LOCALES_DIR": dir, "PATCH_FILE": "p.json", "LOG_LEVEL": "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestValidate_LanguageError(t *testing.T) {
	cfg := &config.Config{LocalesDir: t.TempDir(), PatchFile: "p.toml", Languages: []string{"x/y"}}

	assert.ErrorIs(t, cfg.Validate(), domain.ErrInvalidLanguageCode)
}
