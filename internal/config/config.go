package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"localesync/internal/domain/entities"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

type Config struct {
	LocalesDir string
	PatchFile  string
	// Languages restricts the run; empty means every language of the patch file.
	Languages []string
	SortKeys  bool
	DryRun    bool
	UILocale  string
	LogLevel  string
}

// Option overrides a value read from the environment, e.g. from a flag.
type Option func(*Config)

func WithLocalesDir(dir string) Option    { return func(c *Config) { c.LocalesDir = dir } }
func WithPatchFile(path string) Option    { return func(c *Config) { c.PatchFile = path } }
func WithLanguages(langs []string) Option { return func(c *Config) { c.Languages = langs } }
func WithSortKeys(on bool) Option         { return func(c *Config) { c.SortKeys = on } }
func WithDryRun(on bool) Option           { return func(c *Config) { c.DryRun = on } }
func WithUILocale(locale string) Option   { return func(c *Config) { c.UILocale = locale } }
func WithLogLevel(level string) Option    { return func(c *Config) { c.LogLevel = level } }

// Load reads the configuration from environment variables, applies opts and
// validates the result.
func Load(opts ...Option) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional; the variables may come from the shell or CI.
	}

	cfg := &Config{
		LocalesDir: os.Getenv("LOCALES_DIR"),
		PatchFile:  os.Getenv("PATCH_FILE"),
		Languages:  splitList(os.Getenv("LANGUAGES")),
		UILocale:   os.Getenv("UI_LOCALE"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}

	var err error
	if cfg.SortKeys, err = envBool("SORT_KEYS"); err != nil {
		return nil, err
	}
	if cfg.DryRun, err = envBool("DRY_RUN"); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LocalesDir) == "" {
		return fmt.Errorf("config: LOCALES_DIR is required")
	}
	info, err := os.Stat(c.LocalesDir)
	if err != nil {
		return fmt.Errorf("config: LOCALES_DIR: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config: LOCALES_DIR %q is not a directory", c.LocalesDir)
	}

	if strings.TrimSpace(c.PatchFile) == "" {
		return fmt.Errorf("config: PATCH_FILE is required")
	}
	switch ext := strings.ToLower(filepath.Ext(c.PatchFile)); ext {
	case ".json", ".toml":
	default:
		return fmt.Errorf("config: PATCH_FILE must be a .json or .toml file, got %q", c.PatchFile)
	}

	seen := make(map[string]bool, len(c.Languages))
	langs := c.Languages[:0]
	for _, lang := range c.Languages {
		if _, err := entities.ParseLanguage(lang); err != nil {
			return fmt.Errorf("config: LANGUAGES: %w", err)
		}
		if seen[lang] {
			continue
		}
		seen[lang] = true
		langs = append(langs, lang)
	}
	c.Languages = langs

	if c.UILocale == "" {
		c.UILocale = "en"
	}
	if _, err := language.Parse(c.UILocale); err != nil {
		return fmt.Errorf("config: UI_LOCALE %q: %w", c.UILocale, err)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("config: LOG_LEVEL %q must be one of debug, info, warn, error", c.LogLevel)
	}

	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envBool(key string) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}
