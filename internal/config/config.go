package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/deeplus/internal/config/loader"
	"github.com/dshills/deeplus/internal/input"
	"github.com/dshills/deeplus/internal/nav"
	"github.com/dshills/deeplus/internal/renderer/core"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "DEEPLUS_"

// Default endpoints of the home and set APIs.
const (
	DefaultAPIURL = "https://cd-static.bamgrid.com/dp-117731241344/home.json"
	DefaultRefURL = "https://cd-static.bamgrid.com/dp-117731241344/sets/{refId}.json"

	// DefaultFallbackImage is shown for items whose payload has no tile image.
	DefaultFallbackImage = "https://prod-ripcut-delivery.disney-plus.net/v1/variant/disney/FFA0BEBAC1406D88929497501C84019EBBA1B018D3F7C4C3C829F1810A24AD6E/scale?width=600&aspectRatio=1.78&format=png"

	// RefIDPlaceholder is replaced by the set reference id in APIConfig.RefURL.
	RefIDPlaceholder = "{refId}"
)

// Config is the complete application configuration.
type Config struct {
	API     APIConfig           `yaml:"api"`
	Nav     NavConfig           `yaml:"nav"`
	UI      UIConfig            `yaml:"ui"`
	Keys    map[string][]string `yaml:"keys"`
	Cache   CacheConfig         `yaml:"cache"`
	Logging LoggingConfig       `yaml:"logging"`

	// Path is the config file that was read, empty if none.
	Path string `yaml:"-"`
}

// APIConfig configures the catalog client.
type APIConfig struct {
	URL           string        `yaml:"url"`
	RefURL        string        `yaml:"refUrl"`
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"userAgent"`
	ResolveRefs   bool          `yaml:"resolveRefs"`
	FallbackImage string        `yaml:"fallbackImage"`
}

// NavConfig configures grid navigation.
type NavConfig struct {
	// WindowSize is the number of tiles visible per row page.
	WindowSize int `yaml:"windowSize"`
}

// UIConfig configures the terminal view.
type UIConfig struct {
	// TileWidth is the width of one tile in cells, including its gap.
	TileWidth int `yaml:"tileWidth"`
	// RowHeight is the height of one row in lines, including its title.
	RowHeight int   `yaml:"rowHeight"`
	Theme     Theme `yaml:"theme"`
}

// Theme holds the colour names or hex values used by the view.
type Theme struct {
	Background    string `yaml:"background"`
	Foreground    string `yaml:"foreground"`
	Muted         string `yaml:"muted"`
	Tile          string `yaml:"tile"`
	Highlight     string `yaml:"highlight"`
	HighlightText string `yaml:"highlightText"`
	Error         string `yaml:"error"`
}

// CacheConfig configures the offline response cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	// MaxAge bounds how old a cached response may be; 0 means no limit.
	MaxAge time.Duration `yaml:"maxAge"`
}

// LoggingConfig configures the application log.
type LoggingConfig struct {
	Level string `yaml:"level"`
	// File is the log destination; "-" or "off" discards output.
	File string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			URL:           DefaultAPIURL,
			RefURL:        DefaultRefURL,
			Timeout:       10 * time.Second,
			UserAgent:     "deeplus",
			ResolveRefs:   true,
			FallbackImage: DefaultFallbackImage,
		},
		Nav: NavConfig{
			WindowSize: nav.DefaultWindowSize,
		},
		UI: UIConfig{
			TileWidth: 22,
			RowHeight: 6,
			Theme: Theme{
				Background:    "#1a1d29",
				Foreground:    "#f9f9f9",
				Muted:         "#8f9098",
				Tile:          "#31343e",
				Highlight:     "#0063e5",
				HighlightText: "#ffffff",
				Error:         "#e5484d",
			},
		},
		Keys: input.DefaultBindings(),
		Cache: CacheConfig{
			Enabled: true,
			Path:    filepath.Join(cacheDir(), "catalog.db"),
			MaxAge:  24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(stateDir(), "deeplus.log"),
		},
	}
}

// LoadOptions controls Load.
type LoadOptions struct {
	// Path is the config file. Empty means DefaultPath; a missing file at
	// the default path is not an error.
	Path string

	// FS overrides the file system, for tests.
	FS loader.FileSystem

	// Environ overrides os.Environ, for tests.
	Environ func() []string

	// Overrides are applied last, keyed by dotted setting path.
	Overrides map[string]any
}

// Load reads defaults, the config file, the environment and overrides,
// in that order, and validates the result.
func Load(opts LoadOptions) (*Config, error) {
	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	merged := make(map[string]any)

	fl, err := loader.ForPath(opts.FS, path)
	if err != nil {
		return nil, err
	}
	fileData, err := fl.Load()
	if err != nil {
		return nil, err
	}
	if fileData == nil && explicit {
		return nil, fmt.Errorf("config file %s: %w", path, os.ErrNotExist)
	}
	loader.DeepMerge(merged, fileData)

	env := loader.NewEnvLoader(EnvPrefix)
	if opts.Environ != nil {
		env.SetEnviron(opts.Environ)
	}
	envData, err := env.Load()
	if err != nil {
		return nil, err
	}
	loader.DeepMerge(merged, envData)

	for p, v := range opts.Overrides {
		loader.SetByPath(merged, p, v)
	}

	cfg, err := decode(merged)
	if err != nil {
		return nil, err
	}
	if fileData != nil {
		cfg.Path = path
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode applies a merged settings map on top of the defaults.
func decode(data map[string]any) (*Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}

	raw, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("decoding settings: %w", err)
	}
	return cfg, nil
}

// Validate checks every setting and returns ValidationErrors listing all
// problems, or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors
	add := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}

	if c.API.URL == "" {
		add("api.url", "must not be empty", c.API.URL)
	} else if u, err := url.Parse(c.API.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		add("api.url", "must be an http or https URL", c.API.URL)
	}
	if c.API.ResolveRefs && !strings.Contains(c.API.RefURL, RefIDPlaceholder) {
		add("api.refUrl", "must contain "+RefIDPlaceholder+" when resolveRefs is set", c.API.RefURL)
	}
	if c.API.Timeout <= 0 {
		add("api.timeout", "must be positive", c.API.Timeout)
	}

	if c.Nav.WindowSize <= 0 {
		add("nav.windowSize", "must be positive", c.Nav.WindowSize)
	}
	if c.UI.TileWidth < 4 {
		add("ui.tileWidth", "must be at least 4", c.UI.TileWidth)
	}
	if c.UI.RowHeight < 3 {
		add("ui.rowHeight", "must be at least 3", c.UI.RowHeight)
	}
	for _, f := range c.UI.Theme.fields() {
		if _, err := core.ParseColor(f.value); err != nil {
			add("ui.theme."+f.name, "not a colour", f.value)
		}
	}

	if _, err := input.NewKeymap(c.Keys); err != nil {
		add("keys", err.Error(), c.Keys)
	}

	if c.Cache.MaxAge < 0 {
		add("cache.maxAge", "must not be negative", c.Cache.MaxAge)
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		add("cache.path", "must be set when the cache is enabled", c.Cache.Path)
	}

	if !validLogLevel(c.Logging.Level) {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

type themeField struct {
	name, value string
}

// fields returns the theme colours with their setting names.
func (t Theme) fields() []themeField {
	return []themeField{
		{"background", t.Background},
		{"foreground", t.Foreground},
		{"muted", t.Muted},
		{"tile", t.Tile},
		{"highlight", t.Highlight},
		{"highlightText", t.HighlightText},
		{"error", t.Error},
	}
}

func validLogLevel(s string) bool {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// LogDisabled reports whether logging.file turns logging off.
func (c *Config) LogDisabled() bool {
	switch strings.ToLower(c.Logging.File) {
	case "", "-", "off", "none":
		return true
	}
	return false
}

// IsNotExist reports whether err means an explicitly named config file was
// missing.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// DefaultPath returns $XDG_CONFIG_HOME/deeplus/config.toml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "deeplus", "config.toml")
}

func cacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "deeplus")
}

// stateDir follows XDG_STATE_HOME, falling back to ~/.local/state.
func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "deeplus")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "deeplus")
}
