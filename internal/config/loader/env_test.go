package loader

import (
	"testing"
	"time"
)

func newTestEnvLoader(env ...string) *EnvLoader {
	l := NewEnvLoader("DEEPLUS_")
	l.environ = func() []string { return env }
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	l := newTestEnvLoader(
		"DEEPLUS_API_URL=https://example.test/home.json",
		"DEEPLUS_WINDOW_SIZE=3",
		"DEEPLUS_LOG_LEVEL=debug",
		"DEEPLUS_CONFIG=/tmp/ignored.toml",
		"HOME=/root",
	)

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetByPath(config, "api.url"); !ok || val != "https://example.test/home.json" {
		t.Errorf("api.url = %v, want example URL", val)
	}
	if val, ok := GetByPath(config, "nav.windowSize"); !ok || val != int64(3) {
		t.Errorf("nav.windowSize = %v (%T), want 3", val, val)
	}
	if val, ok := GetByPath(config, "logging.level"); !ok || val != "debug" {
		t.Errorf("logging.level = %v, want debug", val)
	}
	if _, ok := config["config"]; ok {
		t.Error("DEEPLUS_CONFIG should not become a setting")
	}
	if _, ok := config["home"]; ok {
		t.Error("unprefixed variables should be ignored")
	}
}

func TestEnvLoader_LoadUnmapped(t *testing.T) {
	l := newTestEnvLoader(
		"DEEPLUS_UI_TILE_WIDTH=24",
		"DEEPLUS_CACHE_MAX_AGE=2h",
		"DEEPLUS_API_RESOLVE_REFS=false",
		"DEEPLUS_KEYS_UP=[\"k\",\"Up\"]",
		"DEEPLUS_ORPHAN=1",
	)

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, _ := GetByPath(config, "ui.tileWidth"); val != int64(24) {
		t.Errorf("ui.tileWidth = %v (%T), want 24", val, val)
	}
	if val, _ := GetByPath(config, "cache.maxAge"); val != 2*time.Hour {
		t.Errorf("cache.maxAge = %v (%T), want 2h", val, val)
	}
	if val, _ := GetByPath(config, "api.resolveRefs"); val != false {
		t.Errorf("api.resolveRefs = %v, want false", val)
	}
	if val, _ := GetByPath(config, "keys.up"); val == nil {
		t.Error("keys.up should be parsed from JSON")
	}
	if len(config) != 4 {
		t.Errorf("config has %d sections, want 4 (orphan ignored)", len(config))
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader("DEEPLUS_")
	tests := []struct {
		env  string
		want string
	}{
		{"DEEPLUS_NAV_WINDOW_SIZE", "nav.windowSize"},
		{"DEEPLUS_API_REF_URL", "api.refUrl"},
		{"DEEPLUS_UI_THEME", "ui.theme"},
		{"DEEPLUS_SOLO", ""},
	}

	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"off", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"2.5", 2.5},
		{"10s", 10 * time.Second},
		{"hello", "hello"},
		{"[bad", "[bad"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
