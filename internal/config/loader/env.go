package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "DEEPLUS_")
	mapping map[string]string // Env var -> config path
	skip    map[string]bool   // Prefixed variables that are not settings
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "DEEPLUS_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, DefaultEnvMapping())
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		skip:    map[string]bool{prefix + "CONFIG": true},
		environ: os.Environ,
	}
}

// DefaultEnvMapping returns the shorthand environment variables.
// Any other DEEPLUS_SECTION_SETTING_NAME maps to section.settingName.
func DefaultEnvMapping() map[string]string {
	return map[string]string{
		"DEEPLUS_API_URL":     "api.url",
		"DEEPLUS_REF_URL":     "api.refUrl",
		"DEEPLUS_WINDOW_SIZE": "nav.windowSize",
		"DEEPLUS_LOG_LEVEL":   "logging.level",
		"DEEPLUS_LOG_FILE":    "logging.file",
		"DEEPLUS_CACHE_PATH":  "cache.path",
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		if !strings.HasPrefix(env, l.prefix) {
			continue
		}

		name, value, ok := strings.Cut(env, "=")
		if !ok || l.skip[name] {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			// Convert DEEPLUS_NAV_WINDOW_SIZE to nav.windowSize
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		SetByPath(config, path, parseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts DEEPLUS_NAV_WINDOW_SIZE to nav.windowSize.
// The first part is the section; the rest form the camelCase setting name.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")
	if len(parts) < 2 || parts[0] == "" {
		return ""
	}

	settingName := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if len(part) > 0 {
			settingName += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}

	return strings.ToLower(parts[0]) + "." + settingName
}

// parseValue attempts to parse the string value into an appropriate type.
// "1" and "0" stay numbers so that numeric settings can be set to them.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only if it contains a decimal point to avoid misinterpreting ints
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	// Try JSON array/object
	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	return s
}

// SetEnviron replaces the environment source, for tests.
func (l *EnvLoader) SetEnviron(environ func() []string) {
	l.environ = environ
}
