// Package config loads application configuration from YAML or TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/diff-folders/internal/theme"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const appName = "diff-folders"

// AppConfig defines the global diff-folders configuration options.
type AppConfig struct {
	Theme      string   `mapstructure:"theme"`
	DebugLog   string   `mapstructure:"debug_log"`
	Ignore     []string `mapstructure:"ignore"`      // gitignore-like patterns skipped on both sides
	ShowIcons  bool     `mapstructure:"show_icons"`  // Render Nerd Font icons in the list pane
	FocusRatio int      `mapstructure:"focus_ratio"` // Width percentage given to the focused pane
	TabWidth   int      `mapstructure:"tab_width"`   // Spaces used to expand tabs in the detail pane
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Theme:      theme.DraculaName,
		ShowIcons:  false,
		FocusRatio: 70,
		TabWidth:   4,
	}
}

// Validate clamps out-of-range values and rejects unknown themes.
func (c *AppConfig) Validate() error {
	if c.FocusRatio < 50 || c.FocusRatio > 90 {
		c.FocusRatio = DefaultConfig().FocusRatio
	}
	if c.TabWidth <= 0 {
		c.TabWidth = DefaultConfig().TabWidth
	}
	if c.Theme == "" {
		c.Theme = theme.DraculaName
		return nil
	}
	normalized := NormalizeThemeName(c.Theme)
	if normalized == "" {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	c.Theme = normalized
	return nil
}

func getConfigDir() string {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return xdgConfigHome
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// LoadConfig reads the application configuration. An empty configPath searches
// the default locations; a missing file yields the defaults.
func LoadConfig(configPath string) (*AppConfig, error) {
	var paths []string
	if configPath != "" {
		expanded, err := ExpandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{expanded}
	} else {
		base := filepath.Join(getConfigDir(), appName)
		paths = []string{
			filepath.Join(base, "config.yaml"),
			filepath.Join(base, "config.yml"),
			filepath.Join(base, "config.toml"),
		}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if configPath != "" {
				return DefaultConfig(), fmt.Errorf("config file %s: %w", path, err)
			}
			continue
		}

		data, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			return DefaultConfig(), fmt.Errorf("read config %s: %w", path, err)
		}

		raw, err := unmarshalRaw(path, data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
		}

		cfg := DefaultConfig()
		if err := decodeInto(cfg, raw, false); err != nil {
			return DefaultConfig(), fmt.Errorf("decode config %s: %w", path, err)
		}
		return cfg, nil
	}

	return DefaultConfig(), nil
}

func unmarshalRaw(path string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

// decodeInto decodes raw onto cfg. Unknown keys are tolerated in config
// files but rejected when strict is set.
func decodeInto(cfg *AppConfig, raw map[string]any, strict bool) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      strict,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(raw)
}

// ApplyCLIOverrides applies key=value overrides on top of the loaded config.
// Keys may carry a "df." prefix. List values are comma separated.
func (c *AppConfig) ApplyCLIOverrides(overrides []string) error {
	raw := map[string]any{}
	for _, override := range overrides {
		key, value, ok := strings.Cut(override, "=")
		if !ok {
			return fmt.Errorf("invalid override %q, expected key=value", override)
		}
		key = strings.TrimPrefix(strings.TrimSpace(key), "df.")
		value = strings.TrimSpace(value)
		if key == "" {
			return fmt.Errorf("invalid override %q, empty key", override)
		}
		if key == "ignore" {
			c.Ignore = nil
			raw[key] = splitList(value)
			continue
		}
		raw[key] = value
	}
	return decodeInto(c, raw, true)
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ExpandPath expands a leading ~ and environment variables.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, known := range theme.AvailableThemes() {
		if name == known {
			return name
		}
	}
	return ""
}
