package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: DOCNAV_SERVER__PORT -> server.port.
const EnvPrefix = "DOCNAV_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCNAV_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	// ZeroFields makes configured lists replace the defaults instead of
	// being decoded into the default slices element by element.
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           cfg,
			WeaklyTypedInput: true,
			ZeroFields:       true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}

	if len(c.Locales) == 0 {
		return fmt.Errorf("at least one locale is required")
	}
	seen := make(map[string]bool, len(c.Locales))
	for _, l := range c.Locales {
		if l.ID == "" {
			return fmt.Errorf("locale id is required")
		}
		if seen[l.ID] {
			return fmt.Errorf("duplicate locale %q", l.ID)
		}
		seen[l.ID] = true
		if l.Base != "" && !strings.HasPrefix(l.Base, "/") {
			return fmt.Errorf("invalid base %q for locale %q: must start with /", l.Base, l.ID)
		}
	}

	if c.Locale != "" && !seen[c.Locale] {
		return fmt.Errorf("active locale %q is not configured", c.Locale)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535")
	}
	if c.Server.SessionTTL < 0 {
		return fmt.Errorf("server.session_ttl must not be negative")
	}
	if c.Server.MaxSessions < 0 {
		return fmt.Errorf("server.max_sessions must not be negative")
	}

	return nil
}

// LocaleByID returns the configured locale with the given id.
func (c *Config) LocaleByID(id string) (sidebar.Locale, bool) {
	for _, l := range c.Locales {
		if l.ID == id {
			return l, true
		}
	}
	return sidebar.Locale{}, false
}

// ActiveLocale resolves the active locale. An empty `locale` selects the
// first configured locale.
func (c *Config) ActiveLocale() (sidebar.Locale, error) {
	if c.Locale == "" {
		if len(c.Locales) == 0 {
			return sidebar.Locale{}, fmt.Errorf("no locales configured")
		}
		return c.Locales[0], nil
	}
	l, ok := c.LocaleByID(c.Locale)
	if !ok {
		return sidebar.Locale{}, fmt.Errorf("active locale %q is not configured", c.Locale)
	}
	return l, nil
}
