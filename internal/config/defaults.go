package config

import (
	"slices"
	"time"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// DefaultExcludes are glob patterns skipped during route discovery by default.
var DefaultExcludes = []string{
	"**/_*",
	"**/_*/**",
	"**/node_modules/**",
	"**/.*/**",
}

// DefaultLocales is a single root locale.
var DefaultLocales = []sidebar.Locale{
	{ID: "en-US", Base: "/"},
}

// DefaultConfig returns a Config with sensible defaults. The slices are
// copies, so callers may modify them freely.
func DefaultConfig() *Config {
	return &Config{
		DocsDir: "docs",
		Include: []string{"**/*.md"},
		Exclude: slices.Clone(DefaultExcludes),
		Locales: slices.Clone(DefaultLocales),
		Locale:  DefaultLocales[0].ID,
		Server: ServerConfig{
			Port:        8080,
			SessionTTL:  30 * time.Minute,
			MaxSessions: 1000,
		},
	}
}
