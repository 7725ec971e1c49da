package config

import (
	"time"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// Config is the top-level docnav configuration, corresponding to .docnav.yml.
type Config struct {
	DocsDir string           `yaml:"docs_dir" koanf:"docs_dir"`
	Include []string         `yaml:"include" koanf:"include"`
	Exclude []string         `yaml:"exclude" koanf:"exclude"`
	Locales []sidebar.Locale `yaml:"locales" koanf:"locales"`
	Locale  string           `yaml:"locale" koanf:"locale"`
	Sidebar sidebar.Config   `yaml:"sidebar,omitempty" koanf:"sidebar"`
	Server  ServerConfig     `yaml:"server" koanf:"server"`
}

// ServerConfig holds settings for `docnav serve`.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionTTL      time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
	MaxSessions     int           `yaml:"max_sessions" koanf:"max_sessions"`
}
