package cmd

import (
	"fmt"

	"github.com/ziadkadry99/docnav/internal/config"
	"github.com/ziadkadry99/docnav/internal/progress"
	"github.com/ziadkadry99/docnav/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docnav init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadSite loads the config and discovers the docs routes. Progress is
// shown in verbose mode.
func loadSite() (*config.Config, *site.Data, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	var reporter progress.Reporter = progress.Nop{}
	if verbose {
		reporter = progress.NewReporter()
	}
	data, err := site.Load(cfg, reporter)
	if err != nil {
		return nil, nil, err
	}
	newLogger().Debug("routes discovered", "docs_dir", cfg.DocsDir, "routes", len(data.Routes))
	return cfg, data, nil
}
