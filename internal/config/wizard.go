package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// docsDirCandidates are directories commonly holding markdown docs, in
// order of preference.
var docsDirCandidates = []string{"docs", "doc", "documentation", "content", "src"}

// detectDocsDir returns the first well-known docs directory present in the
// current directory.
func detectDocsDir() string {
	for _, dir := range docsDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "docs"
}

// RunWizard runs an interactive configuration wizard and saves the result
// to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to docnav! Let's configure your documentation site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Docs directory.
	docsPrompt := promptui.Prompt{
		Label:   "Docs directory",
		Default: detectDocsDir(),
	}
	docsDir, err := docsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("docs dir: %w", err)
	}
	cfg.DocsDir = docsDir

	// 2. Locales.
	localesPrompt := promptui.Prompt{
		Label:   "Locales (comma-separated id=base, e.g. en-US=/,zh-CN=/zh-CN)",
		Default: "en-US=/",
		Validate: func(s string) error {
			_, err := parseLocales(s)
			return err
		},
	}
	localesStr, err := localesPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("locales: %w", err)
	}
	locales, err := parseLocales(localesStr)
	if err != nil {
		return nil, err
	}
	cfg.Locales = locales
	cfg.Locale = locales[0].ID

	// 3. Active locale, only asked when there is a choice.
	if len(locales) > 1 {
		ids := make([]string, len(locales))
		for i, l := range locales {
			ids[i] = l.ID
		}
		localePrompt := promptui.Select{
			Label: "Active locale",
			Items: ids,
		}
		_, id, err := localePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("locale selection: %w", err)
		}
		cfg.Locale = id
	}

	// 4. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 || n > 65535 {
				return fmt.Errorf("invalid port %q", s)
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// parseLocales parses "id=base" pairs. A pair without "=" is a locale
// without a base.
func parseLocales(s string) ([]sidebar.Locale, error) {
	var locales []sidebar.Locale
	for _, part := range splitAndTrim(s) {
		id, base, _ := strings.Cut(part, "=")
		id = strings.TrimSpace(id)
		base = strings.TrimSpace(base)
		if id == "" {
			return nil, fmt.Errorf("locale %q has no id", part)
		}
		if base != "" && !strings.HasPrefix(base, "/") {
			return nil, fmt.Errorf("locale %q: base must start with /", id)
		}
		locales = append(locales, sidebar.Locale{ID: id, Base: base})
	}
	if len(locales) == 0 {
		return nil, fmt.Errorf("at least one locale is required")
	}
	return locales, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
