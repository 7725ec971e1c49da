package site

import (
	"fmt"

	"github.com/ziadkadry99/docnav/internal/config"
	"github.com/ziadkadry99/docnav/internal/progress"
	"github.com/ziadkadry99/docnav/internal/routes"
	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// Data is what the site knows up front: the routes of every locale and the
// user's sidebar override. Sessions are opened against it.
type Data struct {
	Routes        []sidebar.Route
	Locales       []sidebar.Locale
	DefaultLocale string
	Sidebar       sidebar.Config
}

// Load discovers the routes under cfg.DocsDir.
func Load(cfg *config.Config, reporter progress.Reporter) (*Data, error) {
	active, err := cfg.ActiveLocale()
	if err != nil {
		return nil, err
	}

	found, err := routes.Discover(routes.Options{
		DocsDir:  cfg.DocsDir,
		Include:  cfg.Include,
		Exclude:  cfg.Exclude,
		Locales:  cfg.Locales,
		Reporter: reporter,
	})
	if err != nil {
		return nil, fmt.Errorf("discovering routes: %w", err)
	}

	return &Data{
		Routes:        found,
		Locales:       cfg.Locales,
		DefaultLocale: active.ID,
		Sidebar:       cfg.Sidebar,
	}, nil
}

// Locale resolves a locale id; "" selects the default locale.
func (d *Data) Locale(id string) (sidebar.Locale, error) {
	if id == "" {
		id = d.DefaultLocale
	}
	for _, l := range d.Locales {
		if l.ID == id {
			return l, nil
		}
	}
	return sidebar.Locale{}, fmt.Errorf("unknown locale %q", id)
}

// NewSession opens a sidebar session for the given locale. Only the routes
// of that locale feed the sidebar.
func (d *Data) NewSession(localeID string) (*sidebar.Session, error) {
	locale, err := d.Locale(localeID)
	if err != nil {
		return nil, err
	}
	return sidebar.NewSession(sidebar.BuildInput{
		Routes:   routes.ForLocale(d.Routes, d.Locales, locale.ID),
		Locale:   locale,
		Override: d.Sidebar,
	}), nil
}
