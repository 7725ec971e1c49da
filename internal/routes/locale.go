package routes

import (
	"strings"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// LocaleOf returns the locale a route path belongs to: the last configured
// locale whose base prefixes the path. Locales with a root or empty base
// match every path, so they should come first.
func LocaleOf(routePath string, locales []sidebar.Locale) (sidebar.Locale, bool) {
	for i := len(locales) - 1; i >= 0; i-- {
		base := strings.Trim(locales[i].Base, "/")
		if base == "" || routePath == base || strings.HasPrefix(routePath, base+"/") {
			return locales[i], true
		}
	}
	return sidebar.Locale{}, false
}

// ForLocale keeps the routes that belong to the locale with the given id.
func ForLocale(routes []sidebar.Route, locales []sidebar.Locale, id string) []sidebar.Route {
	var out []sidebar.Route
	for _, r := range routes {
		if l, ok := LocaleOf(r.Path, locales); ok && l.ID == id {
			out = append(out, r)
		}
	}
	return out
}
