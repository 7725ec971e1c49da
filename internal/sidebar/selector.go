package sidebar

// Current returns the groups shown next to pathname, or an empty slice when
// the page has no sidebar.
func Current(cfg Config, locale Locale, pathname string) []Group {
	var rest string
	if len(pathname) > 0 {
		rest = pathname[1:]
	}
	parent := ParentOfLocation(pathname, ClearLocalePath(rest, locale))
	if parent == "" {
		return []Group{}
	}
	groups, ok := cfg[parent]
	if !ok || groups == nil {
		return []Group{}
	}
	return groups
}
