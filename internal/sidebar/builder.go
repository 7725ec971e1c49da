package sidebar

import "maps"

// defaultGroupStubTitle keys the untitled group of a parent path.
const defaultGroupStubTitle = "$default-group-title"

// BuildInput is everything the builder reads.
type BuildInput struct {
	Routes   []Route
	Locale   Locale
	Override Config // user sidebar, replaces generated entries by key
}

// bucket collects the groups of one parent path in first-seen order.
type bucket struct {
	keys   []string
	groups map[string]*Group
}

// Build generates the sidebar for all routes of the active locale and
// applies the user override on top.
func Build(in BuildInput) Config {
	return build(in, NewComparator(in.Locale.ID))
}

func build(in BuildInput, cmp *Comparator) Config {
	var parents []string
	buckets := make(map[string]*bucket)

	for _, route := range in.Routes {
		// index routes have nothing left once the locale is cleared
		if ClearLocalePath(route.Path, in.Locale) == "" || route.Meta == nil {
			continue
		}

		parent := ParentOfRoutePath(route.Path)
		fm := route.Meta.Frontmatter
		title, order := fm.Group()
		key := title
		if key == "" {
			key = defaultGroupStubTitle
		}

		b, ok := buckets[parent]
		if !ok {
			b = &bucket{groups: make(map[string]*Group)}
			buckets[parent] = b
			parents = append(parents, parent)
		}
		g, ok := b.groups[key]
		if !ok {
			g = &Group{Title: title}
			b.groups[key] = g
			b.keys = append(b.keys, key)
		}
		if g.Order == 0 {
			g.Order = order
		}
		g.Children = append(g.Children, Item{
			Title:       fm.Title(),
			Link:        "/" + route.Path,
			Order:       fm.Order(),
			Frontmatter: fm,
		})
	}

	cfg := make(Config, len(parents)+len(in.Override))
	for _, parent := range parents {
		b := buckets[parent]
		groups := make([]Group, 0, len(b.keys))
		for _, key := range b.keys {
			g := *b.groups[key]
			cmp.SortItems(g.Children)
			groups = append(groups, g)
		}
		cmp.SortGroups(groups)
		cfg[parent] = groups
	}

	maps.Copy(cfg, in.Override)
	return cfg
}
