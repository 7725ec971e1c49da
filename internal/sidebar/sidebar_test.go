package sidebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func route(path string, fm Frontmatter) Route {
	return Route{Path: path, Meta: &RouteMeta{Frontmatter: fm}}
}

func titles[E Entry](entries []E) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.SortTitle()
	}
	return out
}

func TestClearLocalePath(t *testing.T) {
	tests := []struct {
		path   string
		locale Locale
		want   string
	}{
		{"guide/start", Locale{ID: "en-US"}, "guide/start"},
		{"guide/start", Locale{ID: "en-US", Base: "/"}, "guide/start"},
		{"/guide/start", Locale{ID: "en-US", Base: "/"}, "guide/start"},
		{"zh-CN/guide/start", Locale{ID: "zh-CN", Base: "/zh-CN"}, "guide/start"},
		{"zh-CN", Locale{ID: "zh-CN", Base: "/zh-CN"}, ""},
		{"", Locale{ID: "en-US", Base: "/"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClearLocalePath(tt.path, tt.locale), "ClearLocalePath(%q, %+v)", tt.path, tt.locale)
	}
}

func TestParentOfRoutePath(t *testing.T) {
	tests := map[string]string{
		"a":         "/a",
		"a/b":       "/a",
		"en-US/a":   "/en-US",
		"en-US/a/b": "/en-US/a",
		"a/b/c/d":   "/a/b/c",
	}
	for in, want := range tests {
		assert.Equal(t, want, ParentOfRoutePath(in), "ParentOfRoutePath(%q)", in)
	}
}

func TestParentOfLocation(t *testing.T) {
	tests := []struct {
		pathname  string
		clearPath string
		want      string
	}{
		{"/a", "a", "/a"},
		{"/a/b", "a/b", "/a"},
		{"/a/b/", "a/b/", "/a"},
		{"/a/", "a/", "/a"},
		{"/en-US/a", "a", "/en-US"},
		{"/en-US/a/b", "a/b", "/en-US/a"},
		{"/en-US/a/b/", "a/b/", "/en-US/a"},
		{"/", "", "/"},
		{"/en-US", "", "/en-US"},
		{"/zh-CN/", "", "/zh-CN"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParentOfLocation(tt.pathname, tt.clearPath), "ParentOfLocation(%q, %q)", tt.pathname, tt.clearPath)
	}
}

func TestFrontmatterAccessors(t *testing.T) {
	fm := Frontmatter{"title": "Intro", "order": "2", "group": 7}
	assert.Equal(t, "Intro", fm.Title())
	assert.Equal(t, float64(2), fm.Order())
	title, order := fm.Group()
	assert.Equal(t, "7", title)
	assert.Zero(t, order)

	fm = Frontmatter{"group": map[string]any{"title": "Basics", "order": 3}}
	title, order = fm.Group()
	assert.Equal(t, "Basics", title)
	assert.Equal(t, float64(3), order)

	var empty Frontmatter
	assert.Empty(t, empty.Title())
	assert.Zero(t, empty.Order())
	title, order = empty.Group()
	assert.Empty(t, title)
	assert.Zero(t, order)

	assert.Zero(t, Frontmatter{"order": true}.Order())
	assert.Equal(t, 1.5, Frontmatter{"order": " 1.5 "}.Order())
	assert.Equal(t, float64(3), Frontmatter{"order": int64(3)}.Order())
	assert.Empty(t, Frontmatter{"title": map[string]any{"en": "Intro"}}.Title())

	fm = Frontmatter{"order": []any{1}, "group": map[string]any{"order": 4}}
	assert.Zero(t, fm.Order())
	title, order = fm.Group()
	assert.Empty(t, title)
	assert.Equal(t, float64(4), order)
}

func TestCompareByOrder(t *testing.T) {
	cmp := NewComparator("en")
	groups := []Group{
		{Title: "c", Order: 3},
		{Title: "a", Order: 1},
		{Title: "b", Order: 2},
	}
	cmp.SortGroups(groups)
	got := []float64{groups[0].Order, groups[1].Order, groups[2].Order}
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestCompareByLinkDepth(t *testing.T) {
	cmp := NewComparator("en")
	items := []Item{
		{Title: "A", Link: "/a/b/c"},
		{Title: "Z", Link: "/a/b"},
	}
	cmp.SortItems(items)
	assert.Equal(t, "/a/b", items[0].Link)
	assert.Equal(t, "/a/b/c", items[1].Link)
}

func TestCompareByTitle(t *testing.T) {
	cmp := NewComparator("en")
	items := []Item{
		{Title: "Banana", Link: "/a/banana"},
		{Title: "Apple", Link: "/a/apple"},
	}
	cmp.SortItems(items)
	assert.Equal(t, []string{"Apple", "Banana"}, titles(items))
}

func TestCompareTitleUsesLocale(t *testing.T) {
	a := Item{Title: "ä", Link: "/x/1"}
	z := Item{Title: "z", Link: "/x/2"}

	assert.Negative(t, NewComparator("de").Compare(a, z))
	assert.Positive(t, NewComparator("sv").Compare(a, z))
}

func TestCompareUnknownLocaleFallsBack(t *testing.T) {
	cmp := NewComparator("not a locale!")
	assert.Negative(t, cmp.Compare(Item{Title: "Apple"}, Item{Title: "Banana"}))
}

func TestCompareUntitledIsAsymmetric(t *testing.T) {
	cmp := NewComparator("en")
	untitled := Group{}
	titled := Group{Title: "Basics"}

	assert.Equal(t, -1, cmp.Compare(untitled, titled))
	assert.Positive(t, cmp.Compare(titled, untitled))

	// two untitled entries both claim to sort first
	assert.Equal(t, -1, cmp.Compare(Item{Link: "/a/x"}, Item{Link: "/a/y"}))
	assert.Equal(t, -1, cmp.Compare(Item{Link: "/a/y"}, Item{Link: "/a/x"}))
}

func sampleRoutes() []Route {
	return []Route{
		route("", Frontmatter{"title": "Home"}),
		route("guide/start", Frontmatter{"title": "Start", "group": "Basics"}),
		route("guide/install", Frontmatter{"title": "Install", "group": map[string]any{"title": "Basics", "order": 2}}),
		route("guide/advanced", Frontmatter{"title": "Advanced", "group": map[string]any{"title": "Deep", "order": 1}}),
		route("guide/faq", Frontmatter{"title": "FAQ"}),
		route("api/client", Frontmatter{"title": "Client"}),
		{Path: "guide/hidden"},
	}
}

func TestBuildGroupsByParentAndTitle(t *testing.T) {
	cfg := Build(BuildInput{Routes: sampleRoutes(), Locale: Locale{ID: "en-US", Base: "/"}})

	require.Len(t, cfg, 2)
	guide := cfg["/guide"]
	require.Len(t, guide, 3)
	require.Len(t, cfg["/api"], 1)

	assert.Equal(t, []string{"", "Deep", "Basics"}, titles(guide))
	assert.Equal(t, []float64{0, 1, 2}, []float64{guide[0].Order, guide[1].Order, guide[2].Order})

	basics := guide[2]
	assert.Equal(t, []string{"Install", "Start"}, titles(basics.Children))
	assert.Equal(t, "/guide/install", basics.Children[0].Link)
	assert.Equal(t, "Install", basics.Children[0].Frontmatter["title"])

	assert.Equal(t, []string{"FAQ"}, titles(guide[0].Children))
	assert.Equal(t, "/api/client", cfg["/api"][0].Children[0].Link)
}

func TestBuildKeepsFirstNonZeroGroupOrder(t *testing.T) {
	routes := []Route{
		route("docs/a", Frontmatter{"title": "A", "group": map[string]any{"title": "G", "order": 3}}),
		route("docs/b", Frontmatter{"title": "B", "group": map[string]any{"title": "G", "order": 5}}),
	}
	cfg := Build(BuildInput{Routes: routes, Locale: Locale{ID: "en"}})

	require.Len(t, cfg["/docs"], 1)
	assert.Equal(t, float64(3), cfg["/docs"][0].Order)
	assert.Len(t, cfg["/docs"][0].Children, 2)
}

func TestBuildSkipsIndexRoutes(t *testing.T) {
	routes := []Route{
		route("", Frontmatter{"title": "Home"}),
		route("zh-CN", Frontmatter{"title": "首页"}),
	}
	cfg := Build(BuildInput{Routes: routes, Locale: Locale{ID: "zh-CN", Base: "/zh-CN"}})
	assert.Empty(t, cfg)
}

func TestBuildLocalePrefixedRoutes(t *testing.T) {
	routes := []Route{
		route("zh-CN/guide/start", Frontmatter{"title": "开始"}),
		route("zh-CN/guide", Frontmatter{"title": "指南"}),
	}
	cfg := Build(BuildInput{Routes: routes, Locale: Locale{ID: "zh-CN", Base: "/zh-CN"}})

	require.Contains(t, cfg, "/zh-CN/guide")
	assert.Equal(t, "/zh-CN/guide/start", cfg["/zh-CN/guide"][0].Children[0].Link)
	require.Contains(t, cfg, "/zh-CN")
	assert.Equal(t, "/zh-CN/guide", cfg["/zh-CN"][0].Children[0].Link)
}

func TestBuildOverrideReplacesKey(t *testing.T) {
	override := Config{
		"/guide": {{Title: "Custom", Children: []Item{{Title: "Only", Link: "/guide/only"}}}},
	}
	cfg := Build(BuildInput{Routes: sampleRoutes(), Locale: Locale{ID: "en-US", Base: "/"}, Override: override})

	assert.Equal(t, override["/guide"], cfg["/guide"])
	require.Len(t, cfg["/api"], 1)
	assert.Equal(t, "Client", cfg["/api"][0].Children[0].Title)
}

func TestCurrent(t *testing.T) {
	groups := []Group{{Title: "Guide", Children: []Item{{Title: "Start", Link: "/en-US/guide/start"}}}}
	cfg := Config{"/en-US/guide": groups}
	locale := Locale{ID: "en-US", Base: "/en-US"}

	assert.Equal(t, groups, Current(cfg, locale, "/en-US/guide/start"))
	assert.Equal(t, groups, Current(cfg, locale, "/en-US/guide/start/"))

	got := Current(cfg, locale, "/")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, Current(cfg, locale, "/en-US/api/client"))
	assert.Empty(t, Current(cfg, locale, ""))
}

func TestCurrentLocaleRootTrailingSlash(t *testing.T) {
	locale := Locale{ID: "zh-CN", Base: "/zh-CN"}
	cfg := Build(BuildInput{Routes: []Route{route("zh-CN/guide", Frontmatter{"title": "指南"})}, Locale: locale})
	require.Contains(t, cfg, "/zh-CN")

	assert.Len(t, Current(cfg, locale, "/zh-CN"), 1)
	assert.Equal(t, Current(cfg, locale, "/zh-CN"), Current(cfg, locale, "/zh-CN/"))
}

func TestSessionBuildsOnce(t *testing.T) {
	s := NewSession(BuildInput{Routes: sampleRoutes(), Locale: Locale{ID: "en-US", Base: "/"}})

	full := s.FullSidebar()
	full["/marker"] = nil
	assert.Contains(t, s.FullSidebar(), "/marker")

	assert.Equal(t, []string{"", "Deep", "Basics"}, titles(s.CurrentSidebar("/guide/start")))
	assert.Empty(t, s.CurrentSidebar("/"))
	assert.Negative(t, s.Compare(Item{Title: "Apple"}, Item{Title: "Banana"}))
	assert.Equal(t, "en-US", s.Locale().ID)
}

func TestSessionsAreIsolated(t *testing.T) {
	in := BuildInput{Routes: sampleRoutes(), Locale: Locale{ID: "en-US", Base: "/"}}
	a := NewSession(in)
	b := NewSession(in)

	a.FullSidebar()["/marker"] = nil
	assert.NotContains(t, b.FullSidebar(), "/marker")
}
