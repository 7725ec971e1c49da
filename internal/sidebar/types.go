package sidebar

import (
	"strings"

	"github.com/spf13/cast"
)

// Locale describes a site locale. Base is the URL prefix of the locale
// (e.g. "/zh-CN"); an empty Base means the locale has no prefix to strip.
type Locale struct {
	ID   string `json:"id" yaml:"id" koanf:"id"`
	Base string `json:"base,omitempty" yaml:"base,omitempty" koanf:"base"`
}

// Route is a resolved document route. Path carries no leading slash.
type Route struct {
	Path string     `json:"path"`
	Meta *RouteMeta `json:"meta,omitempty"`
}

// RouteMeta holds the metadata attached to a route.
type RouteMeta struct {
	Frontmatter Frontmatter `json:"frontmatter"`
}

// Frontmatter is the raw front-matter payload of a page.
type Frontmatter map[string]any

// Title returns the page title, or "" when unset.
func (f Frontmatter) Title() string {
	return scalarString(f["title"])
}

// Order returns the page order, or 0 when unset or not numeric.
func (f Frontmatter) Order() float64 {
	return toNumber(f["order"])
}

// Group resolves the group a page belongs to. The "group" field may be a
// plain title or a mapping with title and order keys.
func (f Frontmatter) Group() (title string, order float64) {
	switch g := f["group"].(type) {
	case nil:
		return "", 0
	case map[string]any:
		return scalarString(g["title"]), toNumber(g["order"])
	case Frontmatter:
		return scalarString(g["title"]), toNumber(g["order"])
	default:
		return scalarString(g), 0
	}
}

// Item is a single navigable leaf of the sidebar.
type Item struct {
	Title       string      `json:"title,omitempty" yaml:"title,omitempty" koanf:"title"`
	Link        string      `json:"link" yaml:"link" koanf:"link"`
	Order       float64     `json:"order" yaml:"order" koanf:"order"`
	Frontmatter Frontmatter `json:"frontmatter,omitempty" yaml:"frontmatter,omitempty" koanf:"frontmatter"`
}

// Group is a titled (or default, untitled) cluster of items that share a
// parent path.
type Group struct {
	Title    string  `json:"title,omitempty" yaml:"title,omitempty" koanf:"title"`
	Order    float64 `json:"order" yaml:"order" koanf:"order"`
	Children []Item  `json:"children" yaml:"children" koanf:"children"`
}

// Config maps a parent path to its ordered groups.
type Config map[string][]Group

// Entry is anything the comparator can order: groups and items.
type Entry interface {
	SortOrder() float64
	SortLink() string
	SortTitle() string
}

func (i Item) SortOrder() float64 { return i.Order }
func (i Item) SortLink() string   { return i.Link }
func (i Item) SortTitle() string  { return i.Title }

func (g Group) SortOrder() float64 { return g.Order }
func (g Group) SortLink() string   { return "" }
func (g Group) SortTitle() string  { return g.Title }

// scalarString renders a scalar frontmatter value as text. Mappings and
// lists have no title form and yield "".
func scalarString(v any) string {
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

// toNumber coerces a YAML/JSON scalar to a number. Booleans and anything
// that is not numeric yield 0.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case bool:
		return 0
	case string:
		v = strings.TrimSpace(n)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}
