package sidebar

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Comparator orders sidebar entries: by order, then by link depth, then by
// title collated under a locale. It is safe for concurrent use.
type Comparator struct {
	mu   sync.Mutex
	coll *collate.Collator
}

// NewComparator returns a Comparator collating titles for the given locale
// id. Unparseable ids fall back to English.
func NewComparator(localeID string) *Comparator {
	tag, err := language.Parse(localeID)
	if err != nil {
		tag = language.English
	}
	return &Comparator{coll: collate.New(tag)}
}

// Compare returns a negative number when a sorts before b, a positive number
// when it sorts after, and 0 when they tie.
//
// An untitled a always sorts before b, whatever b is. This keeps the default
// group ahead of titled groups but makes the order asymmetric for two
// untitled entries.
func (c *Comparator) Compare(a, b Entry) int {
	if d := a.SortOrder() - b.SortOrder(); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}

	if link := a.SortLink(); link != "" {
		if d := linkDepth(link) - linkDepth(b.SortLink()); d != 0 {
			return d
		}
	}

	title := a.SortTitle()
	if title == "" {
		return -1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.coll.CompareString(title, b.SortTitle())
}

// SortGroups sorts groups in place.
func (c *Comparator) SortGroups(groups []Group) {
	slices.SortStableFunc(groups, func(a, b Group) int { return c.Compare(a, b) })
}

// SortItems sorts items in place.
func (c *Comparator) SortItems(items []Item) {
	slices.SortStableFunc(items, func(a, b Item) int { return c.Compare(a, b) })
}

func linkDepth(link string) int {
	return strings.Count(link, "/") + 1
}
