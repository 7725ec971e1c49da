package sidebar

import "sync"

// Session holds the sidebar of one rendering session. The full sidebar is
// built on first use and never rebuilt; start a new Session to pick up new
// routes or configuration.
type Session struct {
	in   BuildInput
	cmp  *Comparator
	once sync.Once
	full Config
}

// NewSession returns a session over the given input. Nothing is computed
// until the sidebar is first requested.
func NewSession(in BuildInput) *Session {
	return &Session{in: in, cmp: NewComparator(in.Locale.ID)}
}

// Locale returns the active locale of the session.
func (s *Session) Locale() Locale { return s.in.Locale }

// FullSidebar returns the complete sidebar keyed by parent path. Callers must
// treat it as read-only.
func (s *Session) FullSidebar() Config {
	s.once.Do(func() {
		s.full = build(s.in, s.cmp)
	})
	return s.full
}

// CurrentSidebar returns the groups for the page at pathname.
func (s *Session) CurrentSidebar(pathname string) []Group {
	return Current(s.FullSidebar(), s.in.Locale, pathname)
}

// Compare orders two entries the way the session's sidebar is ordered.
func (s *Session) Compare(a, b Entry) int {
	return s.cmp.Compare(a, b)
}
