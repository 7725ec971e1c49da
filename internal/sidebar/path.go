package sidebar

import (
	"regexp"
	"strings"
)

// locationParentRe matches the last segment of a URL path (with an optional
// trailing slash) together with the segment before it.
var locationParentRe = regexp.MustCompile(`(/[^/]+)(/[^/]+/?)$`)

// ClearLocalePath removes the locale base from a route path so that routes
// of different locales can be compared. A locale without a base leaves the
// path untouched.
//
//	guide/start, {Base: "/"}           => guide/start
//	zh-CN/guide/start, {Base: "/zh-CN"} => guide/start
func ClearLocalePath(path string, locale Locale) string {
	if locale.Base == "" {
		return path
	}
	base := strings.TrimPrefix(locale.Base, "/")
	if base != "" {
		path = strings.Replace(path, base, "", 1)
	}
	return strings.TrimPrefix(path, "/")
}

// ParentOfRoutePath returns the sidebar key of a route path by dropping its
// final segment. Single-segment paths are their own parent.
//
//	a          => /a
//	a/b        => /a
//	en-US/a/b  => /en-US/a
func ParentOfRoutePath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 && i < len(path)-1 {
		path = path[:i]
	}
	return "/" + path
}

// ParentOfLocation returns the sidebar key for the current URL. clearPath is
// the locale-cleared form of pathname; when it is empty the visitor is on a
// locale root and pathname itself is the key. A trailing slash never opens a
// bucket of its own.
//
//	/a          => /a
//	/a/b        => /a
//	/en-US/a/b/ => /en-US/a
//	/zh-CN/     => /zh-CN
func ParentOfLocation(pathname, clearPath string) string {
	parent := pathname
	if clearPath != "" {
		parent = locationParentRe.ReplaceAllString(pathname, "$1")
	}
	if parent == pathname && len(parent) > 1 {
		parent = strings.TrimSuffix(parent, "/")
	}
	return parent
}
