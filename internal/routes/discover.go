package routes

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/docnav/internal/progress"
	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// Options controls route discovery.
type Options struct {
	DocsDir  string           // Root directory of the markdown docs.
	Include  []string         // Glob patterns; only matching files become routes.
	Exclude  []string         // Glob patterns; matching files are skipped.
	Locales  []sidebar.Locale // Locales whose ids may appear as file suffixes.
	Reporter progress.Reporter
}

// Discover walks opts.DocsDir and returns one route per markdown page, in
// lexical file order. Route paths carry no leading slash; the root index
// page has an empty path.
func Discover(opts Options) ([]sidebar.Route, error) {
	root, err := filepath.Abs(opts.DocsDir)
	if err != nil {
		return nil, fmt.Errorf("routes: resolve docs dir: %w", err)
	}
	if info, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("routes: docs dir: %w", err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("routes: docs dir %s is not a directory", root)
	}

	files, err := collectFiles(root, opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	reporter.Start(len(files))
	defer reporter.Finish()

	routes := make([]sidebar.Route, 0, len(files))
	sources := make(map[string]string, len(files))
	for i, relPath := range files {
		reporter.Update(i+1, relPath)

		routePath := RoutePath(relPath, opts.Locales)
		if prev, dup := sources[routePath]; dup {
			return nil, fmt.Errorf("routes: %s and %s both map to route %q", prev, relPath, routePath)
		}
		sources[routePath] = relPath

		fm, err := readFrontmatter(filepath.Join(root, filepath.FromSlash(relPath)))
		if err != nil {
			return nil, fmt.Errorf("routes: %s: %w", relPath, err)
		}
		routes = append(routes, sidebar.Route{
			Path: routePath,
			Meta: &sidebar.RouteMeta{Frontmatter: fm},
		})
	}

	return routes, nil
}

// collectFiles returns the slash-separated relative paths of all files
// under root that pass the include/exclude filters.
func collectFiles(root string, include, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		if d.IsDir() {
			if p != root && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(root, p)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if !MatchesInclude(relPath, include) || MatchesExclude(relPath, exclude) {
			return nil
		}
		files = append(files, relPath)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("routes: traversal: %w", err)
	}
	return files, nil
}

// readFrontmatter reads a page and returns its frontmatter, filling in the
// title from the first level-1 heading when the frontmatter has none.
func readFrontmatter(file string) (sidebar.Frontmatter, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	block, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}
	fm, err := parseFrontmatter(block)
	if err != nil {
		return nil, err
	}
	if fm.Title() == "" {
		if title := headingTitle(body); title != "" {
			fm["title"] = title
		}
	}
	return fm, nil
}

// RoutePath maps a docs-relative file path to its route path.
//
//	guide/start.md        => guide/start
//	guide/index.md        => guide
//	index.md              => ""
//	guide/start.zh-CN.md  => zh-CN/guide/start   (locale zh-CN, base /zh-CN)
func RoutePath(relPath string, locales []sidebar.Locale) string {
	relPath = filepath.ToSlash(relPath)
	p := strings.TrimSuffix(relPath, path.Ext(relPath))

	var base string
	for _, l := range locales {
		if suffix := "." + l.ID; l.ID != "" && strings.HasSuffix(p, suffix) {
			p = strings.TrimSuffix(p, suffix)
			base = strings.Trim(l.Base, "/")
			break
		}
	}

	dir, name := path.Split(p)
	if strings.EqualFold(name, "index") || strings.EqualFold(name, "readme") {
		p = strings.TrimSuffix(dir, "/")
	}

	if base != "" {
		if p == "" {
			return base
		}
		return base + "/" + p
	}
	return p
}
