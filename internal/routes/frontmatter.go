package routes

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

// ErrMissingClosingDelimiter is returned when a document opens a
// frontmatter block but never closes it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing ---")

// splitFrontmatter separates `---` delimited YAML frontmatter from the
// markdown body. Documents without frontmatter return a nil block.
func splitFrontmatter(content []byte) (block, body []byte, err error) {
	nl := "\n"
	if bytes.HasPrefix(content, []byte("---\r\n")) {
		nl = "\r\n"
	}
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, nil
	}

	rest := content[len(open):]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], nil
	}
	if string(rest) == "---" {
		return []byte{}, nil, nil
	}

	closing := []byte(nl + "---")
	idx := bytes.Index(rest, closing)
	if idx < 0 {
		return nil, nil, ErrMissingClosingDelimiter
	}
	after := rest[idx+len(closing):]
	switch {
	case len(after) == 0:
	case bytes.HasPrefix(after, []byte(nl)):
		after = after[len(nl):]
	default:
		// "---" followed by more text is not a delimiter line
		return nil, nil, ErrMissingClosingDelimiter
	}
	return rest[:idx+len(nl)], after, nil
}

// parseFrontmatter decodes a YAML frontmatter block.
func parseFrontmatter(block []byte) (sidebar.Frontmatter, error) {
	fm := sidebar.Frontmatter{}
	if len(bytes.TrimSpace(block)) == 0 {
		return fm, nil
	}
	var raw map[string]any
	if err := yaml.Unmarshal(block, &raw); err != nil {
		return nil, fmt.Errorf("frontmatter: %w", err)
	}
	for k, v := range raw {
		fm[k] = stringKeys(v)
	}
	return fm, nil
}

// stringKeys rewrites mappings decoded with non-string keys (`{1: one}`
// decodes as map[any]any) into map[string]any so frontmatter always
// encodes as JSON.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}
