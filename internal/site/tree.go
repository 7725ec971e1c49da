package site

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/docnav/internal/sidebar"
)

var (
	parentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	groupStyle  = lipgloss.NewStyle().Bold(true)
	linkStyle   = lipgloss.NewStyle().Faint(true)
	orderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// untitledGroup labels the default group of a parent path.
const untitledGroup = "(default)"

// RenderTree renders a sidebar as an indented tree for the terminal, parent
// paths in lexical order.
func RenderTree(cfg sidebar.Config) string {
	parents := make([]string, 0, len(cfg))
	for p := range cfg {
		parents = append(parents, p)
	}
	slices.Sort(parents)

	var b strings.Builder
	for _, p := range parents {
		b.WriteString(parentStyle.Render(p))
		b.WriteByte('\n')
		renderGroups(&b, cfg[p])
	}
	return b.String()
}

// RenderGroups renders the groups of a single parent path.
func RenderGroups(groups []sidebar.Group) string {
	var b strings.Builder
	renderGroups(&b, groups)
	return b.String()
}

func renderGroups(b *strings.Builder, groups []sidebar.Group) {
	for i, g := range groups {
		last := i == len(groups)-1
		branch, indent := "├── ", "│   "
		if last {
			branch, indent = "└── ", "    "
		}

		title := g.Title
		if title == "" {
			title = untitledGroup
		}
		fmt.Fprintf(b, "%s%s%s\n", branch, groupStyle.Render(title), formatOrder(g.Order))

		for j, item := range g.Children {
			leaf := "├── "
			if j == len(g.Children)-1 {
				leaf = "└── "
			}
			label := item.Title
			if label == "" {
				label = item.Link
			}
			fmt.Fprintf(b, "%s%s%s  %s%s\n", indent, leaf, label, linkStyle.Render(item.Link), formatOrder(item.Order))
		}
	}
}

// formatOrder shows non-default orders next to an entry.
func formatOrder(order float64) string {
	if order == 0 {
		return ""
	}
	return " " + orderStyle.Render(fmt.Sprintf("[%g]", order))
}
