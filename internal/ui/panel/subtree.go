package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

type subtreeSection struct {
	label string
	path  []string
}

// Subtree shows one or more configuration subtrees as an indented outline. Sections that are
// absent from the tree are skipped; when all are absent the empty message is shown instead.
type Subtree struct {
	title    string
	empty    string
	sections []subtreeSection
}

func (p Subtree) Title() string {
	return p.title
}

func (p Subtree) Render(tree vyos.Tree, width int, _ int) string {
	parts := []string{heading(p.title, width)}

	found := false
	for _, section := range p.sections {
		if !tree.Has(section.path...) {
			continue
		}
		found = true

		parts = append(parts, "", styles.PanelValue.Bold(true).Render(section.label))
		if node := tree.Node(section.path...); node != nil {
			parts = append(parts, clip(strings.Join(outline(node, 1, nil), "\n"), width))
		} else {
			parts = append(parts, clip("  "+strings.Join(tree.Strings(section.path...), ", "), width))
		}
	}

	if !found {
		parts = append(parts, emptyMessage(p.empty, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// outline flattens node into indented lines. Leaves are written as "key value" and valueless
// nodes as the bare key.
func outline(node vyos.Tree, depth int, lines []string) []string {
	prefix := strings.Repeat("  ", depth)

	for _, key := range node.Keys() {
		child := node.Node(key)
		switch {
		case child != nil && len(child) == 0:
			lines = append(lines, prefix+key)
		case child != nil:
			lines = append(lines, prefix+styles.Muted.Render(key))
			lines = outline(child, depth+1, lines)
		default:
			values := node.Strings(key)
			if value, ok := node.String(key); ok {
				values = []string{value}
			}

			if len(values) == 0 {
				lines = append(lines, prefix+key)
			} else {
				lines = append(lines, prefix+key+" "+styles.PanelValue.Render(strings.Join(values, ", ")))
			}
		}
	}

	return lines
}
