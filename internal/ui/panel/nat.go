package panel

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

type NAT struct{}

func (NAT) Title() string {
	return "NAT"
}

func (p NAT) Render(tree vyos.Tree, width int, _ int) string {
	parts := []string{heading(p.Title(), width)}

	for _, direction := range []struct {
		key   string
		label string
	}{
		{key: "source", label: "Source NAT"},
		{key: "destination", label: "Destination NAT"},
	} {
		parts = append(parts, "", styles.PanelValue.Bold(true).Render(direction.label))

		rules := vyos.NATRules(tree, direction.key)
		if len(rules) == 0 {
			parts = append(parts, styles.Muted.Render("  no rules"))

			continue
		}

		parts = append(parts, ruleTable(rules, width, true))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
