package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

type Routing struct{}

func (Routing) Title() string {
	return "Routing"
}

func (p Routing) Render(tree vyos.Tree, width int, _ int) string {
	routes := vyos.StaticRoutes(tree)
	if len(routes) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			heading(p.Title(), width),
			emptyMessage("No static routes configured", width))
	}

	rows := make([][]string, len(routes))
	for idx, route := range routes {
		via := strings.Join(route.NextHops, ", ")
		if route.Blackhole {
			via = "blackhole"
		}
		rows[idx] = []string{route.Prefix, orDash(via), orDash(strings.Join(route.Interface, ", "))}
	}

	table := newRowTable(width, nil, "Prefix", "Next hop", "Interface").Rows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left, heading("Static routes", width), "", table.Render())
}
