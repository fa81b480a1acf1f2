package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

type Interfaces struct{}

func (Interfaces) Title() string {
	return "Network Interfaces"
}

func (p Interfaces) Render(tree vyos.Tree, width int, _ int) string {
	ifaces := vyos.Interfaces(tree)
	if len(ifaces) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			heading(p.Title(), width),
			emptyMessage("No interfaces configured", width))
	}

	disabled := map[int]bool{}
	rows := make([][]string, len(ifaces))
	for idx, iface := range ifaces {
		disabled[idx] = iface.Disabled
		rows[idx] = []string{
			iface.Type,
			iface.Name,
			orDash(strings.Join(iface.Addresses, ", ")),
			orDash(iface.Description),
		}
	}

	table := newRowTable(width, disabled, "Type", "Name", "Address", "Description").Rows(rows...)

	return lipgloss.JoinVertical(lipgloss.Left, heading(p.Title(), width), "", table.Render())
}
