package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

type System struct{}

func (System) Title() string {
	return "System"
}

func (p System) Render(tree vyos.Tree, width int, _ int) string {
	domain, _ := tree.String("system", "domain-name")

	rows := []string{
		heading(p.Title(), width),
		"",
		styles.DetailRow("Host name", vyos.Hostname(tree)),
		styles.DetailRow("Domain", orDash(domain)),
		styles.DetailRow("Time zone", vyos.TimeZone(tree)),
		styles.DetailRow("Name servers", orDash(strings.Join(tree.Strings("system", "name-server"), ", "))),
		styles.DetailRow("Login users", orDash(strings.Join(vyos.LoginUsers(tree), ", "))),
	}

	return clip(lipgloss.JoinVertical(lipgloss.Left, rows...), width)
}
