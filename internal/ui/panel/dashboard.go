package panel

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/model"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

// QuickActionItem is one shortcut offered on the dashboard. Action is left for the target
// panel to pick up once it becomes active.
type QuickActionItem struct {
	Label  string
	Tab    shell.TabID
	Action string
}

var QuickActions = []QuickActionItem{
	{Label: "Add firewall rule", Tab: shell.TabFirewall, Action: "add-rule"},
	{Label: "Configure interface", Tab: shell.TabInterfaces, Action: "add-interface"},
	{Label: "Add static route", Tab: shell.TabRouting, Action: "add-route"},
	{Label: "Add NAT rule", Tab: shell.TabNAT, Action: "add-nat-rule"},
	{Label: "Add DHCP mapping", Tab: shell.TabDHCP, Action: "add-static-mapping"},
	{Label: "System settings", Tab: shell.TabSystem},
}

type Dashboard struct{}

func (Dashboard) Title() string {
	return "Dashboard"
}

func (Dashboard) Render(tree vyos.Tree, width int, _ int) string {
	info := vyos.SystemInfo(tree)

	cards := []string{
		card("Hostname", info.Hostname),
		card("Interfaces", strconv.Itoa(info.InterfaceCount)),
		card("Firewall rules", strconv.Itoa(info.FirewallRuleCount)),
		card("Time zone", info.TimeZone),
	}

	// Two cards per row once the terminal gets narrow.
	cardWidth := lipgloss.Width(cards[0])
	var rows []string
	if width >= cardWidth*len(cards) {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	} else {
		rows = append(rows,
			lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1]),
			lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3]))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		append([]string{heading("System overview", width), ""}, rows...)...)
}

func card(label string, value string) string {
	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.CardLabel.Render(label),
		styles.CardValue.Render(clip(value, styles.CardStyle.GetWidth()-2))))
}

// QuickMenu renders the quick action list shown under the dashboard. Only the toggle hint is
// shown while the menu is collapsed.
func QuickMenu(expanded bool, cursor int, width int) string {
	if !expanded {
		return styles.Muted.Render(clip("Quick actions: press a to expand", width))
	}

	var rows []string
	for idx, item := range QuickActions {
		if idx == cursor {
			rows = append(rows, styles.QuickActionSelected.Render("› "+item.Label))
		} else {
			rows = append(rows, styles.QuickActionItem.Render("  "+item.Label))
		}
	}

	frame := model.Frame{Title: styles.IconExpanded + " Quick actions", Width: min(width-2, 40), Rows: len(rows), Active: true}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
