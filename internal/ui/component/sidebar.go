package component

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/command"
	"github.com/nextgen-manager/ngm-tui/internal/ui/input"
	"github.com/nextgen-manager/ngm-tui/internal/ui/model"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"golang.org/x/exp/slices"
)

// SidebarTitle is shown at the top of the navigation column.
const SidebarTitle = "NextGen Manager"

type sidebarEntry struct {
	tab   shell.TabID
	label string
	icon  string
	// group marks the collapsible services row, which has no tab of its own.
	group bool
	child bool
}

var sidebarEntries = []sidebarEntry{
	{tab: shell.TabDashboard, label: "Dashboard", icon: styles.IconDashboard},
	{tab: shell.TabInterfaces, label: "Interfaces", icon: styles.IconInterfaces},
	{tab: shell.TabFirewall, label: "Firewall", icon: styles.IconFirewall},
	{tab: shell.TabNAT, label: "NAT", icon: styles.IconNAT},
	{tab: shell.TabRouting, label: "Routing", icon: styles.IconRouting},
	{tab: shell.TabVPN, label: "VPN", icon: styles.IconVPN},
	{label: "Services", icon: styles.IconServices, group: true},
	{tab: shell.TabDHCP, label: "DHCP", icon: styles.IconDHCP, child: true},
	{tab: shell.TabNTP, label: "NTP", icon: styles.IconNTP, child: true},
	{tab: shell.TabSSH, label: "SSH", icon: styles.IconSSH, child: true},
	{tab: shell.TabHTTPS, label: "HTTPS", icon: styles.IconHTTPS, child: true},
	{tab: shell.TabSystem, label: "System", icon: styles.IconSystem},
	{tab: shell.TabAdvanced, label: "Advanced", icon: styles.IconAdvanced},
}

func visibleEntries(nav shell.ViewState) []sidebarEntry {
	entries := make([]sidebarEntry, 0, len(sidebarEntries))
	for _, entry := range sidebarEntries {
		if entry.child && !nav.ServicesExpanded {
			continue
		}
		entries = append(entries, entry)
	}

	return entries
}

// Sidebar is the navigation column. It never changes the view state itself, selections are
// returned as navigation commands for the root model to apply.
type Sidebar struct {
	id     string
	cursor int
}

func NewSidebar() Sidebar {
	return Sidebar{id: zone.NewPrefix()}
}

func (m Sidebar) Cursor() int {
	return m.cursor
}

// Focus moves the cursor onto the active tab when it is visible.
func (m Sidebar) Focus(nav shell.ViewState) Sidebar {
	index := slices.IndexFunc(visibleEntries(nav), func(entry sidebarEntry) bool {
		return !entry.group && entry.tab == nav.ActiveTab
	})
	if index >= 0 {
		m.cursor = index
	}

	return m
}

func (m Sidebar) Update(msg tea.Msg, nav shell.ViewState) (Sidebar, tea.Cmd) {
	entries := visibleEntries(nav)
	m.cursor = min(m.cursor, len(entries)-1)

	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for idx, entry := range entries {
			if zone.Get(m.id + entry.label).InBounds(msg) {
				m.cursor = idx

				return m, entry.activate()
			}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, input.Default.Down):
			m.cursor = min(m.cursor+1, len(entries)-1)
		case key.Matches(msg, input.Default.Accept):
			return m, entries[m.cursor].activate()
		}
	}

	return m, nil
}

func (e sidebarEntry) activate() tea.Cmd {
	if e.group {
		return command.ToggleServices()
	}

	return command.Navigate(e.tab)
}

func (m Sidebar) View(nav shell.ViewState, badge string, height int) string {
	width := model.SidebarWidth - 1
	rows := []string{
		styles.SidebarTitle.Render(SidebarTitle),
		styles.SidebarItem.Render(badge),
		"",
	}

	for idx, entry := range visibleEntries(nav) {
		rows = append(rows, zone.Mark(m.id+entry.label, m.renderEntry(idx, entry, nav, width)))
	}

	return styles.SidebarStyle.
		Width(width).
		Height(max(height, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Sidebar) renderEntry(idx int, entry sidebarEntry, nav shell.ViewState, width int) string {
	marker := "  "
	if idx == m.cursor {
		marker = styles.SidebarCursor.Render("› ")
	}

	label := entry.icon + " " + entry.label
	if entry.child {
		label = "  " + label
	}

	if entry.group {
		icon := styles.IconCollapsed
		if nav.ServicesExpanded {
			icon = styles.IconExpanded
		}
		label += " " + icon
	} else if hint := jumpHint(entry.tab); hint != "" {
		label = lipgloss.JoinHorizontal(lipgloss.Top, label, styles.Muted.Render(" "+hint))
	}

	var style lipgloss.Style
	switch {
	case !entry.group && entry.tab == nav.ActiveTab:
		style = styles.SidebarActive
	case entry.group && (nav.ServicesExpanded || nav.ActiveTab.IsService()):
		style = styles.SidebarGroupOpen
	default:
		style = styles.SidebarItem
	}

	return marker + style.Width(width-2).Render(label)
}

func jumpHint(tab shell.TabID) string {
	index := slices.Index(shell.Tabs, tab)
	if index < 0 || index >= len(input.Default.Jump) {
		return ""
	}

	return input.Default.Jump[index].Help().Key
}
