package component

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/input"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
)

// StatusInfo is everything the footer shows about the current session.
type StatusInfo struct {
	Status   shell.ConnectionStatus
	Reason   string
	Hostname string
	Fragment string
	LoadedAt time.Time
	Loading  bool
}

type StatusBar struct {
	version string
}

func NewStatusBar(version string) StatusBar {
	return StatusBar{version: version}
}

func (m StatusBar) View(info StatusInfo, width int) string {
	args := []string{
		Badge(info.Status, info.Reason),
		styles.StatusHostname.Render(info.Hostname),
		styles.StatusFragment.Render("#" + info.Fragment),
		styles.StatusLoaded.Render(loadedLabel(info)),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
	}

	left := lipgloss.JoinHorizontal(lipgloss.Top, args...)
	version := styles.StatusVersion.Render(m.version)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(version), 1)

	return lipgloss.NewStyle().
		MaxWidth(max(width, 0)).
		Render(left + lipgloss.NewStyle().Width(gap).Render("") + version)
}

func loadedLabel(info StatusInfo) string {
	switch {
	case info.Loading:
		return "loading…"
	case info.LoadedAt.IsZero():
		return "not loaded"
	default:
		return "loaded " + humanize.Time(info.LoadedAt)
	}
}

// Badge is the connection indicator. The reason is only shown while disconnected.
func Badge(status shell.ConnectionStatus, reason string) string {
	if status == shell.StatusConnected {
		return styles.BadgeConnected.PaddingLeft(1).Render(styles.IconConnected + " Connected")
	}

	label := styles.IconConnected + " Disconnected"
	if reason != "" {
		label += " (" + reason + ")"
	}

	return styles.BadgeDisconnected.PaddingLeft(1).Render(label)
}
