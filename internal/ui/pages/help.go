package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/input"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
)

type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func NewHelp(build BuildInfo, configPath string, logPath string) Help {
	return Help{
		helpView:   help.New(),
		build:      build,
		configPath: configPath,
		logPath:    logPath,
	}
}

type Help struct {
	helpView   help.Model
	build      BuildInfo
	configPath string
	logPath    string
}

func (m Help) View(apiURL string, width int, height int) string {
	left := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.NextTab,
			input.Default.PrevTab,
			input.Default.Up,
			input.Default.Down,
			input.Default.Accept,
			input.Default.PageUp,
			input.Default.PageDown,
		},
	})

	middle := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Services,
			input.Default.QuickActions,
			input.Default.Location,
			input.Default.HistoryBack,
			input.Default.HistoryFwd,
			jumpSummary(),
		},
	})

	right := m.helpView.FullHelpView([][]key.Binding{
		{
			input.Default.Refresh,
			input.Default.Copy,
			input.Default.Help,
			input.Default.Back,
			input.Default.Quit,
		},
	})

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.HelpBox.Render(left), styles.HelpBox.Render(middle), styles.HelpBox.Render(right))

	commit := m.build.Commit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.build.Commit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.DetailRow("Version", m.build.Version),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.build.Date),
		styles.DetailRow("API URL", apiURL),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Log Path", m.logPath),
	)

	return lipgloss.Place(max(width, 0), max(height, 0), lipgloss.Center, lipgloss.Center, content)
}

// jumpSummary collapses the per tab jump keys into a single help row.
func jumpSummary() key.Binding {
	first := input.Default.Jump[0].Help().Key
	last := input.Default.Jump[len(input.Default.Jump)-1].Help().Key

	return key.NewBinding(key.WithKeys(first), key.WithHelp(first+"…"+last, "Jump to section"))
}
