package component

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
)

const LoadingText = "Loading VyOS configuration..."

// Loading is the full screen shown while a configuration fetch is in flight.
type Loading struct {
	spinner spinner.Model
}

func NewLoading() Loading {
	return Loading{spinner: spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(styles.Spinner))}
}

func (m Loading) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Loading) Update(msg tea.Msg) (Loading, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tick)

		return m, cmd
	}

	return m, nil
}

func (m Loading) View(width int, height int) string {
	content := lipgloss.JoinHorizontal(lipgloss.Top, m.spinner.View(), " ", styles.Loading.Render(LoadingText))

	return lipgloss.Place(max(width, 0), max(height, 0), lipgloss.Center, lipgloss.Center, content)
}
