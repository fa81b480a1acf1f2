package component

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/command"
	"github.com/nextgen-manager/ngm-tui/internal/ui/input"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
)

// LocationPrompt lets the user type a location fragment directly, the terminal analogue of
// editing the address bar.
type LocationPrompt struct {
	input  textinput.Model
	active bool
}

func NewLocationPrompt() LocationPrompt {
	return LocationPrompt{input: NewTextInputModel("", "#dashboard")}
}

func (m LocationPrompt) Active() bool {
	return m.active
}

func (m LocationPrompt) Value() string {
	return m.input.Value()
}

// Open activates the prompt prefilled with the current fragment.
func (m LocationPrompt) Open(fragment string) (LocationPrompt, tea.Cmd) {
	m.active = true
	m.input.SetValue("#" + fragment)
	m.input.CursorEnd()
	m.input.PromptStyle = styles.PromptLabel
	m.input.TextStyle = styles.PanelValue

	return m, m.input.Focus()
}

func (m LocationPrompt) close() LocationPrompt {
	m.active = false
	m.input.Blur()
	m.input.PromptStyle = styles.NoStyle
	m.input.TextStyle = styles.NoStyle

	return m
}

func (m LocationPrompt) Update(msg tea.Msg) (LocationPrompt, tea.Cmd) {
	if !m.active {
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, input.Default.Accept):
			value := m.input.Value()

			return m.close(), command.AssignLocation(value)
		case key.Matches(keyMsg, input.Default.Back):
			return m.close(), command.ClosePrompt()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m LocationPrompt) View(width int) string {
	if !m.active {
		return ""
	}

	return lipgloss.NewStyle().MaxWidth(max(width, 0)).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, styles.PromptLabel.Render("Go to: "), m.input.View()))
}
