package component

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/nextgen-manager/ngm-tui/internal/ui/command"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

// MaxToasts is the number of notifications kept on screen, oldest are dropped first.
const MaxToasts = 3

const maxToastWidth = 52

type toast struct {
	id     int
	notice vyos.Notice
}

// Toasts is a short lived notification stack with the newest entry first.
type Toasts struct {
	items   []toast
	nextID  int
	timeout time.Duration
}

func NewToasts(timeout time.Duration) Toasts {
	return Toasts{timeout: timeout}
}

func (m Toasts) Update(msg tea.Msg) (Toasts, tea.Cmd) {
	switch msg := msg.(type) {
	case command.ToastMsg:
		m.nextID++
		items := append([]toast{{id: m.nextID, notice: msg.Notice}}, m.items...)
		if len(items) > MaxToasts {
			items = items[:MaxToasts]
		}
		m.items = items

		return m, command.ClearToastAfter(m.nextID, m.timeout)
	case command.ClearToastMsg:
		items := make([]toast, 0, len(m.items))
		for _, item := range m.items {
			if item.id != msg.ID {
				items = append(items, item)
			}
		}
		m.items = items
	}

	return m, nil
}

func (m Toasts) SetTimeout(timeout time.Duration) Toasts {
	m.timeout = timeout

	return m
}

// Notices returns the visible notifications, newest first.
func (m Toasts) Notices() []vyos.Notice {
	notices := make([]vyos.Notice, len(m.items))
	for idx, item := range m.items {
		notices[idx] = item.notice
	}

	return notices
}

func (m Toasts) View(width int) string {
	if len(m.items) == 0 || width <= 4 {
		return ""
	}

	boxWidth := min(width, maxToastWidth) - 4
	rows := make([]string, len(m.items))
	for idx, item := range m.items {
		box := styles.ToastStyle
		title := styles.ToastTitle
		if item.notice.Destructive {
			box = styles.ToastStyleDestructive
			title = styles.ToastTitleDestructive
		}

		rows[idx] = box.Width(boxWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			title.Render(item.notice.Title),
			styles.ToastDescription.Render(wordwrap.String(item.notice.Description, boxWidth-2))))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, rows...))
}
