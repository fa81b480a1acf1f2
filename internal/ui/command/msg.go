package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nextgen-manager/ngm-tui/internal/config"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

// NavigateMsg asks the shell to activate a tab, pushing it onto the location history.
type NavigateMsg struct {
	Tab shell.TabID
}

func Navigate(tab shell.TabID) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Tab: tab} }
}

type ToggleServicesMsg struct{}

func ToggleServices() tea.Cmd {
	return func() tea.Msg { return ToggleServicesMsg{} }
}

// QuickActionMsg activates Tab and leaves Action for the panel that becomes active.
type QuickActionMsg struct {
	Tab    shell.TabID
	Action string
}

func QuickAction(tab shell.TabID, action string) tea.Cmd {
	return func() tea.Msg { return QuickActionMsg{Tab: tab, Action: action} }
}

// FragmentChangedMsg is delivered when the location fragment changes outside of a
// navigation, e.g. moving through history or editing the location.
type FragmentChangedMsg struct {
	Fragment string
}

func FragmentChanged(fragment string) tea.Cmd {
	return func() tea.Msg { return FragmentChangedMsg{Fragment: fragment} }
}

// AssignLocationMsg is sent by the location prompt once the user confirms a fragment.
type AssignLocationMsg struct {
	Fragment string
}

func AssignLocation(fragment string) tea.Cmd {
	return func() tea.Msg { return AssignLocationMsg{Fragment: fragment} }
}

type ClosePromptMsg struct{}

func ClosePrompt() tea.Cmd {
	return func() tea.Msg { return ClosePromptMsg{} }
}

// ConfigResultMsg carries the outcome of one configuration fetch.
type ConfigResultMsg struct {
	Seq  int
	Tree vyos.Tree
	Err  error
}

func SetConfig(conf config.Config) tea.Cmd {
	return func() tea.Msg { return conf }
}

// ToastMsg queues a notification.
type ToastMsg struct {
	Notice vyos.Notice
}

func Toast(notice vyos.Notice) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Notice: notice} }
}

// ClearToastMsg removes the toast with the matching ID, if it is still visible.
type ClearToastMsg struct {
	ID int
}

func ClearToastAfter(id int, timeout time.Duration) tea.Cmd {
	return tea.Tick(timeout, func(_ time.Time) tea.Msg {
		return ClearToastMsg{ID: id}
	})
}
