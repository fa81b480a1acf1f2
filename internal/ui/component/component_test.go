package component_test

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/command"
	"github.com/nextgen-manager/ngm-tui/internal/ui/component"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestToastsNewestFirstAndCapped(t *testing.T) {
	toasts := component.NewToasts(time.Millisecond)

	for _, title := range []string{"one", "two", "three", "four"} {
		var cmd tea.Cmd
		toasts, cmd = toasts.Update(command.ToastMsg{Notice: vyos.Notice{Title: title}})
		require.NotNil(t, cmd)
	}

	notices := toasts.Notices()
	require.Len(t, notices, component.MaxToasts)
	require.Equal(t, []string{"four", "three", "two"},
		[]string{notices[0].Title, notices[1].Title, notices[2].Title})
}

func TestToastExpiry(t *testing.T) {
	toasts := component.NewToasts(time.Millisecond)

	toasts, expire := toasts.Update(command.ToastMsg{Notice: vyos.Notice{Title: "Configuration loaded"}})
	toasts, _ = toasts.Update(command.ToastMsg{Notice: vyos.Notice{Title: "Copied"}})

	msg := expire()
	require.Equal(t, command.ClearToastMsg{ID: 1}, msg)

	toasts, _ = toasts.Update(msg)
	require.Equal(t, []vyos.Notice{{Title: "Copied"}}, toasts.Notices())

	// Clearing an already removed toast is a no-op.
	toasts, _ = toasts.Update(msg)
	require.Len(t, toasts.Notices(), 1)
}

func TestToastView(t *testing.T) {
	toasts := component.NewToasts(time.Second)
	toasts, _ = toasts.Update(command.ToastMsg{Notice: vyos.Notice{
		Title:       "Connection error",
		Description: "Could not connect to the API server. Please check that the backend is running.",
		Destructive: true,
	}})

	view := toasts.View(60)
	require.Contains(t, view, "Connection error")
	require.Contains(t, view, "backend")
	require.Empty(t, component.NewToasts(time.Second).View(60))
}

func TestSidebarKeys(t *testing.T) {
	nav := shell.NewViewState()
	sidebar := component.NewSidebar().Focus(nav)
	require.Equal(t, 0, sidebar.Cursor())

	sidebar, _ = sidebar.Update(tea.KeyMsg{Type: tea.KeyUp}, nav)
	require.Equal(t, 0, sidebar.Cursor())

	sidebar, _ = sidebar.Update(tea.KeyMsg{Type: tea.KeyDown}, nav)
	sidebar, cmd := sidebar.Update(tea.KeyMsg{Type: tea.KeyEnter}, nav)
	require.Equal(t, command.NavigateMsg{Tab: shell.TabInterfaces}, cmd())

	for range 20 {
		sidebar, _ = sidebar.Update(tea.KeyMsg{Type: tea.KeyDown}, nav)
	}
	sidebar, cmd = sidebar.Update(tea.KeyMsg{Type: tea.KeyEnter}, nav)
	require.Equal(t, command.NavigateMsg{Tab: shell.TabAdvanced}, cmd())
}

func TestSidebarServicesGroup(t *testing.T) {
	nav := shell.NewViewState()
	sidebar := component.NewSidebar()

	view := sidebar.View(nav, component.Badge(shell.StatusConnected, ""), 30)
	require.Contains(t, view, "Services")
	require.NotContains(t, view, "DHCP")

	nav = shell.Reduce(nav, shell.ToggleServices{})
	view = sidebar.View(nav, component.Badge(shell.StatusConnected, ""), 30)
	require.Contains(t, view, "DHCP")
	require.Contains(t, view, "HTTPS")

	// Focus lands on the service entry once the group is open.
	nav = shell.Reduce(nav, shell.Navigate{Tab: shell.TabSSH})
	require.Equal(t, 9, sidebar.Focus(nav).Cursor())
}

func TestBadge(t *testing.T) {
	require.Contains(t, component.Badge(shell.StatusConnected, "API error"), "Connected")
	require.NotContains(t, component.Badge(shell.StatusConnected, "API error"), "API error")
	require.Contains(t, component.Badge(shell.StatusDisconnected, "API error"), "Disconnected (API error)")
}

func TestStatusBar(t *testing.T) {
	bar := component.NewStatusBar("v1.0.0")
	view := bar.View(component.StatusInfo{
		Status:   shell.StatusConnected,
		Hostname: "edge-01",
		Fragment: "firewall",
		LoadedAt: time.Now().Add(-2 * time.Minute),
	}, 160)

	require.Contains(t, view, "edge-01")
	require.Contains(t, view, "#firewall")
	require.Contains(t, view, "loaded 2 minutes ago")
	require.Contains(t, view, "v1.0.0")

	require.Contains(t, bar.View(component.StatusInfo{}, 160), "not loaded")
}

func TestLocationPrompt(t *testing.T) {
	prompt := component.NewLocationPrompt()
	require.False(t, prompt.Active())

	prompt, _ = prompt.Open("vpn")
	require.True(t, prompt.Active())
	require.Equal(t, "#vpn", prompt.Value())

	prompt, cmd := prompt.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, prompt.Active())
	require.Equal(t, command.AssignLocationMsg{Fragment: "#vpn"}, cmd())
}
