package ui

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/nextgen-manager/ngm-tui/internal/config"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/command"
	"github.com/nextgen-manager/ngm-tui/internal/ui/component"
	"github.com/nextgen-manager/ngm-tui/internal/ui/model"
	"github.com/nextgen-manager/ngm-tui/internal/ui/pages"
	"github.com/nextgen-manager/ngm-tui/internal/ui/panel"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

type stubFetcher struct {
	url  string
	tree vyos.Tree
	err  error
}

func (s *stubFetcher) BaseURL() string {
	return s.url
}

func (s *stubFetcher) FetchConfig(_ context.Context) (vyos.Tree, error) {
	return s.tree, s.err
}

func sampleTree() vyos.Tree {
	return vyos.Tree{
		"system": map[string]any{"host-name": "edge-01", "time-zone": "Europe/Oslo"},
		"interfaces": map[string]any{
			"ethernet": map[string]any{"eth0": map[string]any{}, "eth1": map[string]any{}},
		},
	}
}

type testHarness struct {
	model   rootModel
	fetcher *stubFetcher
	history *shell.History
	session *shell.Session
	copied  []string
}

func newHarness(t *testing.T, fragment string) *testHarness {
	t.Helper()

	harness := &testHarness{
		fetcher: &stubFetcher{url: config.DefaultAPIURL, tree: sampleTree()},
		history: shell.NewHistory(fragment),
		session: shell.NewSession(),
	}

	factory := func(baseURL string) Fetcher {
		if baseURL == harness.fetcher.url {
			return harness.fetcher
		}

		return &stubFetcher{url: baseURL, tree: vyos.Tree{}}
	}

	// A short toast timeout keeps the expiry ticks from stalling the command loop in send.
	conf := config.Config{APIURL: config.DefaultAPIURL, ToastTimeoutMs: 1}
	harness.model = newRootModel(context.Background(), conf, harness.history, harness.session, factory,
		pages.BuildInfo{Version: "v1.2.3"}, "/tmp/ngm-tui.yaml", "/tmp/ngm-tui.log")
	harness.model.clipboard = func(value string) error {
		harness.copied = append(harness.copied, value)

		return nil
	}

	harness.send(tea.WindowSizeMsg{Width: 140, Height: 40})

	return harness
}

// send applies msg and then every message produced by plain commands it returns.
func (h *testHarness) send(msg tea.Msg) {
	next, cmd := h.model.Update(msg)
	h.model = next.(rootModel)

	for cmd != nil {
		produced := cmd()
		switch produced.(type) {
		case command.NavigateMsg, command.ToggleServicesMsg, command.QuickActionMsg,
			command.AssignLocationMsg, command.ToastMsg, command.ClosePromptMsg:
			next, cmd = h.model.Update(produced)
			h.model = next.(rootModel)
		default:
			return
		}
	}
}

// load completes the initial fetch.
func (h *testHarness) load() {
	h.send(fetchConfig(context.Background(), h.model.client, h.model.seq)())
}

func press(keys string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
}

func TestInitialFetchSuccess(t *testing.T) {
	h := newHarness(t, "")
	require.True(t, h.model.fetch.Loading)
	require.Contains(t, h.model.View(), component.LoadingText)

	h.load()
	require.False(t, h.model.fetch.Loading)
	require.Equal(t, shell.StatusConnected, h.model.fetch.Status())
	require.Equal(t, "edge-01", vyos.Hostname(h.model.fetch.Config))
	require.Equal(t, []vyos.Notice{vyos.SuccessNotice}, h.model.toasts.Notices())

	view := h.model.View()
	require.Contains(t, view, component.SidebarTitle)
	require.Contains(t, view, "edge-01")
}

func TestFetchFailureKeepsConfig(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.fetcher.tree = nil
	h.fetcher.err = &vyos.APIError{Kind: vyos.KindHTTP, StatusCode: 500, Message: "Server error: 500 Internal Server Error"}
	h.send(press("r"))
	require.True(t, h.model.fetch.Loading)

	h.load()
	require.False(t, h.model.fetch.Loading)
	require.Equal(t, shell.StatusDisconnected, h.model.fetch.Status())
	require.Equal(t, "edge-01", vyos.Hostname(h.model.fetch.Config))

	notices := h.model.toasts.Notices()
	require.Equal(t, "Error connecting to VyOS router", notices[0].Title)
	require.Equal(t, "Server error: 500 Internal Server Error", notices[0].Description)
	require.True(t, notices[0].Destructive)
	require.Equal(t, "Connection error", h.model.statusInfo().Reason)
}

func TestOverlappingFetchesLastResultWins(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(press("r"))
	require.True(t, h.model.fetch.Loading)

	// Keys are ignored while loading, a changed API URL still starts a second fetch.
	h.send(press("r"))
	require.Equal(t, 2, h.model.seq)
	h.send(config.Config{APIURL: "http://192.0.2.10:3001", ToastTimeoutMs: 1})
	require.Equal(t, 3, h.model.seq)
	require.Equal(t, 2, h.model.fetch.InFlight)

	second := vyos.Tree{"system": map[string]any{"host-name": "second"}}
	first := vyos.Tree{"system": map[string]any{"host-name": "first"}}
	h.send(command.ConfigResultMsg{Seq: 3, Tree: second})
	h.send(command.ConfigResultMsg{Seq: 2, Tree: first})

	require.False(t, h.model.fetch.Loading)
	require.Equal(t, "first", vyos.Hostname(h.model.fetch.Config))
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	h := newHarness(t, "")
	h.send(press("3"))
	require.Equal(t, shell.TabDashboard, h.model.nav.ActiveTab)

	_, cmd := h.model.Update(press("q"))
	require.NotNil(t, cmd)
}

func TestJumpKeysNavigate(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	for idx, tab := range shell.Tabs {
		h.send(press(strings.Split("1234567890-=", "")[idx]))
		require.Equal(t, tab, h.model.nav.ActiveTab)
		require.Equal(t, tab.String(), h.history.Fragment())
	}

	require.True(t, h.model.nav.ServicesExpanded)
}

func TestTabCycling(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, shell.TabInterfaces, h.model.nav.ActiveTab)

	h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	h.send(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, shell.TabAdvanced, h.model.nav.ActiveTab)
	require.Equal(t, "advanced", h.history.Fragment())
}

func TestSidebarSelection(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	// Dashboard, Interfaces, Firewall, NAT, Routing, VPN, Services
	for range 6 {
		h.send(tea.KeyMsg{Type: tea.KeyDown})
	}
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, h.model.nav.ServicesExpanded)
	require.Equal(t, shell.TabDashboard, h.model.nav.ActiveTab)

	h.send(tea.KeyMsg{Type: tea.KeyDown})
	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, shell.TabDHCP, h.model.nav.ActiveTab)

	h.send(press("s"))
	require.False(t, h.model.nav.ServicesExpanded)
	require.Equal(t, shell.TabDHCP, h.model.nav.ActiveTab)
}

func TestQuickActionHandOff(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(press("a"))
	require.True(t, h.model.nav.QuickActionExpanded)

	h.send(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, h.model.quickCursor)
	h.send(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, shell.TabInterfaces, h.model.nav.ActiveTab)
	require.False(t, h.model.nav.QuickActionExpanded)
	require.Equal(t, "interfaces", h.history.Fragment())
	require.Equal(t, "add-interface", h.model.pendingAction)
	require.Contains(t, h.model.View(), "Pending action: add-interface")

	_, found := h.session.TakePendingAction()
	require.False(t, found)

	// The banner belongs to the panel that consumed it.
	h.send(press("1"))
	require.Empty(t, h.model.pendingAction)
}

func TestFragmentChanges(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(command.FragmentChangedMsg{Fragment: "https"})
	require.Equal(t, shell.TabHTTPS, h.model.nav.ActiveTab)
	require.True(t, h.model.nav.ServicesExpanded)

	h.send(command.FragmentChangedMsg{Fragment: ""})
	require.Equal(t, shell.TabHTTPS, h.model.nav.ActiveTab)

	h.history.Assign("#bogus")
	h.send(command.FragmentChangedMsg{Fragment: "bogus"})
	require.Equal(t, shell.TabID("bogus"), h.model.nav.ActiveTab)
	require.IsType(t, panel.Blank{}, h.model.registry.Lookup(h.model.nav.ActiveTab))
	require.Equal(t, "bogus", h.model.statusInfo().Fragment)
	require.Contains(t, h.model.View(), "#bogus")
}

func TestMountReadsFragment(t *testing.T) {
	h := newHarness(t, "#dhcp")
	require.Equal(t, shell.TabDHCP, h.model.nav.ActiveTab)
	require.True(t, h.model.nav.ServicesExpanded)
}

func TestHistoryKeys(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	changes := make(chan string, 4)
	release := h.history.Subscribe(changes)
	defer release()

	h.send(press("3"))
	h.send(press("4"))
	h.send(press("["))
	require.Equal(t, "firewall", h.history.Fragment())
	require.Equal(t, "firewall", <-changes)

	h.send(press("]"))
	require.Equal(t, "nat", <-changes)
}

func TestLocationPrompt(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(press("g"))
	require.True(t, h.model.prompt.Active())
	require.Equal(t, "#", h.model.prompt.Value())

	// Keys go to the prompt while it is open.
	h.send(press("nat"))
	require.Equal(t, shell.TabDashboard, h.model.nav.ActiveTab)

	h.send(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, h.model.prompt.Active())
	require.Equal(t, "nat", h.history.Fragment())

	h.send(press("g"))
	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, h.model.prompt.Active())
	require.Equal(t, "nat", h.history.Fragment())
}

func TestCopyConfig(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(press("y"))
	require.Len(t, h.copied, 1)
	require.Contains(t, h.copied[0], `"host-name": "edge-01"`)
	require.Equal(t, "Copied", h.model.toasts.Notices()[0].Title)

	h.model.clipboard = func(string) error { return errors.New("no clipboard") }
	h.send(press("y"))
	require.Equal(t, "Copy failed", h.model.toasts.Notices()[0].Title)
	require.True(t, h.model.toasts.Notices()[0].Destructive)
}

func TestConfigChangeSwapsClient(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(config.Config{APIURL: config.DefaultAPIURL})
	require.False(t, h.model.fetch.Loading)

	_, cmd := h.model.Update(config.Config{APIURL: "http://192.0.2.10:3001"})
	require.NotNil(t, cmd)
	next, _ := h.model.Update(config.Config{APIURL: "http://192.0.2.10:3001"})
	h.model = next.(rootModel)
	require.Equal(t, "http://192.0.2.10:3001", h.model.client.BaseURL())
	require.True(t, h.model.fetch.Loading)
}

func TestHelpPage(t *testing.T) {
	h := newHarness(t, "")
	h.load()

	h.send(press("?"))
	require.Equal(t, model.PageHelp, h.model.viewState.Page)
	require.Contains(t, h.model.View(), config.DefaultAPIURL)

	h.send(press("3"))
	require.Equal(t, shell.TabDashboard, h.model.nav.ActiveTab)

	h.send(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, model.PageMain, h.model.viewState.Page)
}

func TestToastsExpire(t *testing.T) {
	h := newHarness(t, "")
	h.load()
	require.Len(t, h.model.toasts.Notices(), 1)

	h.send(command.ClearToastMsg{ID: 1})
	require.Empty(t, h.model.toasts.Notices())
}
