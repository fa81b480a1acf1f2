package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/nextgen-manager/ngm-tui/internal/config"
	"github.com/nextgen-manager/ngm-tui/internal/network/encoding"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/command"
	"github.com/nextgen-manager/ngm-tui/internal/ui/component"
	"github.com/nextgen-manager/ngm-tui/internal/ui/input"
	"github.com/nextgen-manager/ngm-tui/internal/ui/model"
	"github.com/nextgen-manager/ngm-tui/internal/ui/pages"
	"github.com/nextgen-manager/ngm-tui/internal/ui/panel"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

// Fetcher loads the configuration tree from the backend.
type Fetcher interface {
	BaseURL() string
	FetchConfig(ctx context.Context) (vyos.Tree, error)
}

// ClientFactory builds a Fetcher for a backend base URL. It is called again whenever the
// configured URL changes.
type ClientFactory func(baseURL string) Fetcher

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	ctx           context.Context
	viewState     model.ViewState
	nav           shell.ViewState
	fetch         shell.FetchState
	seq           int
	client        Fetcher
	newClient     ClientFactory
	history       *shell.History
	session       *shell.Session
	registry      *panel.Registry
	sidebar       component.Sidebar
	statusBar     component.StatusBar
	toasts        component.Toasts
	loading       component.Loading
	prompt        component.LocationPrompt
	help          pages.Help
	content       viewport.Model
	quickCursor   int
	pendingAction string
	clipboard     func(string) error
	now           func() time.Time
}

func newRootModel(ctx context.Context, conf config.Config, history *shell.History, session *shell.Session,
	newClient ClientFactory, build pages.BuildInfo, configPath string, logPath string,
) rootModel {
	nav := shell.Mount(history)

	m := rootModel{
		ctx:       ctx,
		viewState: model.ViewState{Page: model.PageMain, Footer: 1},
		nav:       nav,
		fetch:     shell.NewFetchState().Begin(),
		seq:       1,
		client:    newClient(conf.APIURL),
		newClient: newClient,
		history:   history,
		session:   session,
		registry:  panel.NewRegistry(),
		sidebar:   component.NewSidebar().Focus(nav),
		statusBar: component.NewStatusBar(build.Version),
		toasts:    component.NewToasts(conf.ToastTimeout()),
		loading:   component.NewLoading(),
		prompt:    component.NewLocationPrompt(),
		help:      pages.NewHelp(build, configPath, logPath),
		content:   viewport.New(0, 0),
		clipboard: clipboard.WriteAll,
		now:       time.Now,
	}

	if action, found := session.TakePendingAction(); found {
		m.pendingAction = action
	}

	return m
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("ngm-tui"),
		m.loading.Init(),
		fetchConfig(m.ctx, m.client, m.seq),
	)
}

// fetchConfig runs a single request. Results are never discarded by sequence, whichever
// arrives last is applied last.
func fetchConfig(ctx context.Context, client Fetcher, seq int) tea.Cmd {
	return func() tea.Msg {
		slog.Debug("Fetching configuration", slog.Int("seq", seq), slog.String("url", client.BaseURL()))
		tree, err := client.FetchConfig(ctx)

		return command.ConfigResultMsg{Seq: seq, Tree: tree, Err: err}
	}
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	if tick, ok := inMsg.(spinner.TickMsg); ok {
		// The spinner chain ends once nothing is loading.
		if !m.fetch.Loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(tick)

		return m, cmd
	}

	next, cmd := m.update(inMsg)

	return next.syncContent(), cmd
}

func (m rootModel) update(inMsg tea.Msg) (rootModel, tea.Cmd) {
	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Width = msg.Width
		m.viewState.Height = msg.Height
		m.viewState.Content = max(msg.Height-m.viewState.Footer, 0)

		return m, nil
	case tea.KeyMsg:
		return m.onKey(msg)
	case tea.MouseMsg:
		if m.fetch.Loading || m.viewState.Page != model.PageMain {
			return m, nil
		}

		var cmds [2]tea.Cmd
		m.sidebar, cmds[0] = m.sidebar.Update(msg, m.nav)
		m.content, cmds[1] = m.content.Update(msg)

		return m, tea.Batch(cmds[:]...)
	case command.NavigateMsg:
		return m.navigate(msg.Tab), nil
	case command.ToggleServicesMsg:
		m.nav = shell.Reduce(m.nav, shell.ToggleServices{})

		return m, nil
	case command.QuickActionMsg:
		m.session.SetPendingAction(msg.Action)
		previous := m.nav.ActiveTab
		m.nav = shell.Reduce(m.nav, shell.QuickAction{Tab: msg.Tab, Action: msg.Action})
		m.history.Push(msg.Tab.String())

		return m.activated(previous), nil
	case command.FragmentChangedMsg:
		previous := m.nav.ActiveTab
		m.nav = shell.Reduce(m.nav, shell.FragmentChanged{Fragment: msg.Fragment})

		return m.activated(previous), nil
	case command.AssignLocationMsg:
		// Subscribers, including this model via the app, are told about the new fragment.
		if fragment := shell.ParseFragment(msg.Fragment); fragment != "" {
			m.history.Assign(fragment)
		}

		return m, nil
	case command.ClosePromptMsg:
		return m, nil
	case command.ConfigResultMsg:
		return m.onConfigResult(msg)
	case command.ToastMsg, command.ClearToastMsg:
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)

		return m, cmd
	case config.Config:
		return m.onConfigChange(msg)
	}

	return m, nil
}

func (m rootModel) onKey(msg tea.KeyMsg) (rootModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.prompt.Active() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)

		return m, cmd
	}

	if m.fetch.Loading {
		if key.Matches(msg, input.Default.Quit) {
			return m, tea.Quit
		}

		return m, nil
	}

	if m.viewState.Page == model.PageHelp {
		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help), key.Matches(msg, input.Default.Back):
			m.viewState.Page = model.PageMain
		}

		return m, nil
	}

	switch {
	case key.Matches(msg, input.Default.Quit):
		return m, tea.Quit
	case key.Matches(msg, input.Default.Help):
		m.viewState.Page = model.PageHelp
	case key.Matches(msg, input.Default.Refresh):
		return m.refresh()
	case key.Matches(msg, input.Default.Copy):
		return m, m.copyConfig()
	case key.Matches(msg, input.Default.Location):
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Open(m.history.Fragment())

		return m, cmd
	case key.Matches(msg, input.Default.Services):
		return m, command.ToggleServices()
	case key.Matches(msg, input.Default.QuickActions):
		m.nav = shell.Reduce(m.nav, shell.ToggleQuickActions{})
		m.quickCursor = 0
	case key.Matches(msg, input.Default.NextTab):
		return m, command.Navigate(m.nav.ActiveTab.Next())
	case key.Matches(msg, input.Default.PrevTab):
		return m, command.Navigate(m.nav.ActiveTab.Prev())
	case key.Matches(msg, input.Default.HistoryBack):
		m.history.Back()
	case key.Matches(msg, input.Default.HistoryFwd):
		m.history.Forward()
	case key.Matches(msg, input.Default.PageUp), key.Matches(msg, input.Default.PageDown):
		var cmd tea.Cmd
		m.content, cmd = m.content.Update(msg)

		return m, cmd
	default:
		for idx, binding := range input.Default.Jump {
			if key.Matches(msg, binding) && idx < len(shell.Tabs) {
				return m, command.Navigate(shell.Tabs[idx])
			}
		}

		if m.quickMenuActive() {
			return m.onQuickMenuKey(msg)
		}

		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg, m.nav)

		return m, cmd
	}

	return m, nil
}

// quickMenuActive reports whether up, down and enter drive the quick action menu rather
// than the sidebar.
func (m rootModel) quickMenuActive() bool {
	return m.nav.QuickActionExpanded && m.nav.ActiveTab == shell.TabDashboard
}

func (m rootModel) onQuickMenuKey(msg tea.KeyMsg) (rootModel, tea.Cmd) {
	switch {
	case key.Matches(msg, input.Default.Up):
		m.quickCursor = max(m.quickCursor-1, 0)
	case key.Matches(msg, input.Default.Down):
		m.quickCursor = min(m.quickCursor+1, len(panel.QuickActions)-1)
	case key.Matches(msg, input.Default.Accept):
		item := panel.QuickActions[m.quickCursor]

		return m, command.QuickAction(item.Tab, item.Action)
	case key.Matches(msg, input.Default.Back):
		m.nav = shell.Reduce(m.nav, shell.ToggleQuickActions{})
	}

	return m, nil
}

func (m rootModel) navigate(tab shell.TabID) rootModel {
	previous := m.nav.ActiveTab
	m.nav = shell.NavigateToTab(m.nav, m.history, tab)

	return m.activated(previous)
}

// activated runs after every transition that may have changed the active tab. The newly
// active panel takes any pending action left by a quick action.
func (m rootModel) activated(previous shell.TabID) rootModel {
	if action, found := m.session.TakePendingAction(); found {
		m.pendingAction = action
	} else if previous != m.nav.ActiveTab {
		m.pendingAction = ""
	}

	if previous != m.nav.ActiveTab {
		m.content.GotoTop()
		m.sidebar = m.sidebar.Focus(m.nav)
	}

	return m
}

func (m rootModel) refresh() (rootModel, tea.Cmd) {
	m.fetch = m.fetch.Begin()
	m.seq++

	return m, tea.Batch(m.loading.Init(), fetchConfig(m.ctx, m.client, m.seq))
}

func (m rootModel) onConfigResult(msg command.ConfigResultMsg) (rootModel, tea.Cmd) {
	m.fetch = m.fetch.Complete(msg.Tree, msg.Err, m.now())

	notice := vyos.SuccessNotice
	if msg.Err != nil {
		slog.Error("Failed to fetch configuration", slog.Int("seq", msg.Seq), slog.String("error", msg.Err.Error()))
		notice = vyos.NoticeFor(msg.Err)
	} else {
		slog.Info("Configuration loaded", slog.Int("seq", msg.Seq),
			slog.String("hostname", vyos.Hostname(m.fetch.Config)))
	}

	var cmd tea.Cmd
	m.toasts, cmd = m.toasts.Update(command.ToastMsg{Notice: notice})

	return m, cmd
}

// onConfigChange applies a reloaded config file. A new API URL replaces the client and
// triggers a fresh fetch.
func (m rootModel) onConfigChange(conf config.Config) (rootModel, tea.Cmd) {
	m.toasts = m.toasts.SetTimeout(conf.ToastTimeout())

	if conf.APIURL == "" || conf.APIURL == m.client.BaseURL() {
		return m, nil
	}

	slog.Info("API URL changed", slog.String("from", m.client.BaseURL()), slog.String("to", conf.APIURL))
	m.client = m.newClient(conf.APIURL)

	var cmd tea.Cmd
	m, cmd = m.refresh()

	return m, tea.Batch(cmd, command.Toast(vyos.Notice{Title: "API URL changed", Description: conf.APIURL}))
}

func (m rootModel) copyConfig() tea.Cmd {
	document, errEncode := encoding.MarshalIndent(m.fetch.Config)
	if errEncode != nil {
		return command.Toast(vyos.Notice{Title: "Copy failed", Description: errEncode.Error(), Destructive: true})
	}

	if err := m.clipboard(document); err != nil {
		slog.Error("Failed to copy configuration", slog.String("error", err.Error()))

		return command.Toast(vyos.Notice{Title: "Copy failed", Description: err.Error(), Destructive: true})
	}

	return command.Toast(vyos.Notice{Title: "Copied", Description: "Configuration JSON copied to the clipboard"})
}

// syncContent renders the active panel into the content viewport. It runs after every update
// so scrolling always works on current content.
func (m rootModel) syncContent() rootModel {
	if !m.viewState.Initialized() {
		return m
	}

	width := max(m.viewState.ContentWidth()-styles.ContentContainerStyle.GetHorizontalFrameSize(), 0)
	chrome := 0
	if toasts := m.toasts.View(width); toasts != "" {
		chrome += lipgloss.Height(toasts)
	}
	if banner := m.banner(width); banner != "" {
		chrome += lipgloss.Height(banner)
	}
	height := max(m.viewState.Content-chrome-m.promptHeight(), 1)

	body := m.registry.Lookup(m.nav.ActiveTab).Render(m.fetch.Config, width, height)
	if m.nav.ActiveTab == shell.TabDashboard {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", panel.QuickMenu(m.nav.QuickActionExpanded, m.quickCursor, width))
	}

	m.content.Width = width
	m.content.Height = height
	m.content.SetContent(body)

	return m
}

func (m rootModel) promptHeight() int {
	if m.prompt.Active() {
		return 1
	}

	return 0
}

func (m rootModel) banner(width int) string {
	if m.pendingAction == "" {
		return ""
	}

	return styles.Banner.MaxWidth(max(width, 0)).Render("Pending action: " + m.pendingAction)
}

func (m rootModel) statusInfo() component.StatusInfo {
	reason := ""
	if m.fetch.Err != nil {
		reason = vyos.StatusLabel(m.fetch.Err)
	}

	return component.StatusInfo{
		Status:   m.fetch.Status(),
		Reason:   reason,
		Hostname: vyos.Hostname(m.fetch.Config),
		Fragment: m.history.Fragment(),
		LoadedAt: m.fetch.LoadedAt,
		Loading:  m.fetch.Loading,
	}
}

func (m rootModel) View() string {
	if !m.viewState.Initialized() {
		return ""
	}

	if m.fetch.Loading {
		return m.loading.View(m.viewState.Width, m.viewState.Height)
	}

	info := m.statusInfo()
	footer := styles.FooterContainerStyle.
		Width(m.viewState.Width).
		Render(m.statusBar.View(info, m.viewState.Width))
	if m.prompt.Active() {
		footer = lipgloss.JoinVertical(lipgloss.Left, m.prompt.View(m.viewState.Width), footer)
	}

	contentHeight := m.viewState.Content - m.promptHeight()

	var content string
	switch m.viewState.Page {
	case model.PageHelp:
		content = m.help.View(m.client.BaseURL(), m.viewState.Width, contentHeight)
	case model.PageMain:
		width := m.content.Width
		parts := make([]string, 0, 3)
		if toasts := m.toasts.View(width); toasts != "" {
			parts = append(parts, toasts)
		}
		if banner := m.banner(width); banner != "" {
			parts = append(parts, banner)
		}
		parts = append(parts, m.content.View())

		main := styles.ContentContainerStyle.
			Width(m.viewState.ContentWidth()).
			Height(contentHeight).
			Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

		content = lipgloss.JoinHorizontal(lipgloss.Top,
			m.sidebar.View(m.nav, component.Badge(info.Status, info.Reason), contentHeight),
			main)
	}

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, content, footer))
}

// logMsg is useful for debugging events. Tail the log file ~/.config/ngm-tui/ngm-tui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case spinner.TickMsg:
	case tea.MouseMsg:
		break
	case command.ConfigResultMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
