package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Cyan      = lipgloss.Color("#22d3ee")
	CyanDark  = lipgloss.Color("#0891b2")
	Slate900  = lipgloss.Color("#0f172a")
	Slate800  = lipgloss.Color("#1e293b")
	Slate700  = lipgloss.Color("#334155")
	Slate500  = lipgloss.Color("#64748b")
	Slate300  = lipgloss.Color("#cbd5e1")
	White     = lipgloss.Color("#f8fafc")
	Red       = lipgloss.Color("#ef4444")
	Green     = lipgloss.Color("#22c55e")
	Amber     = lipgloss.Color("#f59e0b")
	GrayDark  = lipgloss.Color("#1a2233")
	GrayDarkA = lipgloss.Color("#121a29")

	ContainerBorder      = lipgloss.RoundedBorder()
	ContainerStyle       = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Slate700)
	ContainerStyleActive = lipgloss.NewStyle().Border(ContainerBorder).BorderForeground(Cyan)

	ContentContainerStyle = lipgloss.NewStyle().PaddingLeft(1)
	FooterContainerStyle  = lipgloss.NewStyle().Background(Slate900)

	// Sidebar.
	SidebarStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(Slate700)
	SidebarTitle     = lipgloss.NewStyle().Foreground(Cyan).Bold(true).Padding(0, 1)
	SidebarFooter    = lipgloss.NewStyle().Foreground(Slate500).Padding(0, 1)
	SidebarItem      = lipgloss.NewStyle().Foreground(Slate300).Padding(0, 1)
	SidebarActive    = lipgloss.NewStyle().Foreground(White).Background(CyanDark).Bold(true).Padding(0, 1)
	SidebarGroupOpen = lipgloss.NewStyle().Foreground(Slate300).Background(Slate800).Padding(0, 1)
	SidebarCursor    = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	BadgeConnected    = lipgloss.NewStyle().Foreground(Green).Bold(true)
	BadgeDisconnected = lipgloss.NewStyle().Foreground(Red).Bold(true)

	// Status bar.
	StatusHostname = lipgloss.NewStyle().Foreground(Cyan).PaddingRight(2).PaddingLeft(1).Bold(true)
	StatusFragment = lipgloss.NewStyle().Foreground(Amber).PaddingRight(2)
	StatusLoaded   = lipgloss.NewStyle().Foreground(Slate500).PaddingRight(2)
	StatusHelp     = lipgloss.NewStyle().Foreground(Slate500).Bold(true).PaddingRight(2)
	StatusVersion  = lipgloss.NewStyle().Foreground(Green).Bold(true).PaddingRight(1)

	// Toasts.
	ToastStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Slate700).Padding(0, 1)
	ToastStyleDestructive = ToastStyle.BorderForeground(Red)
	ToastTitle            = lipgloss.NewStyle().Bold(true).Foreground(White)
	ToastTitleDestructive = lipgloss.NewStyle().Bold(true).Foreground(Red)
	ToastDescription      = lipgloss.NewStyle().Foreground(Slate300)

	Banner = lipgloss.NewStyle().Foreground(Slate900).Background(Amber).Bold(true).Padding(0, 1)

	Loading = lipgloss.NewStyle().Foreground(White).Bold(true)
	Spinner = lipgloss.NewStyle().Foreground(Cyan)

	PromptLabel = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	CursorStyle = lipgloss.NewStyle().Foreground(Cyan)
	NoStyle     = lipgloss.NewStyle()

	// Panels.
	PanelTitle   = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	PanelLabel   = lipgloss.NewStyle().Foreground(Slate500).Align(lipgloss.Right).Width(18)
	PanelValue   = lipgloss.NewStyle().Foreground(White)
	CardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Slate700).Padding(0, 1).Width(24)
	CardLabel    = lipgloss.NewStyle().Foreground(Slate500)
	CardValue    = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	InfoMessage  = lipgloss.NewStyle().Foreground(Slate500).Align(lipgloss.Center).Padding(1)
	Muted        = lipgloss.NewStyle().Foreground(Slate500)
	Disabled     = lipgloss.NewStyle().Foreground(Slate500).Strikethrough(true)
	ActionAccept = lipgloss.NewStyle().Foreground(Green)
	ActionDrop   = lipgloss.NewStyle().Foreground(Red)

	TableHeading       = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	TableRowValuesEven = lipgloss.NewStyle().Background(GrayDark)
	TableRowValuesOdd  = lipgloss.NewStyle().Background(GrayDarkA)

	QuickActionItem     = lipgloss.NewStyle().Foreground(Slate300).PaddingLeft(2)
	QuickActionSelected = lipgloss.NewStyle().Foreground(Cyan).Bold(true).PaddingLeft(2)

	HelpBox = lipgloss.NewStyle().Padding(1, 3)

	IconDashboard  = "⌂"
	IconInterfaces = "⇄"
	IconFirewall   = "⛨"
	IconNAT        = "↔"
	IconRouting    = "⤳"
	IconVPN        = "◍"
	IconServices   = "▤"
	IconDHCP       = "⛁"
	IconNTP        = "◷"
	IconSSH        = "›_"
	IconHTTPS      = "◍"
	IconSystem     = "⚙"
	IconAdvanced   = "≋"
	IconExpanded   = "▾"
	IconCollapsed  = "▸"
	IconConnected  = "●"
	IconCheck      = "✓"
)

// DetailRow renders a right aligned label next to its value.
func DetailRow(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelLabel.Render(label+" "),
		PanelValue.Render(value))
}

// WrapX will wrap a centered string with the supplied character up to the length specified.
func WrapX(width int, value string, character string) string {
	all := max(width-lipgloss.Width(value), 0)

	return strings.Repeat(character, all/2) + value + strings.Repeat(character, all-all/2)
}

// TitleBorder embeds a title into the top edge of the border.
func TitleBorder(border lipgloss.Border, width int, title string) lipgloss.Border {
	border.Top = WrapX(width, "┤"+title+"├", border.Top)

	return border
}
