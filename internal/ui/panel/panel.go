// Package panel renders the read-only section views. A panel only ever sees the configuration
// tree and the space it may occupy, so every panel can be rendered without the rest of the ui.
package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

type Panel interface {
	Title() string
	Render(tree vyos.Tree, width int, height int) string
}

// Registry resolves tabs to their panels.
type Registry struct {
	panels   map[shell.TabID]Panel
	fallback Panel
}

func NewRegistry() *Registry {
	return &Registry{
		panels: map[shell.TabID]Panel{
			shell.TabDashboard:  Dashboard{},
			shell.TabInterfaces: Interfaces{},
			shell.TabFirewall:   Firewall{},
			shell.TabNAT:        NAT{},
			shell.TabRouting:    Routing{},
			shell.TabVPN: Subtree{
				title: "VPN",
				empty: "No VPN tunnels configured",
				sections: []subtreeSection{
					{label: "WireGuard", path: []string{"interfaces", "wireguard"}},
					{label: "OpenVPN", path: []string{"interfaces", "openvpn"}},
					{label: "IPsec", path: []string{"vpn", "ipsec"}},
					{label: "L2TP", path: []string{"vpn", "l2tp"}},
				},
			},
			shell.TabDHCP: Subtree{
				title:    "DHCP Server",
				empty:    "DHCP server is not configured",
				sections: []subtreeSection{{label: "Shared networks", path: []string{"service", "dhcp-server"}}},
			},
			shell.TabNTP: Subtree{
				title:    "NTP",
				empty:    "NTP is not configured",
				sections: []subtreeSection{{label: "Servers", path: []string{"service", "ntp"}}},
			},
			shell.TabSSH: Subtree{
				title:    "SSH",
				empty:    "SSH service is not configured",
				sections: []subtreeSection{{label: "Service", path: []string{"service", "ssh"}}},
			},
			shell.TabHTTPS: Subtree{
				title:    "HTTPS",
				empty:    "HTTPS API service is not configured",
				sections: []subtreeSection{{label: "Service", path: []string{"service", "https"}}},
			},
			shell.TabSystem:   System{},
			shell.TabAdvanced: NewAdvanced(),
		},
		fallback: Blank{},
	}
}

// Lookup returns the panel for tab. Tabs without a panel, such as unknown fragments, get the
// blank panel.
func (r *Registry) Lookup(tab shell.TabID) Panel {
	if found, ok := r.panels[tab]; ok {
		return found
	}

	return r.fallback
}

// Blank renders nothing and is shown for tabs without a panel.
type Blank struct{}

func (Blank) Title() string {
	return ""
}

func (Blank) Render(_ vyos.Tree, _ int, _ int) string {
	return ""
}

func heading(title string, width int) string {
	return styles.PanelTitle.Render(clip(title, width))
}

func emptyMessage(message string, width int) string {
	return styles.InfoMessage.Width(max(width, 0)).Render(message)
}

// clip truncates every line of value to width cells.
func clip(value string, width int) string {
	if width <= 0 {
		return value
	}

	lines := strings.Split(value, "\n")
	for idx, line := range lines {
		if lipgloss.Width(line) > width {
			lines[idx] = truncate.StringWithTail(line, uint(width), "…") //nolint:gosec
		}
	}

	return strings.Join(lines, "\n")
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}

	return value
}
