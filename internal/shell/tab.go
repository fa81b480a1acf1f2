// Package shell holds the view state of the dashboard shell: which section is active, the
// location fragment history that addresses it, and the state of the configuration fetch.
// Everything here is free of rendering concerns so transitions can be tested directly.
package shell

import (
	"strings"

	"golang.org/x/exp/slices"
)

// TabID identifies one top level section. Values outside of Tabs can appear when they arrive
// through a location fragment.
type TabID string

const (
	TabDashboard  TabID = "dashboard"
	TabInterfaces TabID = "interfaces"
	TabFirewall   TabID = "firewall"
	TabNAT        TabID = "nat"
	TabRouting    TabID = "routing"
	TabVPN        TabID = "vpn"
	TabDHCP       TabID = "dhcp"
	TabNTP        TabID = "ntp"
	TabSSH        TabID = "ssh"
	TabHTTPS      TabID = "https"
	TabSystem     TabID = "system"
	TabAdvanced   TabID = "advanced"
)

// DefaultTab is shown when no fragment is provided.
const DefaultTab = TabDashboard

var (
	// Tabs is every known section in sidebar order.
	Tabs = []TabID{
		TabDashboard, TabInterfaces, TabFirewall, TabNAT, TabRouting, TabVPN,
		TabDHCP, TabNTP, TabSSH, TabHTTPS,
		TabSystem, TabAdvanced,
	}
	// ServiceTabs are grouped under the collapsible services entry.
	ServiceTabs = []TabID{TabDHCP, TabNTP, TabSSH, TabHTTPS}
)

func (t TabID) Valid() bool {
	return slices.Contains(Tabs, t)
}

func (t TabID) IsService() bool {
	return slices.Contains(ServiceTabs, t)
}

func (t TabID) String() string {
	return string(t)
}

// Next returns the tab following t in sidebar order, wrapping around. Unknown tabs move to
// the first tab.
func (t TabID) Next() TabID {
	index := slices.Index(Tabs, t)
	if index == -1 || index+1 >= len(Tabs) {
		return Tabs[0]
	}

	return Tabs[index+1]
}

// Prev returns the tab preceding t in sidebar order, wrapping around.
func (t TabID) Prev() TabID {
	index := slices.Index(Tabs, t)
	if index == -1 {
		return Tabs[0]
	}
	if index == 0 {
		return Tabs[len(Tabs)-1]
	}

	return Tabs[index-1]
}

// ParseFragment strips the leading "#" of a location fragment.
func ParseFragment(fragment string) string {
	return strings.TrimPrefix(strings.TrimSpace(fragment), "#")
}
