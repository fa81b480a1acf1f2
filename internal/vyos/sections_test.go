package vyos_test

import (
	"testing"

	"github.com/nextgen-manager/ngm-tui/internal/vyos"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `{
	"interfaces": {
		"ethernet": {
			"eth1": {"address": ["192.168.1.1/24", "fd00::1/64"], "description": "LAN"},
			"eth0": {"address": "dhcp", "description": "WAN"}
		},
		"loopback": {"lo": {}},
		"wireguard": {"wg0": {"address": "10.8.0.1/24", "disable": {}}}
	},
	"firewall": {
		"name": {
			"WAN_IN": {
				"default-action": "drop",
				"rule": {
					"20": {"action": "drop", "state": {"invalid": "enable"}},
					"10": {"action": "accept", "protocol": "tcp", "destination": {"port": "22"}, "source": {"address": "10.0.0.0/8"}},
					"100": {"action": "accept", "source": {"group": {"network-group": "TRUSTED"}}, "disable": {}}
				}
			}
		}
	},
	"nat": {
		"source": {
			"rule": {
				"100": {"outbound-interface": {"name": "eth0"}, "source": {"address": "192.168.1.0/24"}, "translation": {"address": "masquerade"}}
			}
		}
	},
	"protocols": {
		"static": {
			"route": {"0.0.0.0/0": {"next-hop": {"203.0.113.1": {}}}, "10.99.0.0/16": {"blackhole": {}}},
			"route6": {"::/0": {"interface": {"wg0": {}}}}
		}
	},
	"system": {"login": {"user": {"vyos": {}, "admin": {}}}}
}`

func TestInterfaces(t *testing.T) {
	ifaces := vyos.Interfaces(mustTree(t, sampleConfig))
	require.Len(t, ifaces, 4)
	require.Equal(t, vyos.Interface{
		Type: "ethernet", Name: "eth0", Addresses: []string{"dhcp"}, Description: "WAN",
	}, ifaces[0])
	require.Equal(t, []string{"192.168.1.1/24", "fd00::1/64"}, ifaces[1].Addresses)
	require.Equal(t, "lo", ifaces[2].Name)
	require.True(t, ifaces[3].Disabled)
}

func TestFirewallRuleSets(t *testing.T) {
	sets := vyos.FirewallRuleSets(mustTree(t, sampleConfig))
	require.Len(t, sets, 1)
	require.Equal(t, "drop", sets[0].DefaultAction)

	rules := sets[0].Rules
	require.Len(t, rules, 3)
	require.Equal(t, []string{"10", "20", "100"}, []string{rules[0].Number, rules[1].Number, rules[2].Number})
	require.Equal(t, "10.0.0.0/8", rules[0].Source)
	require.Equal(t, "*:22", rules[0].Destination)
	require.Equal(t, "@TRUSTED", rules[2].Source)
	require.True(t, rules[2].Disabled)
}

func TestNATRules(t *testing.T) {
	rules := vyos.NATRules(mustTree(t, sampleConfig), "source")
	require.Len(t, rules, 1)
	require.Equal(t, "eth0", rules[0].Interface)
	require.Equal(t, "masquerade", rules[0].Translation)
	require.Empty(t, vyos.NATRules(mustTree(t, sampleConfig), "destination"))
}

func TestStaticRoutes(t *testing.T) {
	routes := vyos.StaticRoutes(mustTree(t, sampleConfig))
	require.Len(t, routes, 3)
	require.Equal(t, []string{"203.0.113.1"}, routes[0].NextHops)
	require.True(t, routes[1].Blackhole)
	require.Equal(t, []string{"wg0"}, routes[2].Interface)
}

func TestLoginUsers(t *testing.T) {
	require.Equal(t, []string{"admin", "vyos"}, vyos.LoginUsers(mustTree(t, sampleConfig)))
}

func TestTreeStrings(t *testing.T) {
	tree := mustTree(t, `{"a": {"b": "x", "c": ["y", 1], "d": {"k2": {}, "k1": {}}, "n": 3}}`)
	require.Equal(t, []string{"x"}, tree.Strings("a", "b"))
	require.Equal(t, []string{"y", "1"}, tree.Strings("a", "c"))
	require.Equal(t, []string{"k1", "k2"}, tree.Strings("a", "d"))
	require.Nil(t, tree.Strings("a", "missing"))

	value, ok := tree.String("a", "n")
	require.True(t, ok)
	require.Equal(t, "3", value)
	require.Nil(t, tree.Node("a", "b"))
}
