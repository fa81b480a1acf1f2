package vyos

const (
	DefaultHostname = "VyOS Router"
	DefaultTimeZone = "UTC"
)

// Info is the set of summary values shown on the dashboard and status bar.
type Info struct {
	Hostname          string
	TimeZone          string
	InterfaceCount    int
	FirewallRuleCount int
}

// SystemInfo derives the summary values. It is cheap and recomputed on every render.
func SystemInfo(tree Tree) Info {
	return Info{
		Hostname:          Hostname(tree),
		TimeZone:          TimeZone(tree),
		InterfaceCount:    InterfaceCount(tree),
		FirewallRuleCount: FirewallRuleCount(tree),
	}
}

func Hostname(tree Tree) string {
	if name, found := tree.String("system", "host-name"); found && name != "" {
		return name
	}

	return DefaultHostname
}

func TimeZone(tree Tree) string {
	if zone, found := tree.String("system", "time-zone"); found && zone != "" {
		return zone
	}

	return DefaultTimeZone
}

// InterfaceCount sums the named interfaces of every interface type grouping (ethernet, loopback,
// wireguard...). Groupings that are not objects contribute nothing.
func InterfaceCount(tree Tree) int {
	count := 0
	for _, grouping := range tree.Node("interfaces") {
		count += countEntries(grouping)
	}

	return count
}

// FirewallRuleCount sums the rules of every named firewall rule-set.
func FirewallRuleCount(tree Tree) int {
	count := 0
	for _, ruleSet := range tree.Node("firewall", "name") {
		node, ok := asTree(ruleSet)
		if !ok {
			continue
		}
		count += countEntries(node["rule"])
	}

	return count
}
