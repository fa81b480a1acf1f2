package vyos

import "strings"

// Interface is a flattened entry from the interfaces section.
type Interface struct {
	Type        string
	Name        string
	Addresses   []string
	Description string
	Disabled    bool
}

func Interfaces(tree Tree) []Interface {
	var out []Interface

	groups := tree.Node("interfaces")
	for _, ifaceType := range groups.Keys() {
		members := groups.Node(ifaceType)
		for _, name := range members.Keys() {
			iface := members.Node(name)
			description, _ := iface.String("description")
			out = append(out, Interface{
				Type:        ifaceType,
				Name:        name,
				Addresses:   iface.Strings("address"),
				Description: description,
				Disabled:    iface.Has("disable"),
			})
		}
	}

	return out
}

// Rule is a single firewall or NAT rule reduced to the fields shown in tables.
type Rule struct {
	Number      string
	Action      string
	Protocol    string
	Source      string
	Destination string
	Interface   string
	Translation string
	Description string
	Disabled    bool
}

// RuleSet is a named firewall rule-set.
type RuleSet struct {
	Name          string
	DefaultAction string
	Rules         []Rule
}

func FirewallRuleSets(tree Tree) []RuleSet {
	var out []RuleSet

	names := tree.Node("firewall", "name")
	for _, name := range names.Keys() {
		ruleSet := names.Node(name)
		defaultAction, _ := ruleSet.String("default-action")
		out = append(out, RuleSet{
			Name:          name,
			DefaultAction: defaultAction,
			Rules:         rules(ruleSet.Node("rule")),
		})
	}

	return out
}

// NATRules returns the rules of the source or destination NAT section.
func NATRules(tree Tree, direction string) []Rule {
	return rules(tree.Node("nat", direction, "rule"))
}

func rules(node Tree) []Rule {
	out := make([]Rule, 0, len(node))
	for _, number := range node.Keys() {
		rule := node.Node(number)
		action, _ := rule.String("action")
		protocol, _ := rule.String("protocol")
		description, _ := rule.String("description")
		translation, _ := rule.String("translation", "address")
		out = append(out, Rule{
			Number:      number,
			Action:      action,
			Protocol:    protocol,
			Source:      endpoint(rule.Node("source")),
			Destination: endpoint(rule.Node("destination")),
			Interface:   ruleInterface(rule),
			Translation: translation,
			Description: description,
			Disabled:    rule.Has("disable"),
		})
	}

	return out
}

// endpoint renders a source or destination match as "address:port".
func endpoint(node Tree) string {
	if node == nil {
		return ""
	}

	address := strings.Join(node.Strings("address"), ",")
	if group := node.Node("group"); group != nil {
		for _, kind := range group.Keys() {
			if name, ok := group.String(kind); ok {
				address = "@" + name
			}
		}
	}

	port := strings.Join(node.Strings("port"), ",")
	switch {
	case address != "" && port != "":
		return address + ":" + port
	case port != "":
		return "*:" + port
	default:
		return address
	}
}

// ruleInterface handles both the flat and the nested interface name layouts used by NAT rules.
func ruleInterface(rule Tree) string {
	for _, key := range []string{"outbound-interface", "inbound-interface"} {
		if name, ok := rule.String(key); ok {
			return name
		}
		if name, ok := rule.String(key, "name"); ok {
			return name
		}
	}

	return ""
}

// StaticRoute is one prefix from protocols static.
type StaticRoute struct {
	Prefix    string
	NextHops  []string
	Interface []string
	Blackhole bool
}

func StaticRoutes(tree Tree) []StaticRoute {
	var out []StaticRoute

	for _, family := range []string{"route", "route6"} {
		routes := tree.Node("protocols", "static", family)
		for _, prefix := range routes.Keys() {
			route := routes.Node(prefix)
			out = append(out, StaticRoute{
				Prefix:    prefix,
				NextHops:  route.Strings("next-hop"),
				Interface: route.Strings("interface"),
				Blackhole: route.Has("blackhole"),
			})
		}
	}

	return out
}

// LoginUsers returns the configured local user names.
func LoginUsers(tree Tree) []string {
	return tree.Node("system", "login", "user").Keys()
}
