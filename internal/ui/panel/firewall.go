package panel

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

type Firewall struct{}

func (Firewall) Title() string {
	return "Firewall"
}

func (p Firewall) Render(tree vyos.Tree, width int, _ int) string {
	sets := vyos.FirewallRuleSets(tree)
	if len(sets) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			heading(p.Title(), width),
			emptyMessage("No firewall rule-sets configured", width))
	}

	parts := []string{heading(p.Title(), width)}
	for _, set := range sets {
		title := fmt.Sprintf("%s (default %s, %d rules)", set.Name, orDash(set.DefaultAction), len(set.Rules))
		parts = append(parts, "", styles.PanelValue.Bold(true).Render(clip(title, width)))

		if len(set.Rules) == 0 {
			parts = append(parts, styles.Muted.Render("  no rules"))

			continue
		}

		parts = append(parts, ruleTable(set.Rules, width, false))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ruleTable renders firewall or NAT rules. NAT rules show the interface and translation
// columns instead of the action.
func ruleTable(rules []vyos.Rule, width int, nat bool) string {
	disabled := map[int]bool{}
	rows := make([][]string, len(rules))
	for idx, rule := range rules {
		disabled[idx] = rule.Disabled
		if nat {
			rows[idx] = []string{
				rule.Number, orDash(rule.Interface), orDash(rule.Protocol), orDash(rule.Source),
				orDash(rule.Destination), orDash(rule.Translation), rule.Description,
			}
		} else {
			rows[idx] = []string{
				rule.Number, actionLabel(rule.Action), orDash(rule.Protocol), orDash(rule.Source),
				orDash(rule.Destination), rule.Description,
			}
		}
	}

	headers := []string{"Rule", "Action", "Proto", "Source", "Destination", "Description"}
	if nat {
		headers = []string{"Rule", "Interface", "Proto", "Source", "Destination", "Translation", "Description"}
	}

	return newRowTable(width, disabled, headers...).Rows(rows...).Render()
}

func actionLabel(action string) string {
	switch action {
	case "accept":
		return styles.ActionAccept.Render(action)
	case "drop", "reject":
		return styles.ActionDrop.Render(action)
	default:
		return orDash(action)
	}
}
