package panel

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
)

func newUnstyledTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderTop(false).
		BorderHeader(false).
		Headers(headers...)
}

// newRowTable is a table with striped rows. Rows marked in disabled are struck through.
func newRowTable(width int, disabled map[int]bool, headers ...string) *table.Table {
	return newUnstyledTable(headers...).
		Width(width).
		StyleFunc(func(row, _ int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				return styles.TableHeading.PaddingRight(1)
			case row%2 == 0:
				style = styles.TableRowValuesEven
			default:
				style = styles.TableRowValuesOdd
			}

			if disabled[row] {
				style = style.Inherit(styles.Disabled)
			}

			return style.PaddingRight(1)
		})
}
