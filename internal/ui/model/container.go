package model

import (
	"strings"

	"github.com/nextgen-manager/ngm-tui/internal/ui/styles"
)

// Frame is a rounded box with its title set into the top border.
type Frame struct {
	Title string
	Width int
	// Rows is the number of content lines kept, the border adds two more.
	Rows   int
	Active bool
}

// Render draws content inside the frame. Lines past Rows are dropped.
func (f Frame) Render(content string) string {
	if f.Rows <= 0 || f.Width <= 0 {
		return ""
	}

	style := styles.ContainerStyle
	if f.Active {
		style = styles.ContainerStyleActive
	}

	lines := strings.Split(content, "\n")
	if len(lines) > f.Rows {
		lines = lines[:f.Rows]
	}

	return style.
		Border(styles.TitleBorder(styles.ContainerBorder, f.Width, f.Title)).
		Width(f.Width).
		Render(strings.Join(lines, "\n"))
}
