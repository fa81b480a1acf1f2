package model_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/ui/model"
	"github.com/stretchr/testify/require"
)

func TestFrameRender(t *testing.T) {
	frame := model.Frame{Title: "Quick actions", Width: 30, Rows: 2, Active: true}

	view := frame.Render("first\nsecond\nthird")
	require.Contains(t, view, "Quick actions")
	require.Contains(t, view, "second")
	require.NotContains(t, view, "third")
	require.Equal(t, 4, lipgloss.Height(view))
}

func TestFrameEmptySize(t *testing.T) {
	require.Empty(t, model.Frame{Title: "x", Width: 0, Rows: 3}.Render("content"))
	require.Empty(t, model.Frame{Title: "x", Width: 10, Rows: 0}.Render("content"))
}
