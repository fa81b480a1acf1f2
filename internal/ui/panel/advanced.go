package panel

import (
	"log/slog"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/nextgen-manager/ngm-tui/internal/network/encoding"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
)

// Advanced shows the complete configuration tree as highlighted JSON. Highlighting is costly
// so the last rendering is reused until the document or width changes.
type Advanced struct {
	cache *renderCache
}

type renderCache struct {
	mu       sync.Mutex
	document string
	width    int
	rendered string
}

func NewAdvanced() Advanced {
	return Advanced{cache: &renderCache{}}
}

func (Advanced) Title() string {
	return "Advanced"
}

func (p Advanced) Render(tree vyos.Tree, width int, _ int) string {
	if tree == nil {
		tree = vyos.Tree{}
	}

	document, errMarshal := encoding.MarshalIndent(tree)
	if errMarshal != nil {
		slog.Error("Failed to encode configuration", slog.String("error", errMarshal.Error()))

		return emptyMessage("Configuration could not be encoded", width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		heading("Raw configuration", width),
		p.highlight(document, width))
}

func (p Advanced) highlight(document string, width int) string {
	if p.cache == nil {
		return highlightJSON(document, width)
	}

	p.cache.mu.Lock()
	defer p.cache.mu.Unlock()

	if p.cache.document == document && p.cache.width == width && p.cache.rendered != "" {
		return p.cache.rendered
	}

	p.cache.document = document
	p.cache.width = width
	p.cache.rendered = highlightJSON(document, width)

	return p.cache.rendered
}

// highlightJSON renders the document as a fenced json block. The plain document is returned
// when the renderer fails.
func highlightJSON(document string, width int) string {
	renderer, errRenderer := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width, 20)))
	if errRenderer != nil {
		slog.Error("Failed to create renderer", slog.String("error", errRenderer.Error()))

		return document
	}

	out, errRender := renderer.Render("```json\n" + document + "\n```\n")
	if errRender != nil {
		slog.Error("Failed to highlight configuration", slog.String("error", errRender.Error()))

		return document
	}

	return out
}
