package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/coursekit/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// previewMarkdown describes an item as markdown
func previewMarkdown(it models.Item, moduleName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", it.Title)
	fmt.Fprintf(&b, "- **Type:** %s\n", it.Type)
	switch it.Type {
	case models.ItemTypeLink:
		fmt.Fprintf(&b, "- **URL:** <%s>\n", it.Payload)
	case models.ItemTypeFile:
		fmt.Fprintf(&b, "- **File:** `%s`\n", it.Payload)
	}
	if moduleName == "" {
		b.WriteString("- **Module:** _unassigned_\n")
	} else {
		fmt.Fprintf(&b, "- **Module:** %s\n", moduleName)
	}
	return b.String()
}

// renderPreview renders markdown at width, falling back to the raw text
// when no renderer is available
func renderPreview(md string, width int) string {
	renderer, err := getRenderer(width)
	if err == nil {
		out, err := renderer.Render(md)
		if err == nil {
			return strings.TrimSpace(out)
		}
	}
	return md
}
