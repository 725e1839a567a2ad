package tui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/coursekit/internal/outline"
)

const (
	outlineMaxWidth = 30
	outlineMinWidth = 14
)

// outlineWidth is the panel width for a terminal of the given width,
// including its left border and padding
func outlineWidth(total int) int {
	return min(max(total/3, outlineMinWidth), outlineMaxWidth)
}

// renderOutline draws the navigation panel. The active module is
// emphasised; the cursor row is shown only while the panel has focus.
func (m *Model) renderOutline(entries []outline.Entry, width, height int) string {
	inner := max(width-2, 1)
	lines := []string{m.styles.Section.Render("Outline")}

	active := m.app.Navigator.Active()
	for i, e := range entries {
		marker := "  "
		if !e.IsItem() {
			marker = "▸ "
			if m.app.Navigator.IsExpanded(e.Module) {
				marker = "▾ "
			}
		}
		indent := strings.Repeat("  ", e.Depth)
		label := truncate.StringWithTail(indent+marker+e.Label, uint(inner), "…")

		switch {
		case m.mode == ModeOutline && i == m.outlineCursor:
			label = m.styles.OutlineCursor.Render(label)
		case !e.IsItem() && e.Module == active:
			label = m.styles.OutlineActive.Render(label)
		case e.IsItem():
			label = m.styles.Subtle.Render(label)
		default:
			label = m.styles.Normal.Render(label)
		}
		lines = append(lines, label)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return m.styles.OutlineBox.Height(height).Render(strings.Join(lines, "\n"))
}
