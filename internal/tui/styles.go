package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/coursekit/internal/config"
	"github.com/thenoetrevino/coursekit/internal/search"
)

// styles holds every lipgloss style the editor renders with
type styles struct {
	Title    lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style
	Section  lipgloss.Style
	Module   lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Dragged  lipgloss.Style
	Match    lipgloss.Style
	Link     lipgloss.Style
	File     lipgloss.Style

	OutlineBox    lipgloss.Style
	OutlineActive lipgloss.Style
	OutlineCursor lipgloss.Style

	FormBox    lipgloss.Style
	PreviewBox lipgloss.Style

	Info  lipgloss.Style
	Error lipgloss.Style
}

func newStyles(colors config.ColorScheme) styles {
	return styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Title)),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Normal)),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.Accent)),
		Module: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.ModuleBorder)),
		Item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.ItemBorder)),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.SelectedBorder)).
			Background(lipgloss.Color(colors.SelectedBg)),
		Dragged: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.DragBorder)),
		Match: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.MatchFg)).
			Background(lipgloss.Color(colors.MatchBg)),
		Link: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Edit)),
		File: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.Create)),

		OutlineBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color(colors.Subtle)).
			PaddingLeft(1),
		OutlineActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.OutlineActive)),
		OutlineCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.SelectedBorder)).
			Background(lipgloss.Color(colors.SelectedBg)),

		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.Accent)).
			Padding(1, 2),
		PreviewBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colors.ItemBorder)).
			Padding(0, 1),

		Info: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.InfoFg)).
			Background(lipgloss.Color(colors.InfoBg)).
			Padding(0, 1),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors.ErrorFg)).
			Background(lipgloss.Color(colors.ErrorBg)).
			Padding(0, 1),
	}
}

// highlight renders text with every query match in the match style
func (s styles) highlight(text, query string, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range search.Highlight(text, query) {
		if seg.Match {
			b.WriteString(s.Match.Render(seg.Text))
			continue
		}
		b.WriteString(base.Render(seg.Text))
	}
	return b.String()
}
