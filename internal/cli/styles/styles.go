package styles

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/coursekit/internal/config"
	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/search"
)

var (
	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	SectionStyle  lipgloss.Style // For section headers like "Unassigned"
	ValueStyle    lipgloss.Style

	// Search match
	MatchStyle lipgloss.Style

	// Item type badges
	LinkStyle lipgloss.Style
	FileStyle lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true)

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	MatchStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.MatchFg)).
		Background(lipgloss.Color(colors.MatchBg))

	LinkStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Edit))

	FileStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Create))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.InfoFg)).
		Background(lipgloss.Color(colors.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)
}

// ═══════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════

// Highlighted renders text with every query match in MatchStyle and the
// rest in base
func Highlighted(text, query string, base lipgloss.Style) string {
	var b strings.Builder
	for _, seg := range search.Highlight(text, query) {
		if seg.Match {
			b.WriteString(MatchStyle.Render(seg.Text))
			continue
		}
		b.WriteString(base.Render(seg.Text))
	}
	return b.String()
}

// TypeBadge renders the item type as a short colored tag
func TypeBadge(t models.ItemType) string {
	switch t {
	case models.ItemTypeLink:
		return LinkStyle.Render("[link]")
	case models.ItemTypeFile:
		return FileStyle.Render("[file]")
	default:
		return SubtitleStyle.Render("[" + string(t) + "]")
	}
}
