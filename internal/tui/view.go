package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// View renders the current state of the editor
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m *Model) render() string {
	// Wait for terminal size to be initialized
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ModeForm:
		if m.form != nil {
			box := m.styles.FormBox.Width(max(m.width/2, 40)).Render(m.form.View())
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
	case ModePreview:
		return m.renderPreviewOverlay()
	case ModeHelp:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.FormBox.Render(m.help.View(m.keys)))
	}

	view := m.app.View()
	body := m.body.View()
	if view.OutlineVisible {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			body,
			m.renderOutline(view.Outline, outlineWidth(m.width), m.bodyHeight()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

// renderHeader draws the fixed title and search rows above the body
func (m *Model) renderHeader() string {
	title := m.styles.Title.Render("coursekit")
	if s := m.app.Drag.Session(); s.Active() {
		title += " " + m.styles.Dragged.Render("moving "+s.Kind.String())
	}

	search := m.styles.Subtle.Render(m.keys.Search.Help().Key + " to search")
	if m.mode == ModeSearch || m.app.Query() != "" {
		search = m.search.View()
	}
	return title + "\n" + search
}

// renderFooter draws the notice, the delete prompt, or the short help
func (m *Model) renderFooter() string {
	switch {
	case m.mode == ModeConfirm:
		return m.styles.Error.Render(m.confirmPrompt())
	case m.notice.text != "" && m.notice.isErr:
		return m.styles.Error.Render(m.notice.text)
	case m.notice.text != "":
		return m.styles.Info.Render(m.notice.text)
	default:
		return m.help.View(m.keys)
	}
}

func (m *Model) renderPreviewOverlay() string {
	ctx := m.app.Context()
	it, err := m.app.ItemService.GetItem(ctx, m.preview)
	if err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.styles.Subtle.Render("Item no longer exists"))
	}

	moduleName := ""
	if !it.IsUnassigned() {
		if mod, err := m.app.ModuleService.GetModule(ctx, it.ModuleID); err == nil {
			moduleName = mod.Name
		}
	}

	width := max(min(m.width-8, 80), 20)
	content := renderPreview(previewMarkdown(it, moduleName), width)
	hint := m.styles.Subtle.Render("esc to close")
	box := m.styles.PreviewBox.Width(width + 4).Render(strings.Join([]string{content, "", hint}, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
