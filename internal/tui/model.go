// Package tui is the interactive course editor. It renders the filtered
// course body with an outline panel beside it and drives the drag
// coordinator from the keyboard: grab a module or item, move it up and down
// (across module boundaries for items), then drop or cancel.
package tui

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/coursekit/internal/app"
	"github.com/thenoetrevino/coursekit/internal/config"
	"github.com/thenoetrevino/coursekit/internal/dnd"
	"github.com/thenoetrevino/coursekit/internal/outline"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Mode is the input mode the editor is in
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeOutline
	ModeForm
	ModePreview
	ModeHelp
	ModeConfirm
)

const (
	headerLines   = 2
	footerLines   = 1
	glideInterval = 16 * time.Millisecond
)

// notice is the one-line status message shown in the footer
type notice struct {
	text  string
	isErr bool
}

// glideMsg advances a smooth scroll by one step
type glideMsg struct{}

// Model is the editor's bubbletea model
type Model struct {
	app    *app.App
	cfg    *config.Config
	keys   keyMap
	styles styles
	help   help.Model

	mode          Mode
	width, height int

	search textinput.Model
	body   viewport.Model
	layout bodyLayout

	scroll      int
	glideTarget int
	gliding     bool

	selected      rowRef
	hasSel        bool
	open          map[types.ModuleID]bool
	outlineCursor int

	form      *huh.Form
	formKind  formKind
	formVals  formValues
	formScope types.ModuleID
	editing   types.ModuleID

	preview       types.ItemID
	pendingDelete rowRef
	notice        notice
}

// New creates the editor over an application container
func New(a *app.App, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search modules and items"

	m := &Model{
		app:    a,
		cfg:    cfg,
		keys:   newKeyMap(cfg.KeyMappings),
		styles: newStyles(cfg.ColorScheme),
		help:   help.New(),
		search: search,
		body:   viewport.New(),
		open:   make(map[types.ModuleID]bool),
	}
	m.relayout()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current input mode
func (m *Model) Mode() Mode {
	return m.mode
}

// Scroll returns the body's scroll offset in rows
func (m *Model) Scroll() int {
	return m.scroll
}

// bodyHeight is the number of rows available to the course body
func (m *Model) bodyHeight() int {
	return max(m.height-headerLines-footerLines, 1)
}

// bodyWidth is the width left for the body once the outline takes its share
func (m *Model) bodyWidth() int {
	if m.width == 0 {
		return 0
	}
	if m.app.View().OutlineVisible {
		return max(m.width-outlineWidth(m.width), 1)
	}
	return m.width
}

// relayout rebuilds the body from the current view, restores the selection
// and feeds the new module offsets to the navigator. Call it after every
// mutation, query change, scroll, and resize.
func (m *Model) relayout() {
	session := m.app.Drag.Session()
	in := layoutInput{
		view:     m.app.View(),
		open:     m.open,
		selected: m.selected,
		hasSel:   m.hasSel,
		dragging: session.Active(),
	}
	if in.dragging {
		in.dragged = m.draggedRef(session)
		m.selected, m.hasSel = in.dragged, true
		in.selected = in.dragged
	}

	m.layout = buildLayout(in, m.styles)
	if m.hasSel && m.layout.find(m.selected) < 0 {
		m.hasSel = false
	}
	if !m.hasSel {
		m.selectFirst()
		if m.hasSel {
			in.selected, in.hasSel = m.selected, true
			m.layout = buildLayout(in, m.styles)
		}
	}

	m.body.SetWidth(m.bodyWidth())
	m.body.SetHeight(m.bodyHeight())
	m.body.SetContent(lipgloss.JoinVertical(lipgloss.Left, m.layout.lines...))
	m.app.Navigator.SetHeaderHeight(headerLines)
	m.setScroll(m.scroll)

	if n := len(m.app.View().Outline); m.outlineCursor >= n {
		m.outlineCursor = max(n-1, 0)
	}
}

// draggedRef is the row of the entity being dragged
func (m *Model) draggedRef(s dnd.Session) rowRef {
	if s.Kind == dnd.KindModule {
		return moduleRef(types.ModuleID(s.DraggedID))
	}
	return rowRef{kind: rowItem, module: s.Current.Scope, item: types.ItemID(s.DraggedID)}
}

func (m *Model) selectFirst() {
	if len(m.layout.rows) == 0 {
		m.hasSel = false
		return
	}
	m.selected, m.hasSel = m.layout.rows[0].ref, true
}

// maxScroll is the largest offset that still fills the body
func (m *Model) maxScroll() int {
	return max(len(m.layout.lines)-m.bodyHeight(), 0)
}

// setScroll moves the body to offset, clamped, and syncs the active module
func (m *Model) setScroll(offset int) {
	m.scroll = min(max(offset, 0), m.maxScroll())
	m.body.SetYOffset(m.scroll)
	m.app.SyncOutline(m.layout.offsets(m.app.Navigator.HeaderHeight(), m.scroll))
}

// scrollToward jumps or glides to offset depending on configuration
func (m *Model) scrollToward(offset int) tea.Cmd {
	target := min(max(offset, 0), m.maxScroll())
	if !m.app.Navigator.Config().SmoothScroll || target == m.scroll {
		m.gliding = false
		m.setScroll(target)
		return nil
	}
	m.glideTarget = target
	m.gliding = true
	return glideTick()
}

func glideTick() tea.Cmd {
	return tea.Tick(glideInterval, func(time.Time) tea.Msg {
		return glideMsg{}
	})
}

// stepGlide advances an in-flight smooth scroll
func (m *Model) stepGlide() tea.Cmd {
	if !m.gliding {
		return nil
	}
	m.glideTarget = min(m.glideTarget, m.maxScroll())
	m.setScroll(outline.Glide(m.scroll, m.glideTarget))
	if m.scroll == m.glideTarget {
		m.gliding = false
		return nil
	}
	return glideTick()
}

// ensureVisible scrolls the minimum needed to show the selected row
func (m *Model) ensureVisible() {
	i := m.layout.find(m.selected)
	if i < 0 {
		return
	}
	line := m.layout.rows[i].line
	switch {
	case line < m.scroll:
		m.setScroll(line)
	case line >= m.scroll+m.bodyHeight():
		m.setScroll(line - m.bodyHeight() + 1)
	}
}

func (m *Model) info(text string) {
	m.notice = notice{text: text}
}

func (m *Model) fail(text string, err error) {
	m.app.Logger().Error(text, "error", err)
	m.notice = notice{text: text + ": " + err.Error(), isErr: true}
}
