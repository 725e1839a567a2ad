package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Update handles all messages and updates the model accordingly
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil

	case glideMsg:
		return m, m.stepGlide()
	}

	// Forms receive every message, not just key presses
	if m.mode == ModeForm {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.notice = notice{}

	switch m.mode {
	case ModeSearch:
		return m.updateSearch(keyMsg)
	case ModeOutline:
		return m.updateOutline(keyMsg)
	case ModeConfirm:
		return m.updateConfirm(keyMsg)
	case ModePreview, ModeHelp:
		return m.updateOverlay(keyMsg)
	}

	if m.app.Drag.Dragging() {
		return m.updateDrag(keyMsg)
	}
	return m.updateNormal(keyMsg)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	step := m.app.Navigator.Config().ScrollStep

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShowHelp):
		m.help.ShowAll = true
		m.mode = ModeHelp
	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.FocusOutline):
		if m.app.View().OutlineVisible {
			m.mode = ModeOutline
		}
	case key.Matches(msg, m.keys.NextRow):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.PrevRow):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		return m, m.scrollToward(m.scroll + step)
	case key.Matches(msg, m.keys.ScrollUp):
		return m, m.scrollToward(m.scroll - step)
	case key.Matches(msg, m.keys.ToggleModule):
		m.toggleSelected()
	case key.Matches(msg, m.keys.AddModule):
		return m, m.openModuleForm(false)
	case key.Matches(msg, m.keys.EditModule):
		if m.hasSel && m.selected.kind == rowModule {
			return m, m.openModuleForm(true)
		}
	case key.Matches(msg, m.keys.AddLink):
		return m, m.openItemForm(formAddLink)
	case key.Matches(msg, m.keys.AddUpload):
		return m, m.openItemForm(formAddUpload)
	case key.Matches(msg, m.keys.PreviewItem):
		if m.hasSel && m.selected.kind == rowItem {
			m.preview = m.selected.item
			m.mode = ModePreview
		}
	case key.Matches(msg, m.keys.Delete):
		m.confirmDelete()
	case key.Matches(msg, m.keys.Grab):
		m.grab()
	}
	return m, nil
}

// moveSelection moves the cursor delta rows, scrolling it into view
func (m *Model) moveSelection(delta int) {
	if len(m.layout.rows) == 0 {
		return
	}
	i := m.layout.find(m.selected)
	if i < 0 || !m.hasSel {
		i = 0
	} else {
		i = min(max(i+delta, 0), len(m.layout.rows)-1)
	}
	m.selected, m.hasSel = m.layout.rows[i].ref, true
	m.relayout()
	m.ensureVisible()
}

// toggleSelected expands or collapses the selected module in the body
func (m *Model) toggleSelected() {
	if !m.hasSel || m.selected.kind != rowModule {
		return
	}
	id := m.selected.module
	m.open[id] = !m.open[id]
	m.relayout()
}

// ============================================================================
// SEARCH
// ============================================================================

func (m *Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.app.SetQuery("")
		fallthrough
	case "enter":
		m.search.Blur()
		m.mode = ModeNormal
		m.relayout()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.app.SetQuery(m.search.Value())
	m.relayout()
	return m, cmd
}

// ============================================================================
// OUTLINE
// ============================================================================

func (m *Model) updateOutline(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	entries := m.app.View().Outline

	switch {
	case msg.String() == "esc", key.Matches(msg, m.keys.FocusOutline):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextRow):
		m.outlineCursor = min(m.outlineCursor+1, max(len(entries)-1, 0))
	case key.Matches(msg, m.keys.PrevRow):
		m.outlineCursor = max(m.outlineCursor-1, 0)
	case key.Matches(msg, m.keys.ToggleModule):
		if m.outlineCursor >= len(entries) {
			return m, nil
		}
		e := entries[m.outlineCursor]
		if e.IsItem() {
			return m, m.scrollToItem(e.Item, e.Module)
		}
		m.app.ToggleOutline(e.Module)
		m.followOutlineModule(e.Module)
		return m, m.scrollToModule(e.Module)
	}
	return m, nil
}

// followOutlineModule keeps the outline cursor on a module after its
// branch opened or closed above it
func (m *Model) followOutlineModule(id types.ModuleID) {
	for i, e := range m.app.View().Outline {
		if !e.IsItem() && e.Module == id {
			m.outlineCursor = i
			return
		}
	}
}

// scrollToModule brings a module header to the top of the body
func (m *Model) scrollToModule(id types.ModuleID) tea.Cmd {
	for _, o := range m.layout.modules {
		if o.Module == id {
			m.selected, m.hasSel = moduleRef(id), true
			m.relayout()
			return m.scrollToward(o.Top)
		}
	}
	m.info("Module is hidden by the current search")
	return nil
}

// scrollToItem opens the item's module and centers the item in the body
func (m *Model) scrollToItem(id types.ItemID, module types.ModuleID) tea.Cmd {
	if !module.IsUnassigned() {
		m.open[module] = true
		m.relayout()
	}
	target, ok := m.app.Navigator.ScrollToItem(id, m.layout.anchors, m.bodyHeight(), len(m.layout.lines))
	if !ok {
		m.info("Item is hidden by the current search")
		return nil
	}
	m.selected, m.hasSel = rowRef{kind: rowItem, module: module, item: id}, true
	m.relayout()
	return m.scrollToward(target)
}

// ============================================================================
// OVERLAYS
// ============================================================================

func (m *Model) updateOverlay(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "esc",
		key.Matches(msg, m.keys.Quit),
		key.Matches(msg, m.keys.ShowHelp),
		key.Matches(msg, m.keys.PreviewItem):
		m.help.ShowAll = false
		m.preview = ""
		m.mode = ModeNormal
	}
	return m, nil
}

// confirmDelete asks before removing the selected module or item
func (m *Model) confirmDelete() {
	if !m.hasSel || m.selected.kind == rowPool {
		return
	}
	m.pendingDelete = m.selected
	m.mode = ModeConfirm
}

func (m *Model) updateConfirm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.deleteRow(m.pendingDelete)
	case "n", "N", "esc":
	default:
		return m, nil
	}
	m.pendingDelete = rowRef{}
	m.mode = ModeNormal
	return m, nil
}

// confirmPrompt is the footer question for a pending delete
func (m *Model) confirmPrompt() string {
	ctx := m.app.Context()
	switch m.pendingDelete.kind {
	case rowModule:
		if mod, err := m.app.ModuleService.GetModule(ctx, m.pendingDelete.module); err == nil {
			return fmt.Sprintf("Delete module %q and all its items? (y/n)", mod.Name)
		}
	case rowItem:
		if it, err := m.app.ItemService.GetItem(ctx, m.pendingDelete.item); err == nil {
			return fmt.Sprintf("Delete %q? (y/n)", it.Title)
		}
	}
	return "Delete? (y/n)"
}

func (m *Model) deleteRow(ref rowRef) {
	ctx := m.app.Context()
	switch ref.kind {
	case rowModule:
		if err := m.app.ModuleService.DeleteModule(ctx, ref.module); err != nil {
			m.fail("Error deleting module", err)
			return
		}
		delete(m.open, ref.module)
		m.info("Module deleted")
	case rowItem:
		if err := m.app.ItemService.DeleteItem(ctx, ref.item); err != nil {
			m.fail("Error deleting item", err)
			return
		}
		m.info("Item deleted")
	}
	m.relayout()
	m.ensureVisible()
}
