package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/coursekit/internal/dnd"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// grab starts a drag for the selected module or item
func (m *Model) grab() {
	if !m.hasSel {
		return
	}

	var p dnd.Payload
	switch m.selected.kind {
	case rowModule:
		p = dnd.ModulePayload(m.selected.module)
	case rowItem:
		p = dnd.ItemPayload(m.selected.item)
	default:
		return
	}

	if err := m.app.Drag.Begin(p); err != nil {
		m.fail("Cannot start drag", err)
		return
	}
	m.info(fmt.Sprintf("Moving %s: %s/%s to move, %s to drop, %s to cancel",
		p.Kind,
		m.keys.NextRow.Help().Key, m.keys.PrevRow.Help().Key,
		m.keys.Grab.Help().Key, m.keys.CancelDrag.Help().Key))
	m.relayout()
}

// updateDrag handles keys while a drag is in progress. Every move commits
// immediately, so the body always shows the live order.
func (m *Model) updateDrag(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CancelDrag):
		if _, err := m.app.Drag.Cancel(); err != nil {
			m.fail("Error cancelling drag", err)
		} else {
			m.info("Drag cancelled")
		}
	case key.Matches(msg, m.keys.Grab):
		m.drop()
	case key.Matches(msg, m.keys.NextRow):
		m.hoverStep(1)
	case key.Matches(msg, m.keys.PrevRow):
		m.hoverStep(-1)
	default:
		return m, nil
	}

	m.relayout()
	m.ensureVisible()
	return m, nil
}

// hoverStep moves the dragged entity one slot up or down
func (m *Model) hoverStep(dir int) {
	slot, ok, err := m.neighborSlot(m.app.Drag.Session(), dir)
	if err != nil {
		m.fail("Error moving", err)
		return
	}
	if !ok {
		return
	}

	if _, err := m.app.Drag.Hover(slot); err != nil {
		if errors.Is(err, dnd.ErrDraggedGone) {
			m.info("The dragged entry no longer exists")
			return
		}
		m.fail("Error moving", err)
	}
}

// neighborSlot is the slot one step from the session's current position.
// Items stepping past either end of their scope enter the adjacent scope,
// with the unassigned pool ordered before the first module.
func (m *Model) neighborSlot(s dnd.Session, dir int) (dnd.Slot, bool, error) {
	ctx := m.app.Context()
	cur := s.Current

	modules, err := m.app.ModuleService.ListModules(ctx)
	if err != nil {
		return dnd.Slot{}, false, err
	}

	if s.Kind == dnd.KindModule {
		next := cur.Index + dir
		if next < 0 || next >= len(modules) {
			return dnd.Slot{}, false, nil
		}
		return dnd.ModuleSlot(next), true, nil
	}

	inScope, err := m.app.ItemService.ItemsInScope(ctx, cur.Scope)
	if err != nil {
		return dnd.Slot{}, false, err
	}
	if next := cur.Index + dir; next >= 0 && next < len(inScope) {
		return dnd.ItemSlot(cur.Scope, next), true, nil
	}

	scopes := make([]types.ModuleID, 0, len(modules)+1)
	scopes = append(scopes, types.Unassigned)
	for _, mod := range modules {
		scopes = append(scopes, mod.ID)
	}

	at := -1
	for i, sc := range scopes {
		if sc == cur.Scope {
			at = i
			break
		}
	}
	j := at + dir
	if at < 0 || j < 0 || j >= len(scopes) {
		return dnd.Slot{}, false, nil
	}

	if dir > 0 {
		return dnd.ItemSlot(scopes[j], 0), true, nil
	}
	target, err := m.app.ItemService.ItemsInScope(ctx, scopes[j])
	if err != nil {
		return dnd.Slot{}, false, err
	}
	return dnd.ItemSlot(scopes[j], len(target)), true, nil
}

// drop ends the drag over the zone the entity currently sits in
func (m *Model) drop() {
	s := m.app.Drag.Session()
	zone := dnd.ModuleZone()
	if s.Kind == dnd.KindItem {
		zone = dnd.ItemZone(s.Current.Scope)
	}

	done, err := m.app.Drag.Drop(zone)
	if err != nil {
		m.fail("Error dropping", err)
		return
	}
	if done.Kind == dnd.KindItem && !done.Current.Scope.IsUnassigned() {
		m.open[done.Current.Scope] = true
	}
	m.info("Moved")
}
