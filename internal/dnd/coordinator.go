// Package dnd coordinates live reordering during a continuous drag gesture.
//
// The coordinator knows nothing about the toolkit producing the gesture. A
// host reports "drag started with payload X", "hovering slot Y", and
// "dropped on zone Z" or "cancelled"; every hover that lands on a new slot is
// committed to the target immediately. Drags are not transactional: a cancel
// leaves the entity wherever the last hover put it.
package dnd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/coursekit/internal/types"
)

var (
	// ErrNoSession is returned by gesture callbacks that arrive with no drag in progress
	ErrNoSession = errors.New("no drag in progress")

	// ErrSessionActive is returned when a drag starts while another is in progress
	ErrSessionActive = errors.New("a drag is already in progress")

	// ErrUnknownPayload is returned when the dragged entity does not exist
	ErrUnknownPayload = errors.New("dragged entity does not exist")

	// ErrDraggedGone is returned when the dragged entity vanished mid-gesture
	ErrDraggedGone = errors.New("dragged entity no longer exists")
)

// Target is the mutation and lookup surface a drag operates on
type Target interface {
	ReorderModules(from, to int) error
	ReorderWithinScope(scope types.ModuleID, from, to int) error
	MoveItem(id types.ItemID, target types.ModuleID) error
	MoveItemAt(id types.ItemID, target types.ModuleID, index int) error

	ModuleIndex(id types.ModuleID) int
	ItemScope(id types.ItemID) (types.ModuleID, bool)
	ItemIndex(scope types.ModuleID, id types.ItemID) int
}

// Coordinator runs one drag session at a time against a Target
type Coordinator struct {
	target  Target
	session Session
}

// NewCoordinator creates an idle coordinator
func NewCoordinator(target Target) *Coordinator {
	return &Coordinator{target: target}
}

// Session returns the current session; its State is StateIdle between drags
func (c *Coordinator) Session() Session {
	return c.session
}

// Dragging reports whether a gesture is in progress
func (c *Coordinator) Dragging() bool {
	return c.session.Active()
}

// Begin starts a drag session for the payload, capturing where it started
func (c *Coordinator) Begin(p Payload) error {
	if c.Dragging() {
		return ErrSessionActive
	}

	origin, ok := c.locate(p.Kind, p.ID)
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnknownPayload, p.Kind, p.ID)
	}

	c.session = Session{
		Kind:      p.Kind,
		DraggedID: p.ID,
		Origin:    origin,
		Current:   origin,
		State:     StateDragging,
	}
	slog.Debug("drag started", "kind", p.Kind, "id", p.ID, "scope", origin.Scope, "index", origin.Index)
	return nil
}

// Hover reports the pointer entering slot. It returns true when the hover
// committed a mutation. Slots of a different kind are ignored.
func (c *Coordinator) Hover(slot Slot) (bool, error) {
	if !c.Dragging() {
		return false, ErrNoSession
	}
	if slot.Kind != c.session.Kind {
		return false, nil
	}

	cur, ok := c.locate(c.session.Kind, c.session.DraggedID)
	if !ok {
		c.finish(StateCancelled)
		return false, ErrDraggedGone
	}
	c.session.Current = cur

	var err error
	switch c.session.Kind {
	case KindModule:
		if slot.Index == cur.Index {
			return false, nil
		}
		err = c.target.ReorderModules(cur.Index, slot.Index)
		if err != nil {
			return false, fmt.Errorf("failed to reorder modules: %w", err)
		}

	case KindItem:
		id := types.ItemID(c.session.DraggedID)
		switch {
		case slot.Scope != cur.Scope:
			err = c.target.MoveItemAt(id, slot.Scope, slot.Index)
			if err != nil {
				return false, fmt.Errorf("failed to move item into %s: %w", slot.Scope, err)
			}
		case slot.Index == cur.Index:
			return false, nil
		default:
			err = c.target.ReorderWithinScope(cur.Scope, cur.Index, slot.Index)
			if err != nil {
				return false, fmt.Errorf("failed to reorder items: %w", err)
			}
		}

	default:
		return false, nil
	}

	next, ok := c.locate(c.session.Kind, c.session.DraggedID)
	if !ok {
		c.finish(StateCancelled)
		return true, ErrDraggedGone
	}
	if next == cur {
		// the target declined the change, e.g. a move into a missing module
		return false, nil
	}
	c.session.Current = next
	slog.Debug("drag hover committed", "kind", c.session.Kind, "id", c.session.DraggedID, "scope", next.Scope, "index", next.Index)
	return true, nil
}

// Drop ends the gesture over zone and returns the finished session. An item
// dropped on an item zone is assigned to that zone's scope (the pool for
// types.Unassigned); dropping into the scope it already occupies keeps the
// order the hovers produced. A zone of the wrong kind ends the gesture as a cancel.
func (c *Coordinator) Drop(zone Zone) (Session, error) {
	if !c.Dragging() {
		return Session{}, ErrNoSession
	}
	if zone.Kind != c.session.Kind {
		return c.finish(StateCancelled), nil
	}

	if c.session.Kind == KindItem {
		id := types.ItemID(c.session.DraggedID)
		if err := c.target.MoveItem(id, zone.Scope); err != nil {
			return c.finish(StateCancelled), fmt.Errorf("failed to drop item into %s: %w", zone.Scope, err)
		}
		if loc, ok := c.locate(KindItem, c.session.DraggedID); ok {
			c.session.Current = loc
		}
	}

	return c.finish(StateDropped), nil
}

// Cancel ends the gesture without compensation. Every hover already committed
// stays committed.
func (c *Coordinator) Cancel() (Session, error) {
	if !c.Dragging() {
		return Session{}, ErrNoSession
	}
	return c.finish(StateCancelled), nil
}

// finish records the terminal state and returns the coordinator to idle
func (c *Coordinator) finish(state State) Session {
	done := c.session
	done.State = state
	c.session = Session{}
	slog.Debug("drag finished", "kind", done.Kind, "id", done.DraggedID, "state", state)
	return done
}

func (c *Coordinator) locate(kind Kind, id string) (Slot, bool) {
	switch kind {
	case KindModule:
		idx := c.target.ModuleIndex(types.ModuleID(id))
		if idx < 0 {
			return Slot{}, false
		}
		return ModuleSlot(idx), true
	case KindItem:
		scope, ok := c.target.ItemScope(types.ItemID(id))
		if !ok {
			return Slot{}, false
		}
		return ItemSlot(scope, c.target.ItemIndex(scope, types.ItemID(id))), true
	default:
		return Slot{}, false
	}
}
