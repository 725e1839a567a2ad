package dnd

import "github.com/thenoetrevino/coursekit/internal/types"

// Kind is the type of entity a drag carries. Slots and zones are typed the
// same way, and a drag only interacts with slots of its own kind.
type Kind int

const (
	KindModule Kind = iota + 1
	KindItem
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindItem:
		return "item"
	default:
		return "unknown"
	}
}

// State is the lifecycle position of a drag session
type State int

const (
	StateIdle State = iota
	StateDragging
	StateDropped
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateDropped:
		return "dropped"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Payload identifies what the gesture picked up
type Payload struct {
	Kind Kind
	ID   string // a types.ModuleID or types.ItemID, per Kind
}

// ModulePayload builds the payload for dragging a module
func ModulePayload(id types.ModuleID) Payload {
	return Payload{Kind: KindModule, ID: string(id)}
}

// ItemPayload builds the payload for dragging an item
func ItemPayload(id types.ItemID) Payload {
	return Payload{Kind: KindItem, ID: string(id)}
}

// Slot is a position the pointer can hover over. For module slots Scope is
// ignored and Index addresses the module sequence; for item slots Scope names
// the module (or types.Unassigned) whose item list holds the slot.
type Slot struct {
	Kind  Kind
	Scope types.ModuleID
	Index int
}

// ModuleSlot is the slot of the module at index
func ModuleSlot(index int) Slot {
	return Slot{Kind: KindModule, Index: index}
}

// ItemSlot is the slot at index inside the given item scope
func ItemSlot(scope types.ModuleID, index int) Slot {
	return Slot{Kind: KindItem, Scope: scope, Index: index}
}

// Zone is a drop target. Item zones are a module's drop area or the
// unassigned pool (Scope == types.Unassigned).
type Zone struct {
	Kind  Kind
	Scope types.ModuleID
}

// ModuleZone is the drop area of the module list
func ModuleZone() Zone {
	return Zone{Kind: KindModule}
}

// ItemZone is the item drop area of a module, or of the pool for types.Unassigned
func ItemZone(scope types.ModuleID) Zone {
	return Zone{Kind: KindItem, Scope: scope}
}

// Session carries everything the coordinator tracks for one drag gesture.
// Current follows the dragged entity as hover steps commit, so the next hover
// delta is computed against the post-move position.
type Session struct {
	Kind      Kind
	DraggedID string
	Origin    Slot
	Current   Slot
	State     State
}

// Active reports whether the session is mid-gesture
func (s Session) Active() bool {
	return s.State == StateDragging
}
