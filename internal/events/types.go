package events

import (
	"time"

	"github.com/thenoetrevino/coursekit/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventModulesChanged EventType = "modules_changed"
	EventItemsChanged   EventType = "items_changed"
)

// Event represents a course outline change notification
type Event struct {
	Type       EventType
	ModuleID   types.ModuleID // module touched by the change, if any
	ItemID     types.ItemID   // item touched by the change, if any
	Timestamp  time.Time      // When the event occurred
	SequenceID int64          // Monotonically increasing sequence number for ordering
}

// Handler receives published events
type Handler func(Event)
