package types

import "github.com/google/uuid"

// ID types give the opaque string identifiers a domain meaning.
// The engine never inspects an id beyond equality.

// ModuleID identifies a module for the lifetime of a course session
type ModuleID string

// ItemID identifies a content item for the lifetime of a course session
type ItemID string

// Unassigned is the ModuleID carried by items that live in the top-level pool
// rather than inside a module. It also names the pool's order scope.
const Unassigned ModuleID = ""

// NewModuleID mints a fresh random module id
func NewModuleID() ModuleID {
	return ModuleID(uuid.NewString())
}

// NewItemID mints a fresh random item id
func NewItemID() ItemID {
	return ItemID(uuid.NewString())
}

// IsUnassigned reports whether the id names the unassigned pool
func (id ModuleID) IsUnassigned() bool {
	return id == Unassigned
}

func (id ModuleID) String() string {
	if id == Unassigned {
		return "unassigned"
	}
	return string(id)
}

func (id ItemID) String() string {
	return string(id)
}
