package models

import "github.com/thenoetrevino/coursekit/internal/types"

// ItemType distinguishes the kinds of content an item can carry
type ItemType string

const (
	ItemTypeLink ItemType = "link"
	ItemTypeFile ItemType = "file"
)

// Valid reports whether t is a known item type
func (t ItemType) Valid() bool {
	return t == ItemTypeLink || t == ItemTypeFile
}

// Item is a single piece of content, optionally belonging to one module.
// Payload holds the URL for links and the file reference for uploads; the
// engine never interprets it.
type Item struct {
	ID       types.ItemID
	Title    string
	Type     ItemType
	ModuleID types.ModuleID // types.Unassigned when the item sits in the pool
	Payload  string
}

// InScope reports whether the item belongs to the given order scope
func (i Item) InScope(scope types.ModuleID) bool {
	return i.ModuleID == scope
}

// IsUnassigned reports whether the item sits in the unassigned pool
func (i Item) IsUnassigned() bool {
	return i.ModuleID.IsUnassigned()
}
