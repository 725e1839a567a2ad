package models

import "github.com/thenoetrevino/coursekit/internal/types"

// Module is a named, ordered container of content items.
// Its position is implicit: the index within the store's module sequence.
type Module struct {
	ID   types.ModuleID
	Name string
}
