package outline

import (
	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Entry is one row of the outline panel
type Entry struct {
	Module types.ModuleID
	Item   types.ItemID // empty for module rows
	Label  string
	Depth  int
}

// IsItem reports whether the entry is an item row under an expanded module
func (e Entry) IsItem() bool {
	return e.Item != ""
}

// Entries lists the outline rows: every module in order, with the items of
// the expanded module nested directly beneath it.
func Entries(modules []models.Module, items []models.Item, expanded types.ModuleID) []Entry {
	entries := make([]Entry, 0, len(modules))
	for _, m := range modules {
		entries = append(entries, Entry{Module: m.ID, Label: m.Name})
		if expanded.IsUnassigned() || m.ID != expanded {
			continue
		}
		for _, it := range items {
			if it.ModuleID == m.ID {
				entries = append(entries, Entry{Module: m.ID, Item: it.ID, Label: it.Title, Depth: 1})
			}
		}
	}
	return entries
}
