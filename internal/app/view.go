package app

import (
	"fmt"

	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/outline"
	"github.com/thenoetrevino/coursekit/internal/search"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// CourseView is everything a presentation layer needs to draw one frame
type CourseView struct {
	Query string

	// Filtered by the query; identical to the store contents when it is blank
	Modules    []models.Module
	Items      []models.Item
	Unassigned []models.Item
	ByModule   map[types.ModuleID][]models.Item

	// Modules that match the query, directly or through one of their items
	AutoExpanded map[types.ModuleID]bool
	// Per-module item count before filtering
	ItemCounts map[types.ModuleID]int

	// Outline panel state, computed over the unfiltered module list
	OutlineVisible bool
	Outline        []outline.Entry
	Expanded       types.ModuleID
	Active         types.ModuleID

	// Empty is set when the course has no modules at all
	Empty bool
}

// View returns the current derived view
func (a *App) View() CourseView {
	v := a.view
	v.Expanded = a.Navigator.Expanded()
	v.Active = a.Navigator.Active()
	v.Outline = outline.Entries(a.store.Modules(), a.store.Items(), v.Expanded)
	return v
}

// refresh recomputes the filtered view from the store and query
func (a *App) refresh() {
	modules := a.store.Modules()
	items := a.store.Items()
	a.Navigator.Reconcile(modules)

	res := search.Filter(modules, items, a.query)

	v := CourseView{
		Query:          a.query,
		Modules:        res.Modules,
		Items:          res.Items,
		Unassigned:     res.Unassigned(),
		ByModule:       make(map[types.ModuleID][]models.Item, len(res.Modules)),
		AutoExpanded:   make(map[types.ModuleID]bool),
		ItemCounts:     make(map[types.ModuleID]int, len(modules)),
		OutlineVisible: outline.Visible(modules),
		Empty:          len(modules) == 0,
	}
	for _, m := range res.Modules {
		v.ByModule[m.ID] = res.ItemsFor(m.ID)
		if search.ModuleHasMatch(m, items, a.query) {
			v.AutoExpanded[m.ID] = true
		}
	}
	for _, it := range items {
		if !it.IsUnassigned() {
			v.ItemCounts[it.ModuleID]++
		}
	}

	a.view = v
}

// ItemCountLabel is the subtitle shown under a module name
func ItemCountLabel(n int) string {
	switch n {
	case 0:
		return "Add items to this module"
	case 1:
		return "1 item"
	default:
		return fmt.Sprintf("%d items", n)
	}
}
