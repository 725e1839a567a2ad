// Package store owns the module and item collections of one course session.
//
// Modules live in a single ordered slice; their index is their position.
// Items live in one flat slice whose order only encodes relative order inside
// each scope (the unassigned pool, or the items of one module). Every mutation
// preserves referential integrity: an item's ModuleID is always
// types.Unassigned or the id of a live module.
package store

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Store is the in-memory entity store. It is not safe for concurrent use; a
// course session mutates it from a single event loop.
type Store struct {
	modules []models.Module
	items   []models.Item

	// ids ever issued, so a deleted entity's id is never handed out again
	moduleIDs map[types.ModuleID]struct{}
	itemIDs   map[types.ItemID]struct{}
}

// New creates an empty store
func New() *Store {
	return &Store{
		moduleIDs: make(map[types.ModuleID]struct{}),
		itemIDs:   make(map[types.ItemID]struct{}),
	}
}

// ============================================================================
// READS
// ============================================================================

// Modules returns a copy of the module sequence in display order
func (s *Store) Modules() []models.Module {
	out := make([]models.Module, len(s.modules))
	copy(out, s.modules)
	return out
}

// Items returns a copy of the flat item sequence
func (s *Store) Items() []models.Item {
	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Module returns the module with the given id
func (s *Store) Module(id types.ModuleID) (models.Module, bool) {
	idx := s.ModuleIndex(id)
	if idx < 0 {
		return models.Module{}, false
	}
	return s.modules[idx], true
}

// HasModule reports whether a live module has the given id
func (s *Store) HasModule(id types.ModuleID) bool {
	return s.ModuleIndex(id) >= 0
}

// ModuleIndex returns the position of the module, or -1
func (s *Store) ModuleIndex(id types.ModuleID) int {
	for i, m := range s.modules {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// Item returns the item with the given id
func (s *Store) Item(id types.ItemID) (models.Item, bool) {
	idx := s.flatIndex(id)
	if idx < 0 {
		return models.Item{}, false
	}
	return s.items[idx], true
}

// ItemsInScope returns the ordered items of one scope
func (s *Store) ItemsInScope(scope types.ModuleID) []models.Item {
	var out []models.Item
	for _, it := range s.items {
		if it.InScope(scope) {
			out = append(out, it)
		}
	}
	return out
}

// ItemIndex returns the item's index within the given scope's ordered view, or -1
func (s *Store) ItemIndex(scope types.ModuleID, id types.ItemID) int {
	idx := 0
	for _, it := range s.items {
		if !it.InScope(scope) {
			continue
		}
		if it.ID == id {
			return idx
		}
		idx++
	}
	return -1
}

// ============================================================================
// MODULE MUTATIONS
// ============================================================================

// CreateModule appends a module to the end of the sequence
func (s *Store) CreateModule(m models.Module) error {
	if m.ID == types.Unassigned {
		return &models.ValidationError{Field: "module id", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(m.Name) == "" {
		return &models.ValidationError{Field: "module name", Reason: "cannot be empty"}
	}
	if _, used := s.moduleIDs[m.ID]; used {
		return &models.ValidationError{Field: "module id", Reason: fmt.Sprintf("%q already issued", m.ID)}
	}

	s.moduleIDs[m.ID] = struct{}{}
	s.modules = append(s.modules, m)
	return nil
}

// UpdateModule replaces the module with the same id, keeping its position
func (s *Store) UpdateModule(m models.Module) error {
	if strings.TrimSpace(m.Name) == "" {
		return &models.ValidationError{Field: "module name", Reason: "cannot be empty"}
	}
	idx := s.ModuleIndex(m.ID)
	if idx < 0 {
		return &models.NotFoundError{Kind: "module", ID: string(m.ID)}
	}
	s.modules[idx] = m
	return nil
}

// DeleteModule removes the module and cascades deletion to every item it owns.
// Both slices are rebuilt before either is swapped in, so no caller can
// observe an item pointing at the deleted module.
func (s *Store) DeleteModule(id types.ModuleID) error {
	idx := s.ModuleIndex(id)
	if idx < 0 {
		return &models.NotFoundError{Kind: "module", ID: string(id)}
	}

	modules := make([]models.Module, 0, len(s.modules)-1)
	modules = append(modules, s.modules[:idx]...)
	modules = append(modules, s.modules[idx+1:]...)

	items := make([]models.Item, 0, len(s.items))
	removed := 0
	for _, it := range s.items {
		if it.ModuleID == id {
			removed++
			continue
		}
		items = append(items, it)
	}

	s.modules = modules
	s.items = items

	slog.Debug("module deleted", "module_id", id, "cascaded_items", removed)
	return nil
}

// ReorderModules moves the module at from to index to
func (s *Store) ReorderModules(from, to int) error {
	n := len(s.modules)
	if from < 0 || from >= n {
		return &models.InvariantViolation{
			Op:     "reorder modules",
			Detail: fmt.Sprintf("from index %d out of range [0,%d)", from, n),
		}
	}
	to = clampIndex("reorder modules", to, n)
	if from == to {
		return nil
	}

	moved := s.modules[from]
	s.modules = append(s.modules[:from], s.modules[from+1:]...)
	s.modules = insertAt(s.modules, to, moved)
	return nil
}

// ============================================================================
// ITEM MUTATIONS
// ============================================================================

// CreateItem appends an item to the flat sequence, which places it last in its scope
func (s *Store) CreateItem(it models.Item) error {
	if it.ID == "" {
		return &models.ValidationError{Field: "item id", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(it.Title) == "" {
		return &models.ValidationError{Field: "item title", Reason: "cannot be empty"}
	}
	if !it.Type.Valid() {
		return &models.ValidationError{Field: "item type", Reason: fmt.Sprintf("unknown type %q", it.Type)}
	}
	if _, used := s.itemIDs[it.ID]; used {
		return &models.ValidationError{Field: "item id", Reason: fmt.Sprintf("%q already issued", it.ID)}
	}
	if !it.ModuleID.IsUnassigned() && !s.HasModule(it.ModuleID) {
		return &models.ValidationError{Field: "item module", Reason: fmt.Sprintf("module %q does not exist", it.ModuleID)}
	}

	s.itemIDs[it.ID] = struct{}{}
	s.items = append(s.items, it)
	return nil
}

// DeleteItem removes a single item
func (s *Store) DeleteItem(id types.ItemID) error {
	idx := s.flatIndex(id)
	if idx < 0 {
		return &models.NotFoundError{Kind: "item", ID: string(id)}
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// MoveItem reassigns the item to the target scope and places it last there.
// Moving an item into the scope it already occupies changes nothing, so a drop
// that finishes a within-scope drag keeps the order the drag produced.
func (s *Store) MoveItem(id types.ItemID, target types.ModuleID) error {
	idx, err := s.moveCheck(id, target)
	if err != nil {
		return err
	}
	if s.items[idx].ModuleID == target {
		return nil
	}

	it := s.items[idx]
	it.ModuleID = target
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.items = append(s.items, it)
	return nil
}

// MoveItemAt reassigns the item to the target scope and inserts it at index
// within that scope's ordered view. The index is clamped to the scope size.
// When target is the item's own scope this is a plain reorder.
func (s *Store) MoveItemAt(id types.ItemID, target types.ModuleID, index int) error {
	idx, err := s.moveCheck(id, target)
	if err != nil {
		return err
	}
	if s.items[idx].ModuleID == target {
		return s.ReorderWithinScope(target, s.ItemIndex(target, id), index)
	}

	it := s.items[idx]
	it.ModuleID = target
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	positions := s.scopePositions(target)
	if index < 0 {
		index = 0
	}
	if index >= len(positions) {
		s.items = append(s.items, it)
		return nil
	}
	s.items = insertAt(s.items, positions[index], it)
	return nil
}

// ReorderWithinScope moves the element at from to index to inside one scope.
// Only the flat slots already held by that scope are rewritten, so items of
// every other scope keep their exact flat positions.
func (s *Store) ReorderWithinScope(scope types.ModuleID, from, to int) error {
	positions := s.scopePositions(scope)
	n := len(positions)
	if from < 0 || from >= n {
		return &models.InvariantViolation{
			Op:     "reorder items",
			Detail: fmt.Sprintf("from index %d out of range [0,%d) in scope %s", from, n, scope),
		}
	}
	to = clampIndex("reorder items", to, n)
	if from == to {
		return nil
	}

	view := make([]models.Item, n)
	for i, p := range positions {
		view[i] = s.items[p]
	}
	moved := view[from]
	view = append(view[:from], view[from+1:]...)
	view = insertAt(view, to, moved)

	for i, p := range positions {
		s.items[p] = view[i]
	}
	return nil
}

// ============================================================================
// HELPERS
// ============================================================================

func (s *Store) flatIndex(id types.ItemID) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// scopePositions returns the flat indices held by the scope, in order
func (s *Store) scopePositions(scope types.ModuleID) []int {
	var positions []int
	for i, it := range s.items {
		if it.InScope(scope) {
			positions = append(positions, i)
		}
	}
	return positions
}

func (s *Store) moveCheck(id types.ItemID, target types.ModuleID) (int, error) {
	idx := s.flatIndex(id)
	if idx < 0 {
		return -1, &models.NotFoundError{Kind: "item", ID: string(id)}
	}
	if !target.IsUnassigned() && !s.HasModule(target) {
		return -1, &models.NotFoundError{Kind: "module", ID: string(target)}
	}
	return idx, nil
}

// clampIndex pulls a destination index into [0, n-1]
func clampIndex(op string, to, n int) int {
	if to >= 0 && to < n {
		return to
	}
	clamped := min(max(to, 0), n-1)
	slog.Warn("clamped out-of-range destination index", "op", op, "to", to, "clamped", clamped, "size", n)
	return clamped
}

func insertAt[T any](s []T, i int, v T) []T {
	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
