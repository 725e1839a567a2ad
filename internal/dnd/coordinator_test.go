package dnd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/store"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// storeTarget adapts a store to Target and counts committed mutations
type storeTarget struct {
	*store.Store
	commits int
}

func (t *storeTarget) ItemScope(id types.ItemID) (types.ModuleID, bool) {
	it, ok := t.Item(id)
	return it.ModuleID, ok
}

func (t *storeTarget) ReorderModules(from, to int) error {
	t.commits++
	return t.Store.ReorderModules(from, to)
}

func (t *storeTarget) ReorderWithinScope(scope types.ModuleID, from, to int) error {
	t.commits++
	return t.Store.ReorderWithinScope(scope, from, to)
}

func (t *storeTarget) MoveItem(id types.ItemID, target types.ModuleID) error {
	t.commits++
	return t.Store.MoveItem(id, target)
}

func (t *storeTarget) MoveItemAt(id types.ItemID, target types.ModuleID, index int) error {
	t.commits++
	return t.Store.MoveItemAt(id, target, index)
}

// setupCoordinator builds modules 1..3; module 1 holds A,B,C, module 2 holds D,E,
// and the pool holds P
func setupCoordinator(t *testing.T) (*Coordinator, *storeTarget) {
	t.Helper()
	s := store.New()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, s.CreateModule(models.Module{ID: types.ModuleID(id), Name: "Module " + id}))
	}
	for _, it := range []struct{ id, module string }{
		{"A", "1"}, {"B", "1"}, {"D", "2"}, {"C", "1"}, {"E", "2"}, {"P", ""},
	} {
		require.NoError(t, s.CreateItem(models.Item{
			ID:       types.ItemID(it.id),
			Title:    "Item " + it.id,
			Type:     models.ItemTypeLink,
			ModuleID: types.ModuleID(it.module),
		}))
	}
	target := &storeTarget{Store: s}
	return NewCoordinator(target), target
}

func scope(t *storeTarget, id types.ModuleID) []types.ItemID {
	var ids []types.ItemID
	for _, it := range t.ItemsInScope(id) {
		ids = append(ids, it.ID)
	}
	return ids
}

func modules(t *storeTarget) []types.ModuleID {
	var ids []types.ModuleID
	for _, m := range t.Modules() {
		ids = append(ids, m.ID)
	}
	return ids
}

// ============================================================================
// STATE MACHINE
// ============================================================================

func TestBegin_CapturesOrigin(t *testing.T) {
	c, _ := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("B")))

	s := c.Session()
	assert.Equal(t, StateDragging, s.State)
	assert.Equal(t, KindItem, s.Kind)
	assert.Equal(t, "B", s.DraggedID)
	assert.Equal(t, ItemSlot("1", 1), s.Origin)
	assert.Equal(t, s.Origin, s.Current)
}

func TestBegin_Errors(t *testing.T) {
	c, _ := setupCoordinator(t)

	assert.ErrorIs(t, c.Begin(ItemPayload("nope")), ErrUnknownPayload)
	assert.ErrorIs(t, c.Begin(ModulePayload("nope")), ErrUnknownPayload)
	assert.False(t, c.Dragging())

	require.NoError(t, c.Begin(ModulePayload("1")))
	assert.ErrorIs(t, c.Begin(ModulePayload("2")), ErrSessionActive)
}

func TestCallbacksWithoutSession(t *testing.T) {
	c, target := setupCoordinator(t)

	_, err := c.Hover(ItemSlot("1", 0))
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = c.Drop(ItemZone(types.Unassigned))
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = c.Cancel()
	assert.ErrorIs(t, err, ErrNoSession)
	assert.Zero(t, target.commits)
}

func TestFinishReturnsToIdle(t *testing.T) {
	c, _ := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("A")))
	done, err := c.Drop(ItemZone("1"))
	require.NoError(t, err)
	assert.Equal(t, StateDropped, done.State)
	assert.Equal(t, StateIdle, c.Session().State)

	require.NoError(t, c.Begin(ItemPayload("A")))
	done, err = c.Cancel()
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, done.State)
	assert.False(t, c.Dragging())
}

// ============================================================================
// MODULE DRAGS
// ============================================================================

func TestModuleDrag_LiveReorder(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ModulePayload("1")))

	committed, err := c.Hover(ModuleSlot(1))
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, []types.ModuleID{"2", "1", "3"}, modules(target))

	// Delta is computed against the post-move index, not the origin
	committed, err = c.Hover(ModuleSlot(2))
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, []types.ModuleID{"2", "3", "1"}, modules(target))
	assert.Equal(t, 2, c.Session().Current.Index)
	assert.Equal(t, 0, c.Session().Origin.Index)

	done, err := c.Drop(ModuleZone())
	require.NoError(t, err)
	assert.Equal(t, StateDropped, done.State)
	assert.Equal(t, []types.ModuleID{"2", "3", "1"}, modules(target))
}

func TestModuleDrag_SameSlotDoesNotThrash(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ModulePayload("2")))
	for range 5 {
		committed, err := c.Hover(ModuleSlot(1))
		require.NoError(t, err)
		assert.False(t, committed)
	}
	assert.Zero(t, target.commits)
}

func TestModuleDrag_IgnoresItemSlots(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ModulePayload("1")))
	committed, err := c.Hover(ItemSlot("2", 0))
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Zero(t, target.commits)

	done, err := c.Drop(ItemZone(types.Unassigned))
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, done.State, "cross-kind drop is ignored")
	assert.Equal(t, []types.ModuleID{"1", "2", "3"}, modules(target))
}

func TestModuleDrag_CancelKeepsLastPosition(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ModulePayload("3")))
	_, err := c.Hover(ModuleSlot(0))
	require.NoError(t, err)

	done, err := c.Cancel()
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, done.State)
	assert.Equal(t, []types.ModuleID{"3", "1", "2"}, modules(target), "cancel does not roll back")
}

// ============================================================================
// ITEM DRAGS
// ============================================================================

func TestItemDrag_ReorderWithinModule(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("A")))
	_, err := c.Hover(ItemSlot("1", 1))
	require.NoError(t, err)
	_, err = c.Hover(ItemSlot("1", 2))
	require.NoError(t, err)
	assert.Equal(t, []types.ItemID{"B", "C", "A"}, scope(target, "1"))

	// Dropping on the module it already lives in keeps the dragged order
	_, err = c.Drop(ItemZone("1"))
	require.NoError(t, err)
	assert.Equal(t, []types.ItemID{"B", "C", "A"}, scope(target, "1"))
	assert.Equal(t, []types.ItemID{"D", "E"}, scope(target, "2"))
}

func TestItemDrag_ReparentAcrossModules(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("A")))
	committed, err := c.Hover(ItemSlot("2", 1))
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, ItemSlot("2", 1), c.Session().Current)

	_, err = c.Drop(ItemZone("2"))
	require.NoError(t, err)

	it, _ := target.Item("A")
	assert.Equal(t, types.ModuleID("2"), it.ModuleID)
	assert.Equal(t, []types.ItemID{"D", "A", "E"}, scope(target, "2"))
	assert.Equal(t, []types.ItemID{"B", "C"}, scope(target, "1"), "source keeps relative order")
}

func TestItemDrag_HoverAfterReparentTargetsNewScope(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("C")))
	_, err := c.Hover(ItemSlot("2", 0))
	require.NoError(t, err)
	_, err = c.Hover(ItemSlot("2", 2))
	require.NoError(t, err)

	assert.Equal(t, []types.ItemID{"D", "E", "C"}, scope(target, "2"))
	assert.Equal(t, []types.ItemID{"A", "B"}, scope(target, "1"))
}

func TestItemDrag_DropOnUnassigned(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("B")))
	done, err := c.Drop(ItemZone(types.Unassigned))
	require.NoError(t, err)

	it, _ := target.Item("B")
	assert.True(t, it.IsUnassigned())
	assert.Equal(t, []types.ItemID{"P", "B"}, scope(target, types.Unassigned))
	assert.Equal(t, ItemSlot(types.Unassigned, 1), done.Current)
	assert.Equal(t, []types.ItemID{"A", "C"}, scope(target, "1"))
}

func TestItemDrag_IgnoresModuleSlots(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("A")))
	committed, err := c.Hover(ModuleSlot(2))
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Zero(t, target.commits)
}

func TestItemDrag_ErrorLeavesSessionUsable(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("A")))
	_, err := c.Hover(ItemSlot("9", 0))
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.True(t, c.Dragging())
	assert.Equal(t, ItemSlot("1", 0), c.Session().Current)

	_, err = c.Hover(ItemSlot("1", 2))
	require.NoError(t, err)
	assert.Equal(t, []types.ItemID{"B", "C", "A"}, scope(target, "1"))
}

func TestItemDrag_DraggedItemDeleted(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("A")))
	require.NoError(t, target.DeleteModule("1"))

	_, err := c.Hover(ItemSlot("2", 0))
	assert.Error(t, err)
	_, err = c.Drop(ItemZone("2"))
	assert.Error(t, err)
	assert.False(t, c.Dragging())
}

func TestItemDrag_HoverUsesCurrentIndexAfterExternalDelete(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ItemPayload("B")))
	require.NoError(t, target.DeleteItem("A"))

	committed, err := c.Hover(ItemSlot("1", 0))
	require.NoError(t, err)
	assert.False(t, committed, "B already sits at index 0 once A is gone")
	assert.Equal(t, []types.ItemID{"B", "C"}, scope(target, "1"))

	committed, err = c.Hover(ItemSlot("1", 1))
	require.NoError(t, err)
	assert.True(t, committed)
	assert.Equal(t, []types.ItemID{"C", "B"}, scope(target, "1"))
}

func TestModuleDrag_DraggedModuleDeletedBeforeHover(t *testing.T) {
	c, target := setupCoordinator(t)

	require.NoError(t, c.Begin(ModulePayload("1")))
	require.NoError(t, target.DeleteModule("1"))
	commits := target.commits

	committed, err := c.Hover(ModuleSlot(1))
	assert.ErrorIs(t, err, ErrDraggedGone)
	assert.False(t, committed)
	assert.False(t, c.Dragging())
	assert.Equal(t, commits, target.commits)
	assert.Equal(t, []types.ModuleID{"2", "3"}, modules(target))
}

// lenientTarget drops not-found errors the way the item service does
type lenientTarget struct {
	*storeTarget
}

func (t *lenientTarget) MoveItemAt(id types.ItemID, target types.ModuleID, index int) error {
	if err := t.storeTarget.MoveItemAt(id, target, index); err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	return nil
}

func TestItemDrag_DeclinedMoveIsNotCommitted(t *testing.T) {
	_, inner := setupCoordinator(t)
	c := NewCoordinator(&lenientTarget{storeTarget: inner})

	require.NoError(t, c.Begin(ItemPayload("A")))
	committed, err := c.Hover(ItemSlot("9", 0))
	require.NoError(t, err)
	assert.False(t, committed)
	assert.Equal(t, ItemSlot("1", 0), c.Session().Current)
	assert.Equal(t, []types.ItemID{"A", "B", "C"}, scope(inner, "1"))
}
