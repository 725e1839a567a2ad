// Package outline tracks the navigation panel beside the course body: which
// module branch is expanded, which module the viewport is currently showing,
// and where to scroll to bring an item into view.
//
// All positions are measured in terminal rows. Offsets are relative to the
// top of the viewport, anchors are relative to the top of the content.
package outline

import (
	"log/slog"

	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Config tunes active-module detection and scrolling
type Config struct {
	// ActiveMargin is added to the header height to form the activation threshold
	ActiveMargin int
	// SmoothScroll glides toward a scroll target instead of jumping
	SmoothScroll bool
	// ScrollStep is the number of rows a single scroll key moves
	ScrollStep int
}

// DefaultConfig returns the settings used when none are configured
func DefaultConfig() Config {
	return Config{
		ActiveMargin: 2,
		SmoothScroll: true,
		ScrollStep:   3,
	}
}

// Offset is the top edge of a module's body relative to the viewport top
type Offset struct {
	Module types.ModuleID
	Top    int
}

// ActiveModule returns the last module, in order, whose top sits above
// headerHeight+margin. It returns types.Unassigned when no module qualifies.
func ActiveModule(offsets []Offset, headerHeight, margin int) types.ModuleID {
	threshold := headerHeight + margin
	active := types.Unassigned
	for _, o := range offsets {
		if o.Top < threshold {
			active = o.Module
		}
	}
	return active
}

// Navigator holds outline state for one session
type Navigator struct {
	cfg          Config
	expanded     types.ModuleID
	active       types.ModuleID
	headerHeight int
}

// NewNavigator creates a navigator with nothing expanded or active
func NewNavigator(cfg Config) *Navigator {
	return &Navigator{cfg: cfg}
}

// Config returns the navigator's settings
func (n *Navigator) Config() Config {
	return n.cfg
}

// Toggle expands id, collapsing any other branch. Toggling the expanded
// branch collapses it.
func (n *Navigator) Toggle(id types.ModuleID) {
	if n.expanded == id {
		n.expanded = types.Unassigned
		return
	}
	n.expanded = id
}

// Expanded returns the expanded module, or types.Unassigned when none is
func (n *Navigator) Expanded() types.ModuleID {
	return n.expanded
}

// IsExpanded reports whether id is the expanded branch
func (n *Navigator) IsExpanded(id types.ModuleID) bool {
	return !id.IsUnassigned() && n.expanded == id
}

// Active returns the module last computed by Sync
func (n *Navigator) Active() types.ModuleID {
	return n.active
}

// SetHeaderHeight records the height of the fixed header. The last write wins.
func (n *Navigator) SetHeaderHeight(h int) {
	if h < 0 {
		h = 0
	}
	n.headerHeight = h
}

// HeaderHeight returns the last recorded header height
func (n *Navigator) HeaderHeight() int {
	return n.headerHeight
}

// Sync recomputes the active module from the latest offsets. Call it after
// every scroll, resize, and module list change.
func (n *Navigator) Sync(offsets []Offset) types.ModuleID {
	n.active = ActiveModule(offsets, n.headerHeight, n.cfg.ActiveMargin)
	return n.active
}

// Reconcile forgets expanded and active ids that are no longer in modules
func (n *Navigator) Reconcile(modules []models.Module) {
	present := make(map[types.ModuleID]bool, len(modules))
	for _, m := range modules {
		present[m.ID] = true
	}
	if !n.expanded.IsUnassigned() && !present[n.expanded] {
		slog.Debug("collapsing removed outline branch", "module_id", n.expanded)
		n.expanded = types.Unassigned
	}
	if !n.active.IsUnassigned() && !present[n.active] {
		n.active = types.Unassigned
	}
}

// ScrollToItem returns the viewport offset that centers the item's anchor,
// clamped to the scrollable range. It returns false when the item has no
// anchor, which happens once the item is gone.
func (n *Navigator) ScrollToItem(id types.ItemID, anchors map[types.ItemID]int, viewportHeight, contentHeight int) (int, bool) {
	line, ok := anchors[id]
	if !ok {
		slog.Debug("scroll target has no anchor", "item_id", id)
		return 0, false
	}

	offset := line - viewportHeight/2
	maxOffset := max(contentHeight-viewportHeight, 0)
	return min(max(offset, 0), maxOffset), true
}

// Glide returns the next offset of a smooth scroll from from toward to. Each
// step covers half the remaining distance and at least one row.
func Glide(from, to int) int {
	delta := to - from
	switch {
	case delta == 0:
		return to
	case delta > 0:
		return from + max(delta/2, 1)
	default:
		return from + min(delta/2, -1)
	}
}

// Visible reports whether the outline panel is shown. A single module
// needs no outline.
func Visible(modules []models.Module) bool {
	return len(modules) > 1
}
