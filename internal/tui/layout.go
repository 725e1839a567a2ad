package tui

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/coursekit/internal/app"
	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/outline"
	"github.com/thenoetrevino/coursekit/internal/types"
)

type rowKind int

const (
	rowPool rowKind = iota
	rowModule
	rowItem
)

// rowRef identifies a selectable body row independently of where it renders
type rowRef struct {
	kind   rowKind
	module types.ModuleID
	item   types.ItemID
}

func moduleRef(id types.ModuleID) rowRef { return rowRef{kind: rowModule, module: id} }

func itemRef(it models.Item) rowRef {
	return rowRef{kind: rowItem, module: it.ModuleID, item: it.ID}
}

var poolRef = rowRef{kind: rowPool}

// scope is the order scope new items and drops under this row go to
func (r rowRef) scope() types.ModuleID {
	if r.kind == rowPool {
		return types.Unassigned
	}
	return r.module
}

// row is a selectable row and the content line it renders on
type row struct {
	ref  rowRef
	line int
}

// bodyLayout is the rendered course body. Module tops and item anchors are
// content lines, before any scrolling.
type bodyLayout struct {
	lines   []string
	rows    []row
	modules []outline.Offset
	anchors map[types.ItemID]int
}

// find returns the index of the row matching ref, or -1
func (l bodyLayout) find(ref rowRef) int {
	for i, r := range l.rows {
		if r.ref.kind != ref.kind {
			continue
		}
		switch ref.kind {
		case rowPool:
			return i
		case rowModule:
			if r.ref.module == ref.module {
				return i
			}
		case rowItem:
			if r.ref.item == ref.item {
				return i
			}
		}
	}
	return -1
}

// offsets converts module tops to screen rows for the given scroll position
func (l bodyLayout) offsets(headerHeight, scroll int) []outline.Offset {
	out := make([]outline.Offset, len(l.modules))
	for i, o := range l.modules {
		out[i] = outline.Offset{Module: o.Module, Top: headerHeight + o.Top - scroll}
	}
	return out
}

// layoutInput is everything the body renderer reads
type layoutInput struct {
	view     app.CourseView
	open     map[types.ModuleID]bool
	selected rowRef
	hasSel   bool
	dragged  rowRef
	dragging bool
}

func (in layoutInput) isOpen(id types.ModuleID) bool {
	if in.open[id] || in.view.AutoExpanded[id] {
		return true
	}
	return in.dragging && in.dragged.kind == rowItem && in.dragged.module == id
}

func (in layoutInput) same(a, b rowRef) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case rowModule:
		return a.module == b.module
	case rowItem:
		return a.item == b.item
	default:
		return true
	}
}

// buildLayout renders the course body: the unassigned pool when it has
// items, then every visible module with its count subtitle and, when
// expanded, its items.
func buildLayout(in layoutInput, st styles) bodyLayout {
	l := bodyLayout{anchors: make(map[types.ItemID]int)}
	v := in.view

	add := func(ref rowRef, text string) {
		l.rows = append(l.rows, row{ref: ref, line: len(l.lines)})
		l.lines = append(l.lines, in.decorate(ref, text, st))
	}
	plain := func(text string) {
		l.lines = append(l.lines, text)
	}

	if v.Empty {
		plain(st.Subtle.Render("No modules yet. Press m to add the first one."))
	}

	if len(v.Unassigned) > 0 {
		add(poolRef, st.Section.Render(fmt.Sprintf("Unassigned (%d)", len(v.Unassigned))))
		for _, it := range v.Unassigned {
			l.anchors[it.ID] = len(l.lines)
			add(itemRef(it), "  "+renderItem(it, v.Query, st))
		}
		plain("")
	}

	if !v.Empty && len(v.Modules) == 0 && len(v.Unassigned) == 0 {
		plain(st.Subtle.Render(fmt.Sprintf("Nothing matches %q", v.Query)))
	}

	for i, m := range v.Modules {
		if i > 0 {
			plain("")
		}
		l.modules = append(l.modules, outline.Offset{Module: m.ID, Top: len(l.lines)})

		marker := "▸"
		open := in.isOpen(m.ID)
		if open {
			marker = "▾"
		}
		add(moduleRef(m.ID), marker+" "+st.highlight(m.Name, v.Query, st.Module))
		plain("    " + st.Subtle.Render(app.ItemCountLabel(v.ItemCounts[m.ID])))

		if !open {
			continue
		}
		for _, it := range v.ByModule[m.ID] {
			l.anchors[it.ID] = len(l.lines)
			add(itemRef(it), "    "+renderItem(it, v.Query, st))
		}
	}

	return l
}

// decorate adds the cursor and drag markers to a selectable row
func (in layoutInput) decorate(ref rowRef, text string, st styles) string {
	switch {
	case in.dragging && in.same(ref, in.dragged):
		return st.Dragged.Render("≡ ") + text
	case in.hasSel && in.same(ref, in.selected):
		return st.Selected.Render("›") + " " + text
	default:
		return "  " + text
	}
}

func renderItem(it models.Item, query string, st styles) string {
	return typeBadge(it.Type, st) + " " + st.highlight(it.Title, query, st.Item)
}

func typeBadge(t models.ItemType, st styles) string {
	switch t {
	case models.ItemTypeLink:
		return st.Link.Render("[link]")
	case models.ItemTypeFile:
		return st.File.Render("[file]")
	default:
		return st.Subtle.Render("[" + strings.ToLower(string(t)) + "]")
	}
}
