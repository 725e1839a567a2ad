// Package search derives filtered views of a course outline from a free-text query.
//
// Everything here is a pure function of its inputs and cheap enough to run on
// every keystroke for outlines of a few hundred entities.
package search

import (
	"strings"

	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/types"
	"golang.org/x/text/cases"
)

// Result is the filtered view of modules and items for one query
type Result struct {
	Modules []models.Module
	Items   []models.Item
}

// ItemsFor returns the filtered items belonging to one scope, in order
func (r Result) ItemsFor(scope types.ModuleID) []models.Item {
	var out []models.Item
	for _, it := range r.Items {
		if it.InScope(scope) {
			out = append(out, it)
		}
	}
	return out
}

// Unassigned returns the filtered items of the unassigned pool
func (r Result) Unassigned() []models.Item {
	return r.ItemsFor(types.Unassigned)
}

// IsBlank reports whether a query filters nothing
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// Filter applies query to the outline.
//
// A module is kept when its own name matches or when any of its items (taken
// from the unfiltered input) has a matching title. Items are kept when their
// title matches. The two decisions are computed independently. A blank query
// returns the input slices as they are.
func Filter(modules []models.Module, items []models.Item, query string) Result {
	if IsBlank(query) {
		return Result{Modules: modules, Items: items}
	}

	m := newMatcher(query)

	matchedItems := make([]models.Item, 0, len(items))
	modulesWithMatch := make(map[types.ModuleID]bool)
	for _, it := range items {
		if !m.match(it.Title) {
			continue
		}
		matchedItems = append(matchedItems, it)
		if !it.IsUnassigned() {
			modulesWithMatch[it.ModuleID] = true
		}
	}

	matchedModules := make([]models.Module, 0, len(modules))
	for _, mod := range modules {
		if modulesWithMatch[mod.ID] || m.match(mod.Name) {
			matchedModules = append(matchedModules, mod)
		}
	}

	return Result{Modules: matchedModules, Items: matchedItems}
}

// Matches reports whether text contains query, ignoring case
func Matches(text, query string) bool {
	if IsBlank(query) {
		return false
	}
	return newMatcher(query).match(text)
}

// ModuleHasMatch reports whether a non-blank query hits the module's name or
// any of its items' titles. Matching modules are shown expanded.
func ModuleHasMatch(module models.Module, items []models.Item, query string) bool {
	if IsBlank(query) {
		return false
	}
	m := newMatcher(query)
	if m.match(module.Name) {
		return true
	}
	for _, it := range items {
		if it.ModuleID == module.ID && m.match(it.Title) {
			return true
		}
	}
	return false
}

// matcher folds the query once and compares folded text against it.
// A cases.Caser carries state, so each matcher owns its own.
type matcher struct {
	fold   cases.Caser
	needle string
}

func newMatcher(query string) *matcher {
	fold := cases.Fold()
	return &matcher{fold: fold, needle: fold.String(query)}
}

func (m *matcher) match(text string) bool {
	return strings.Contains(m.fold.String(text), m.needle)
}
