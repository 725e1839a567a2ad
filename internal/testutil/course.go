package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/coursekit/internal/app"
	"github.com/thenoetrevino/coursekit/internal/models"
	itemservice "github.com/thenoetrevino/coursekit/internal/services/item"
	moduleservice "github.com/thenoetrevino/coursekit/internal/services/module"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// ItemFixture describes one item to create. Items default to files whose
// payload is the title with a .pdf suffix.
type ItemFixture struct {
	ID    string
	Title string
	Type  models.ItemType
}

// ModuleFixture describes one module and the items it holds, in order
type ModuleFixture struct {
	ID    string
	Name  string
	Items []ItemFixture
}

// NewApp creates an application container that is closed when the test ends
func NewApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	a := app.New(opts...)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// SeedCourse creates the modules with their items, then the pooled items,
// through the services
func SeedCourse(t *testing.T, a *app.App, modules []ModuleFixture, pool []ItemFixture) {
	t.Helper()
	ctx := context.Background()

	for _, m := range modules {
		_, err := a.ModuleService.CreateModule(ctx, moduleservice.CreateModuleRequest{
			ID:   types.ModuleID(m.ID),
			Name: m.Name,
		})
		if err != nil {
			t.Fatalf("Failed to create module %q: %v", m.Name, err)
		}
		for _, it := range m.Items {
			createItem(t, a, types.ModuleID(m.ID), it)
		}
	}
	for _, it := range pool {
		createItem(t, a, types.Unassigned, it)
	}
}

func createItem(t *testing.T, a *app.App, scope types.ModuleID, it ItemFixture) {
	t.Helper()

	typ, payload := it.Type, it.Title+".pdf"
	if typ == "" {
		typ = models.ItemTypeFile
	}
	if typ == models.ItemTypeLink {
		payload = "https://example.com/" + it.ID
	}

	_, err := a.ItemService.CreateItem(context.Background(), itemservice.CreateItemRequest{
		ID:       types.ItemID(it.ID),
		Title:    it.Title,
		Type:     typ,
		ModuleID: scope,
		Payload:  payload,
	})
	if err != nil {
		t.Fatalf("Failed to create item %q: %v", it.Title, err)
	}
}

// ScopeIDs returns the ids of the items in scope, in order
func ScopeIDs(t *testing.T, a *app.App, scope types.ModuleID) []types.ItemID {
	t.Helper()
	items, err := a.ItemService.ItemsInScope(context.Background(), scope)
	if err != nil {
		t.Fatalf("Failed to list scope %q: %v", scope, err)
	}
	var ids []types.ItemID
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

// ModuleIDs returns the ids of every module, in order
func ModuleIDs(t *testing.T, a *app.App) []types.ModuleID {
	t.Helper()
	mods, err := a.ModuleService.ListModules(context.Background())
	if err != nil {
		t.Fatalf("Failed to list modules: %v", err)
	}
	var ids []types.ModuleID
	for _, m := range mods {
		ids = append(ids, m.ID)
	}
	return ids
}
