package item

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/coursekit/internal/events"
	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/store"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type recordingPublisher struct {
	sent []events.Event
}

func (r *recordingPublisher) SendEvent(e events.Event) error {
	r.sent = append(r.sent, e)
	return nil
}

func (r *recordingPublisher) Subscribe(events.Handler) func() { return func() {} }
func (r *recordingPublisher) Close() error                    { return nil }

// setupService returns a service over a store holding modules m1 and m2
func setupService(t *testing.T) (Service, *store.Store, *recordingPublisher) {
	t.Helper()
	st := store.New()
	require.NoError(t, st.CreateModule(models.Module{ID: "m1", Name: "Intro"}))
	require.NoError(t, st.CreateModule(models.Module{ID: "m2", Name: "Graphs"}))
	pub := &recordingPublisher{}
	return NewService(st, pub), st, pub
}

func addLink(t *testing.T, svc Service, module types.ModuleID, title string) models.Item {
	t.Helper()
	it, err := svc.CreateLink(context.Background(), CreateLinkRequest{
		ModuleID: module,
		Title:    title,
		URL:      "https://example.com/" + title,
	})
	require.NoError(t, err)
	return it
}

func scopeTitles(t *testing.T, svc Service, scope types.ModuleID) []string {
	t.Helper()
	items, err := svc.ItemsInScope(context.Background(), scope)
	require.NoError(t, err)
	var titles []string
	for _, it := range items {
		titles = append(titles, it.Title)
	}
	return titles
}

// ============================================================================
// CREATE
// ============================================================================

func TestCreateLink(t *testing.T) {
	svc, _, pub := setupService(t)

	it := addLink(t, svc, "m1", "Slides")

	assert.NotEmpty(t, it.ID)
	assert.Equal(t, models.ItemTypeLink, it.Type)
	assert.Equal(t, types.ModuleID("m1"), it.ModuleID)
	assert.Equal(t, "https://example.com/Slides", it.Payload)
	require.Len(t, pub.sent, 1)
	assert.Equal(t, events.EventItemsChanged, pub.sent[0].Type)
	assert.Equal(t, it.ID, pub.sent[0].ItemID)
}

func TestCreateUpload_TitleDefaultsToFileName(t *testing.T) {
	svc, _, _ := setupService(t)

	it, err := svc.CreateUpload(context.Background(), CreateUploadRequest{FileName: "docs/syllabus.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "syllabus.pdf", it.Title)
	assert.Equal(t, models.ItemTypeFile, it.Type)
	assert.True(t, it.IsUnassigned())
}

func TestCreateItem_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateItemRequest
		wantErr error
	}{
		{
			name:    "empty title",
			req:     CreateItemRequest{Title: "  ", Type: models.ItemTypeLink, Payload: "https://x.io"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "title too long",
			req:     CreateItemRequest{Title: strings.Repeat("t", models.MaxItemTitleLength+1), Type: models.ItemTypeFile, Payload: "a.pdf"},
			wantErr: ErrTitleTooLong,
		},
		{
			name:    "relative url",
			req:     CreateItemRequest{Title: "Docs", Type: models.ItemTypeLink, Payload: "/docs"},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "non http scheme",
			req:     CreateItemRequest{Title: "Docs", Type: models.ItemTypeLink, Payload: "ftp://files.io/a"},
			wantErr: ErrInvalidURL,
		},
		{
			name:    "empty file",
			req:     CreateItemRequest{Title: "Notes", Type: models.ItemTypeFile},
			wantErr: ErrEmptyFileName,
		},
		{
			name:    "unknown type",
			req:     CreateItemRequest{Title: "Quiz", Type: "quiz", Payload: "q"},
			wantErr: ErrInvalidType,
		},
		{
			name:    "missing module",
			req:     CreateItemRequest{Title: "Notes", Type: models.ItemTypeFile, Payload: "a.pdf", ModuleID: "ghost"},
			wantErr: ErrUnknownModule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st, pub := setupService(t)

			_, err := svc.CreateItem(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, models.ErrValidation)
			assert.Empty(t, st.Items(), "nothing is committed")
			assert.Empty(t, pub.sent)
		})
	}
}

func TestCreateItem_AppendsToScope(t *testing.T) {
	svc, _, _ := setupService(t)
	addLink(t, svc, "m1", "a")
	addLink(t, svc, "m2", "x")
	addLink(t, svc, "m1", "b")

	assert.Equal(t, []string{"a", "b"}, scopeTitles(t, svc, "m1"))
	assert.Equal(t, []string{"x"}, scopeTitles(t, svc, "m2"))
}

// ============================================================================
// DELETE / MOVE
// ============================================================================

func TestDeleteItem(t *testing.T) {
	svc, _, pub := setupService(t)
	a := addLink(t, svc, "m1", "a")
	pub.sent = nil

	require.NoError(t, svc.DeleteItem(context.Background(), a.ID))
	assert.Empty(t, scopeTitles(t, svc, "m1"))
	require.Len(t, pub.sent, 1)

	assert.NoError(t, svc.DeleteItem(context.Background(), a.ID), "second delete is a no-op")
	assert.Len(t, pub.sent, 1)

	_, err := svc.GetItem(context.Background(), a.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestMoveItem(t *testing.T) {
	svc, _, _ := setupService(t)
	a := addLink(t, svc, "m1", "a")
	addLink(t, svc, "m1", "b")
	addLink(t, svc, "m2", "x")

	require.NoError(t, svc.MoveItem(context.Background(), a.ID, "m2"))
	assert.Equal(t, []string{"b"}, scopeTitles(t, svc, "m1"))
	assert.Equal(t, []string{"x", "a"}, scopeTitles(t, svc, "m2"))

	require.NoError(t, svc.MoveItem(context.Background(), a.ID, types.Unassigned))
	assert.Equal(t, []string{"a"}, scopeTitles(t, svc, types.Unassigned))
}

func TestMoveItem_MissingEntitiesAreNoops(t *testing.T) {
	svc, _, pub := setupService(t)
	a := addLink(t, svc, "m1", "a")
	pub.sent = nil

	assert.NoError(t, svc.MoveItem(context.Background(), "ghost", "m2"))
	assert.NoError(t, svc.MoveItem(context.Background(), a.ID, "ghost"))
	assert.Equal(t, []string{"a"}, scopeTitles(t, svc, "m1"))
	assert.Empty(t, pub.sent)
}

func TestMoveItemAt(t *testing.T) {
	svc, _, _ := setupService(t)
	a := addLink(t, svc, "m1", "a")
	addLink(t, svc, "m2", "x")
	addLink(t, svc, "m2", "y")

	require.NoError(t, svc.MoveItemAt(context.Background(), a.ID, "m2", 1))
	assert.Equal(t, []string{"x", "a", "y"}, scopeTitles(t, svc, "m2"))
}

func TestReorderWithinScope(t *testing.T) {
	svc, _, _ := setupService(t)
	for _, title := range []string{"a", "b", "c"} {
		addLink(t, svc, "m1", title)
	}
	addLink(t, svc, "m2", "x")

	require.NoError(t, svc.ReorderWithinScope(context.Background(), "m1", 2, 0))
	assert.Equal(t, []string{"c", "a", "b"}, scopeTitles(t, svc, "m1"))
	assert.Equal(t, []string{"x"}, scopeTitles(t, svc, "m2"))

	err := svc.ReorderWithinScope(context.Background(), "m1", 7, 0)
	assert.ErrorIs(t, err, models.ErrInvariant)
}
