package seed

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/coursekit/internal/models"
	itemservice "github.com/thenoetrevino/coursekit/internal/services/item"
	moduleservice "github.com/thenoetrevino/coursekit/internal/services/module"
	"github.com/thenoetrevino/coursekit/internal/store"
	"github.com/thenoetrevino/coursekit/internal/types"
)

func services() (*store.Store, moduleservice.Service, itemservice.Service) {
	st := store.New()
	return st, moduleservice.NewService(st, nil), itemservice.NewService(st, nil)
}

func TestLoadFile(t *testing.T) {
	o, err := LoadFile(filepath.Join("testdata", "course.yaml"))
	require.NoError(t, err)

	require.Len(t, o.Modules, 3)
	assert.Equal(t, "intro", o.Modules[0].ID)
	assert.Len(t, o.Modules[0].Items, 2)
	assert.Empty(t, o.Modules[2].Items)
	require.Len(t, o.Unassigned, 1)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	o, err := LoadFile(filepath.Join("testdata", "course.yaml"))
	require.NoError(t, err)
	st, mods, items := services()

	sum, err := o.Apply(context.Background(), mods, items)
	require.NoError(t, err)
	assert.Equal(t, Summary{Modules: 3, Items: 4}, sum)

	modules := st.Modules()
	require.Len(t, modules, 3)
	assert.Equal(t, types.ModuleID("intro"), modules[0].ID)
	assert.Equal(t, "Sorting", modules[1].Name)

	intro := st.ItemsInScope("intro")
	require.Len(t, intro, 2)
	assert.Equal(t, models.ItemTypeFile, intro[0].Type)
	assert.Equal(t, "syllabus.pdf", intro[0].Payload)
	assert.Equal(t, models.ItemTypeLink, intro[1].Type, "type inferred from url")

	pool := st.ItemsInScope(types.Unassigned)
	require.Len(t, pool, 1)
	assert.Equal(t, "Style guide", pool[0].Title)
}

func TestParse_Empty(t *testing.T) {
	o, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, o.Modules)
	assert.Empty(t, o.Unassigned)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("modules:\n  - name: Intro\n    colour: red\n"))
	assert.Error(t, err)
}

func TestApply_StopsAtInvalidEntry(t *testing.T) {
	o, err := Parse([]byte(strings.Join([]string{
		"modules:",
		"  - name: Intro",
		"    items:",
		"      - title: Broken link",
		"        type: link",
		"        url: not-a-url",
		"  - name: Never created",
	}, "\n")))
	require.NoError(t, err)
	st, mods, items := services()

	sum, err := o.Apply(context.Background(), mods, items)
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, Summary{Modules: 1}, sum)
	assert.Len(t, st.Modules(), 1)
}
