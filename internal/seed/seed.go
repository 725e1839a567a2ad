// Package seed imports a course outline from a YAML fixture. Import only:
// nothing is ever written back.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/coursekit/internal/models"
	itemservice "github.com/thenoetrevino/coursekit/internal/services/item"
	moduleservice "github.com/thenoetrevino/coursekit/internal/services/module"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Outline is the decoded fixture file
type Outline struct {
	Modules    []Module `yaml:"modules"`
	Unassigned []Item   `yaml:"unassigned"`
}

// Module is one module and its items, in order
type Module struct {
	ID    string `yaml:"id,omitempty"`
	Name  string `yaml:"name"`
	Items []Item `yaml:"items,omitempty"`
}

// Item is a link (url) or an uploaded file (file)
type Item struct {
	ID    string `yaml:"id,omitempty"`
	Title string `yaml:"title"`
	Type  string `yaml:"type"`
	URL   string `yaml:"url,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// Summary counts what Apply created
type Summary struct {
	Modules int
	Items   int
}

// Parse decodes a fixture. Unknown keys are rejected.
func Parse(data []byte) (*Outline, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a fixture from r. An empty document yields an empty outline.
func Decode(r io.Reader) (*Outline, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var o Outline
	if err := dec.Decode(&o); err != nil {
		if errors.Is(err, io.EOF) {
			return &o, nil
		}
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &o, nil
}

// LoadFile reads and decodes the fixture at path
func LoadFile(path string) (*Outline, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer func() { _ = f.Close() }()

	o, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return o, nil
}

// Apply creates every module and item through the services, in file order.
// It stops at the first entry the services reject.
func (o *Outline) Apply(ctx context.Context, modules moduleservice.Service, items itemservice.Service) (Summary, error) {
	var sum Summary

	for i, m := range o.Modules {
		created, err := modules.CreateModule(ctx, moduleservice.CreateModuleRequest{
			ID:   types.ModuleID(m.ID),
			Name: m.Name,
		})
		if err != nil {
			return sum, fmt.Errorf("module %d (%q): %w", i+1, m.Name, err)
		}
		sum.Modules++

		for j, it := range m.Items {
			if err := createItem(ctx, items, it, created.ID); err != nil {
				return sum, fmt.Errorf("module %q item %d: %w", m.Name, j+1, err)
			}
			sum.Items++
		}
	}

	for j, it := range o.Unassigned {
		if err := createItem(ctx, items, it, types.Unassigned); err != nil {
			return sum, fmt.Errorf("unassigned item %d: %w", j+1, err)
		}
		sum.Items++
	}

	slog.Info("seed applied", "modules", sum.Modules, "items", sum.Items)
	return sum, nil
}

func createItem(ctx context.Context, items itemservice.Service, it Item, module types.ModuleID) error {
	kind := models.ItemType(it.Type)
	if kind == "" {
		kind = inferType(it)
	}

	payload := it.File
	if kind == models.ItemTypeLink {
		payload = it.URL
	}

	_, err := items.CreateItem(ctx, itemservice.CreateItemRequest{
		ID:       types.ItemID(it.ID),
		Title:    it.Title,
		Type:     kind,
		ModuleID: module,
		Payload:  payload,
	})
	return err
}

// inferType picks the item type from whichever payload key is present
func inferType(it Item) models.ItemType {
	if it.URL != "" {
		return models.ItemTypeLink
	}
	return models.ItemTypeFile
}
