package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/coursekit/internal/events"
	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/store"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Service defines all item-related business operations
type Service interface {
	// Read operations
	ListItems(ctx context.Context) ([]models.Item, error)
	ItemsInScope(ctx context.Context, scope types.ModuleID) ([]models.Item, error)
	GetItem(ctx context.Context, id types.ItemID) (models.Item, error)

	// Write operations
	CreateItem(ctx context.Context, req CreateItemRequest) (models.Item, error)
	CreateLink(ctx context.Context, req CreateLinkRequest) (models.Item, error)
	CreateUpload(ctx context.Context, req CreateUploadRequest) (models.Item, error)
	DeleteItem(ctx context.Context, id types.ItemID) error

	// Ordering operations
	MoveItem(ctx context.Context, id types.ItemID, target types.ModuleID) error
	MoveItemAt(ctx context.Context, id types.ItemID, target types.ModuleID, index int) error
	ReorderWithinScope(ctx context.Context, scope types.ModuleID, from, to int) error
}

// CreateItemRequest encapsulates data for creating any item
type CreateItemRequest struct {
	ID       types.ItemID // minted when empty
	Title    string
	Type     models.ItemType
	ModuleID types.ModuleID // types.Unassigned places the item in the pool
	Payload  string         // URL for links, file name for uploads
}

// CreateLinkRequest encapsulates data for adding a link
type CreateLinkRequest struct {
	ModuleID types.ModuleID
	Title    string
	URL      string
}

// CreateUploadRequest encapsulates data for adding an uploaded file.
// Title defaults to the file's base name.
type CreateUploadRequest struct {
	ModuleID types.ModuleID
	Title    string
	FileName string
}

// service implements Service interface
type service struct {
	store       *store.Store
	eventClient events.EventPublisher
}

// NewService creates a new item service
func NewService(st *store.Store, eventClient events.EventPublisher) Service {
	return &service{
		store:       st,
		eventClient: eventClient,
	}
}

// ListItems returns every item in flat order
func (s *service) ListItems(ctx context.Context) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Items(), nil
}

// ItemsInScope returns the ordered items of a module, or of the pool
func (s *service) ItemsInScope(ctx context.Context, scope types.ModuleID) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ItemsInScope(scope), nil
}

// GetItem retrieves an item by ID
func (s *service) GetItem(ctx context.Context, id types.ItemID) (models.Item, error) {
	if err := ctx.Err(); err != nil {
		return models.Item{}, err
	}
	it, ok := s.store.Item(id)
	if !ok {
		return models.Item{}, &models.NotFoundError{Kind: "item", ID: string(id)}
	}
	return it, nil
}

// CreateItem validates the request and appends the item to its scope
func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (models.Item, error) {
	if err := ctx.Err(); err != nil {
		return models.Item{}, err
	}

	it, err := s.validateCreateItem(req)
	if err != nil {
		return models.Item{}, err
	}

	if err := s.store.CreateItem(it); err != nil {
		return models.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	slog.Info("item created", "item_id", it.ID, "type", it.Type, "module_id", it.ModuleID)
	s.publish(it.ID, it.ModuleID)
	return it, nil
}

// CreateLink adds a link item
func (s *service) CreateLink(ctx context.Context, req CreateLinkRequest) (models.Item, error) {
	return s.CreateItem(ctx, CreateItemRequest{
		Title:    req.Title,
		Type:     models.ItemTypeLink,
		ModuleID: req.ModuleID,
		Payload:  req.URL,
	})
}

// CreateUpload adds a file item
func (s *service) CreateUpload(ctx context.Context, req CreateUploadRequest) (models.Item, error) {
	title := req.Title
	if strings.TrimSpace(title) == "" && strings.TrimSpace(req.FileName) != "" {
		title = filepath.Base(strings.TrimSpace(req.FileName))
	}
	return s.CreateItem(ctx, CreateItemRequest{
		Title:    title,
		Type:     models.ItemTypeFile,
		ModuleID: req.ModuleID,
		Payload:  req.FileName,
	})
}

// DeleteItem removes an item
func (s *service) DeleteItem(ctx context.Context, id types.ItemID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	it, ok := s.store.Item(id)
	err := s.store.DeleteItem(id)
	if ignored, err := notFoundNoop("delete item", err); ignored || err != nil {
		return err
	}

	slog.Info("item deleted", "item_id", id)
	if ok {
		s.publish(id, it.ModuleID)
	}
	return nil
}

// MoveItem assigns the item to target and places it last there
func (s *service) MoveItem(ctx context.Context, id types.ItemID, target types.ModuleID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.store.MoveItem(id, target)
	if ignored, err := notFoundNoop("move item", err); ignored || err != nil {
		return err
	}

	s.publish(id, target)
	return nil
}

// MoveItemAt assigns the item to target at index within that scope
func (s *service) MoveItemAt(ctx context.Context, id types.ItemID, target types.ModuleID, index int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.store.MoveItemAt(id, target, index)
	if ignored, err := notFoundNoop("move item", err); ignored || err != nil {
		return err
	}

	s.publish(id, target)
	return nil
}

// ReorderWithinScope moves the item at from to index to inside one scope
func (s *service) ReorderWithinScope(ctx context.Context, scope types.ModuleID, from, to int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.store.ReorderWithinScope(scope, from, to); err != nil {
		return fmt.Errorf("failed to reorder items: %w", err)
	}
	s.publish("", scope)
	return nil
}

// validateCreateItem checks a CreateItemRequest and builds the item it describes
func (s *service) validateCreateItem(req CreateItemRequest) (models.Item, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return models.Item{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > models.MaxItemTitleLength {
		return models.Item{}, ErrTitleTooLong
	}

	payload := strings.TrimSpace(req.Payload)
	switch req.Type {
	case models.ItemTypeLink:
		if !validURL(payload) {
			return models.Item{}, ErrInvalidURL
		}
	case models.ItemTypeFile:
		if payload == "" {
			return models.Item{}, ErrEmptyFileName
		}
	default:
		return models.Item{}, ErrInvalidType
	}

	if !req.ModuleID.IsUnassigned() && !s.store.HasModule(req.ModuleID) {
		return models.Item{}, ErrUnknownModule
	}

	id := req.ID
	if id == "" {
		id = types.NewItemID()
	}

	return models.Item{
		ID:       id,
		Title:    title,
		Type:     req.Type,
		ModuleID: req.ModuleID,
		Payload:  payload,
	}, nil
}

// validURL reports whether raw is an absolute http(s) URL with a host
func validURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// notFoundNoop logs and swallows a not-found error. It reports whether the
// error was swallowed, and wraps any other error.
func notFoundNoop(op string, err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, models.ErrNotFound) {
		slog.Warn("ignoring operation on missing entity", "op", op, "error", err)
		return true, nil
	}
	return false, fmt.Errorf("failed to %s: %w", op, err)
}

// publish notifies subscribers that item placement or content changed
func (s *service) publish(id types.ItemID, scope types.ModuleID) {
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventItemsChanged,
		ItemID:   id,
		ModuleID: scope,
	})
}
