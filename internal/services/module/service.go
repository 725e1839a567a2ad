package module

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/coursekit/internal/events"
	"github.com/thenoetrevino/coursekit/internal/models"
	"github.com/thenoetrevino/coursekit/internal/store"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// Service defines all module-related business operations
type Service interface {
	// Read operations
	ListModules(ctx context.Context) ([]models.Module, error)
	GetModule(ctx context.Context, id types.ModuleID) (models.Module, error)

	// Write operations
	CreateModule(ctx context.Context, req CreateModuleRequest) (models.Module, error)
	UpdateModule(ctx context.Context, req UpdateModuleRequest) error
	DeleteModule(ctx context.Context, id types.ModuleID) error
	ReorderModules(ctx context.Context, from, to int) error
}

// CreateModuleRequest encapsulates data for creating a module
type CreateModuleRequest struct {
	ID   types.ModuleID // minted when empty
	Name string
}

// UpdateModuleRequest encapsulates data for renaming a module
type UpdateModuleRequest struct {
	ID   types.ModuleID
	Name string
}

// service implements Service interface
type service struct {
	store       *store.Store
	eventClient events.EventPublisher
}

// NewService creates a new module service
func NewService(st *store.Store, eventClient events.EventPublisher) Service {
	return &service{
		store:       st,
		eventClient: eventClient,
	}
}

// ListModules returns modules in display order
func (s *service) ListModules(ctx context.Context) ([]models.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Modules(), nil
}

// GetModule retrieves a module by ID
func (s *service) GetModule(ctx context.Context, id types.ModuleID) (models.Module, error) {
	if err := ctx.Err(); err != nil {
		return models.Module{}, err
	}
	m, ok := s.store.Module(id)
	if !ok {
		return models.Module{}, &models.NotFoundError{Kind: "module", ID: string(id)}
	}
	return m, nil
}

// CreateModule validates the name and appends a new module
func (s *service) CreateModule(ctx context.Context, req CreateModuleRequest) (models.Module, error) {
	if err := ctx.Err(); err != nil {
		return models.Module{}, err
	}

	name, err := validateName(req.Name)
	if err != nil {
		return models.Module{}, err
	}

	id := req.ID
	if id == types.Unassigned {
		id = types.NewModuleID()
	}

	m := models.Module{ID: id, Name: name}
	if err := s.store.CreateModule(m); err != nil {
		return models.Module{}, fmt.Errorf("failed to create module: %w", err)
	}

	slog.Info("module created", "module_id", m.ID, "name", m.Name)
	s.publish(m.ID)
	return m, nil
}

// UpdateModule renames an existing module in place
func (s *service) UpdateModule(ctx context.Context, req UpdateModuleRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if req.ID == types.Unassigned {
		return ErrInvalidModuleID
	}

	name, err := validateName(req.Name)
	if err != nil {
		return err
	}

	err = s.store.UpdateModule(models.Module{ID: req.ID, Name: name})
	if ignored, err := notFoundNoop("update module", err); ignored || err != nil {
		return err
	}

	s.publish(req.ID)
	return nil
}

// DeleteModule removes a module and every item it owns
func (s *service) DeleteModule(ctx context.Context, id types.ModuleID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.store.DeleteModule(id)
	if ignored, err := notFoundNoop("delete module", err); ignored || err != nil {
		return err
	}

	slog.Info("module deleted", "module_id", id)
	s.publish(id)
	return nil
}

// ReorderModules moves the module at from to index to
func (s *service) ReorderModules(ctx context.Context, from, to int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.store.ReorderModules(from, to); err != nil {
		return fmt.Errorf("failed to reorder modules: %w", err)
	}
	s.publish(types.Unassigned)
	return nil
}

// validateName trims the name and checks it against the module name rules
func validateName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", ErrEmptyName
	}
	if utf8.RuneCountInString(name) > models.MaxModuleNameLength {
		return "", ErrNameTooLong
	}
	return name, nil
}

// notFoundNoop logs and swallows a not-found error. It reports whether the
// error was swallowed, and wraps any other error.
func notFoundNoop(op string, err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, models.ErrNotFound) {
		slog.Warn("ignoring operation on missing module", "op", op, "error", err)
		return true, nil
	}
	return false, fmt.Errorf("failed to %s: %w", op, err)
}

// publish notifies subscribers that the module list changed
func (s *service) publish(id types.ModuleID) {
	events.Publish(s.eventClient, events.Event{
		Type:     events.EventModulesChanged,
		ModuleID: id,
	})
}
