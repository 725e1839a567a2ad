package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/coursekit/internal/dnd"
	"github.com/thenoetrevino/coursekit/internal/events"
	"github.com/thenoetrevino/coursekit/internal/outline"
	itemservice "github.com/thenoetrevino/coursekit/internal/services/item"
	moduleservice "github.com/thenoetrevino/coursekit/internal/services/module"
	"github.com/thenoetrevino/coursekit/internal/store"
	"github.com/thenoetrevino/coursekit/internal/types"
)

// App holds all application services and the derived state of one editing
// session. Every mutation flows through the services, which publish on the
// bus; the app recomputes its view from the bus before the publishing call
// returns.
type App struct {
	ctx    context.Context
	store  *store.Store
	logger *slog.Logger

	// Event system for change notification
	eventClient events.EventPublisher
	ownsBus     bool
	unsubscribe func()

	// Service layer (business logic)
	ModuleService moduleservice.Service
	ItemService   itemservice.Service

	// Interaction state
	Navigator *outline.Navigator
	Drag      *dnd.Coordinator

	query string
	view  CourseView
}

// Compile-time verification that *App can be driven by a drag coordinator
var _ dnd.Target = (*App)(nil)

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(opts ...Option) *App {
	cfg := appConfig{outline: outline.DefaultConfig()}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &App{
		ctx:    context.Background(),
		store:  store.New(),
		logger: cfg.logger,
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	a.eventClient = cfg.eventClient
	if a.eventClient == nil {
		a.eventClient = events.NewBus()
		a.ownsBus = true
	}

	a.ModuleService = moduleservice.NewService(a.store, a.eventClient)
	a.ItemService = itemservice.NewService(a.store, a.eventClient)
	a.Navigator = outline.NewNavigator(cfg.outline)
	a.Drag = dnd.NewCoordinator(a)

	a.unsubscribe = a.eventClient.Subscribe(a.handleEvent)
	a.refresh()
	return a
}

// Context returns the context services are called with
func (a *App) Context() context.Context {
	return a.ctx
}

// Logger returns the application logger
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// SetQuery replaces the search query and recomputes the view
func (a *App) SetQuery(q string) {
	if q == a.query {
		return
	}
	a.query = q
	a.refresh()
}

// Query returns the current search query
func (a *App) Query() string {
	return a.query
}

// ToggleOutline expands or collapses a module's outline branch
func (a *App) ToggleOutline(id types.ModuleID) {
	a.Navigator.Toggle(id)
}

// SyncOutline recomputes the active module from the latest viewport offsets
func (a *App) SyncOutline(offsets []outline.Offset) types.ModuleID {
	return a.Navigator.Sync(offsets)
}

// Close performs cleanup of application resources
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.ownsBus {
		return a.eventClient.Close()
	}
	return nil
}

func (a *App) handleEvent(e events.Event) {
	a.logger.Debug("refreshing view", "event_type", e.Type, "sequence_id", e.SequenceID)
	a.refresh()
}

// ============================================================================
// DRAG TARGET
// ============================================================================

// ReorderModules implements dnd.Target
func (a *App) ReorderModules(from, to int) error {
	return a.ModuleService.ReorderModules(a.ctx, from, to)
}

// ReorderWithinScope implements dnd.Target
func (a *App) ReorderWithinScope(scope types.ModuleID, from, to int) error {
	return a.ItemService.ReorderWithinScope(a.ctx, scope, from, to)
}

// MoveItem implements dnd.Target
func (a *App) MoveItem(id types.ItemID, target types.ModuleID) error {
	return a.ItemService.MoveItem(a.ctx, id, target)
}

// MoveItemAt implements dnd.Target
func (a *App) MoveItemAt(id types.ItemID, target types.ModuleID, index int) error {
	return a.ItemService.MoveItemAt(a.ctx, id, target, index)
}

// ModuleIndex implements dnd.Target
func (a *App) ModuleIndex(id types.ModuleID) int {
	return a.store.ModuleIndex(id)
}

// ItemScope implements dnd.Target
func (a *App) ItemScope(id types.ItemID) (types.ModuleID, bool) {
	it, ok := a.store.Item(id)
	return it.ModuleID, ok
}

// ItemIndex implements dnd.Target
func (a *App) ItemIndex(scope types.ModuleID, id types.ItemID) int {
	return a.store.ItemIndex(scope, id)
}
