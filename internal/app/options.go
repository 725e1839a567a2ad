package app

import (
	"log/slog"

	"github.com/thenoetrevino/coursekit/internal/events"
	"github.com/thenoetrevino/coursekit/internal/outline"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	outline     outline.Config
}

// WithEventPublisher sets the event publisher for the application.
// Without it the app creates and owns an in-process bus.
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithOutlineConfig sets active-module and scrolling behavior
func WithOutlineConfig(c outline.Config) Option {
	return func(cfg *appConfig) {
		cfg.outline = c
	}
}
