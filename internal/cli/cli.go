package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/coursekit/internal/app"
	"github.com/thenoetrevino/coursekit/internal/config"
	"github.com/thenoetrevino/coursekit/internal/seed"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	ctx    context.Context
}

// Options configures NewCLI
type Options struct {
	SeedPath string // optional YAML outline to import
	Config   *config.Config
}

// NewCLI builds the application container and imports the seed file, if any
func NewCLI(ctx context.Context, opts Options) (*CLI, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	application := app.New(app.WithOutlineConfig(cfg.Outline.OutlineConfig()))

	if opts.SeedPath != "" {
		outline, err := seed.LoadFile(opts.SeedPath)
		if err != nil {
			_ = application.Close()
			return nil, &CommandError{Code: ExitDataErr, Err: err}
		}
		if _, err := outline.Apply(ctx, application.ModuleService, application.ItemService); err != nil {
			_ = application.Close()
			return nil, fmt.Errorf("failed to import seed: %w", err)
		}
	}

	return &CLI{
		App:    application,
		Config: cfg,
		ctx:    ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}
