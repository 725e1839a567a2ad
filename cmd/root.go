package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/coursekit/internal/cli"
	"github.com/thenoetrevino/coursekit/internal/cli/outline"
	"github.com/thenoetrevino/coursekit/internal/cli/styles"
	"github.com/thenoetrevino/coursekit/internal/config"
	"github.com/thenoetrevino/coursekit/internal/logging"
	"github.com/thenoetrevino/coursekit/internal/tui"
)

// NewRootCmd builds the coursekit command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coursekit",
		Short: "coursekit - A terminal course outline builder",
		Long: `coursekit builds a course outline: ordered modules holding links and
uploaded files, rearranged by dragging and filtered as you type.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			c, err := cli.GetCLIFromContext(cmd.Context())
			if err != nil {
				return nil
			}
			return c.Close()
		},
		RunE: runEditor,
	}

	rootCmd.PersistentFlags().String("seed", "", "YAML outline to load at startup")
	rootCmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/coursekit/config.yaml)")

	rootCmd.AddCommand(outline.OutlineCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitCodeFor(err)
	}
	return cli.ExitSuccess
}

// setup initializes logging, config, styles, and the application container
func setup(cmd *cobra.Command, args []string) error {
	if err := logging.Init(); err != nil {
		// Logging is best effort; the editor still works without a log file
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	var (
		cfg *config.Config
		err error
	)
	if cfgPath != "" {
		cfg, err = config.LoadFile(cfgPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return &cli.CommandError{Code: cli.ExitDataErr, Err: fmt.Errorf("failed to load config: %w", err)}
	}
	styles.Init(cfg.ColorScheme)

	seedPath, _ := cmd.Flags().GetString("seed")
	c, err := cli.NewCLI(cmd.Context(), cli.Options{SeedPath: seedPath, Config: cfg})
	if err != nil {
		return err
	}

	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	slog.Info("coursekit started", "command", cmd.Name(), "seed", seedPath)
	return nil
}

// runEditor launches the interactive editor
func runEditor(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	model := tui.New(c.App, c.Config)
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
