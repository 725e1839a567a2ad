package outline

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/coursekit/internal/app"
	"github.com/thenoetrevino/coursekit/internal/cli"
	"github.com/thenoetrevino/coursekit/internal/cli/styles"
	"github.com/thenoetrevino/coursekit/internal/models"
)

// OutlineCmd returns the outline subcommand
func OutlineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outline",
		Short: "Print the course outline",
		Long: `Print every module with its items, in order, followed by the
unassigned pool. With --query only matching modules and items are shown,
the same way the search box filters the editor.`,
		Args: cobra.NoArgs,
		RunE: runOutline,
	}

	cmd.Flags().String("query", "", "Filter modules and items by a case-insensitive substring")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ids in outline order)")

	return cmd
}

func runOutline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	query, _ := cmd.Flags().GetString("query")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	out := cmd.OutOrStdout()
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode, Out: out, Err: cmd.ErrOrStderr()}

	if jsonOutput && quietMode {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_FLAGS",
			"--json and --quiet cannot be combined",
			"Pick one output mode"); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return &cli.CommandError{Code: cli.ExitUsage, Err: fmt.Errorf("conflicting output flags")}
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("failed to format error message", "error", fmtErr)
		}
		return err
	}

	cliInstance.App.SetQuery(query)
	view := cliInstance.App.View()

	switch {
	case quietMode:
		return writeQuiet(out, view)
	case jsonOutput:
		return writeJSON(out, view)
	default:
		return writeStyled(out, view)
	}
}

// ============================================================================
// OUTPUT
// ============================================================================

type itemJSON struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Type    string `json:"type"`
	Payload string `json:"payload"`
}

type moduleJSON struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []itemJSON `json:"items"`
}

func toItemsJSON(items []models.Item) []itemJSON {
	out := make([]itemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, itemJSON{
			ID:      string(it.ID),
			Title:   it.Title,
			Type:    string(it.Type),
			Payload: it.Payload,
		})
	}
	return out
}

func writeJSON(w io.Writer, view app.CourseView) error {
	modules := make([]moduleJSON, 0, len(view.Modules))
	for _, m := range view.Modules {
		modules = append(modules, moduleJSON{
			ID:    string(m.ID),
			Name:  m.Name,
			Items: toItemsJSON(view.ByModule[m.ID]),
		})
	}

	return json.NewEncoder(w).Encode(map[string]any{
		"success":    true,
		"query":      view.Query,
		"modules":    modules,
		"unassigned": toItemsJSON(view.Unassigned),
	})
}

func writeQuiet(w io.Writer, view app.CourseView) error {
	var b strings.Builder
	for _, it := range view.Unassigned {
		fmt.Fprintf(&b, "%s\n", it.ID)
	}
	for _, m := range view.Modules {
		fmt.Fprintf(&b, "%s\n", m.ID)
		for _, it := range view.ByModule[m.ID] {
			fmt.Fprintf(&b, "  %s\n", it.ID)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeStyled(w io.Writer, view app.CourseView) error {
	if view.Empty {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No modules yet. Create one to get started."))
		return err
	}
	if len(view.Modules) == 0 && len(view.Unassigned) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render(fmt.Sprintf("Nothing matches %q", view.Query)))
		return err
	}

	var b strings.Builder
	if len(view.Unassigned) > 0 {
		b.WriteString(styles.SectionStyle.Render("Unassigned"))
		b.WriteString("\n")
		writeItems(&b, view.Unassigned, view.Query)
		b.WriteString("\n")
	}

	for _, m := range view.Modules {
		b.WriteString(styles.Highlighted(m.Name, view.Query, styles.TitleStyle))
		b.WriteString("  ")
		b.WriteString(styles.SubtitleStyle.Render(app.ItemCountLabel(view.ItemCounts[m.ID])))
		b.WriteString("\n")
		writeItems(&b, view.ByModule[m.ID], view.Query)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeItems(b *strings.Builder, items []models.Item, query string) {
	for i, it := range items {
		branch := "├── "
		if i == len(items)-1 {
			branch = "└── "
		}
		b.WriteString(styles.SubtitleStyle.Render(branch))
		b.WriteString(styles.TypeBadge(it.Type))
		b.WriteString(" ")
		b.WriteString(styles.Highlighted(it.Title, query, styles.ValueStyle))
		b.WriteString("\n")
	}
}
