package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksysoev/gait/pkg/config"
	"github.com/ksysoev/gait/pkg/core"
	"github.com/ksysoev/gait/pkg/git"
	"github.com/ksysoev/gait/pkg/linear"
)

func newTodoCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "todo",
		Short: "Create tracker issues for new TODO comments in the staged diff",
		Long: "Scans the staged diff for added TODO comments without an issue reference, " +
			"creates a Linear issue for each one, and rewrites both the comment and the " +
			"working-tree file to embed the issue identifier.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTodo(cmd.Context(), opts)
		},
	}
}

func runTodo(ctx context.Context, opts *Options) error {
	logger := LoggerFromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	diff, err := git.StagedDiff(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diff) == "" {
		return fmt.Errorf("no staged changes found")
	}

	tracker, err := linear.New(linear.Config{
		APIKey:      cfg.Linear.APIKey,
		TeamID:      cfg.Linear.TeamID,
		ProjectID:   cfg.Linear.ProjectID,
		IssuePrefix: cfg.Linear.IssuePrefix,
		TestMode:    opts.TestMode,
	}, logger)
	if err != nil {
		return err
	}

	result, err := core.ProcessDiff(ctx, diff, tracker, logger)
	if err != nil {
		return err
	}

	if len(result.Todos) == 0 {
		fmt.Println("No TODO comments found in the staged diff.")
		return nil
	}

	core.SyncFiles(".", result.Edits, logger)
	printTodoSummary(result.Todos)

	return nil
}

func printTodoSummary(todos []core.TodoMatch) {
	w := os.Stdout
	for _, todo := range todos {
		switch {
		case todo.IssueID != "" && todo.IssueID == todo.Context:
			fmt.Fprintf(w, "  tracked  %s  %s: %s\n", todo.IssueID, todo.File, todo.Comment)
		case todo.IssueID != "":
			fmt.Fprintf(w, "  created  %s  %s: %s\n", todo.IssueID, todo.File, todo.Comment)
		default:
			fmt.Fprintf(w, "  failed   -       %s: %s\n", todo.File, todo.Comment)
		}
	}
}

// processTodos runs the TODO pipeline over a diff on behalf of other
// commands, syncing rewrites into the working tree. Tracker
// configuration problems skip the step instead of failing the caller.
func processTodos(ctx context.Context, cfg *config.Config, opts *Options, diff string, logger *slog.Logger) string {
	if !opts.TestMode && !cfg.Linear.Configured() {
		logger.Debug("no Linear configuration, skipping TODO processing")
		return diff
	}

	tracker, err := linear.New(linear.Config{
		APIKey:      cfg.Linear.APIKey,
		TeamID:      cfg.Linear.TeamID,
		ProjectID:   cfg.Linear.ProjectID,
		IssuePrefix: cfg.Linear.IssuePrefix,
		TestMode:    opts.TestMode,
	}, logger)
	if err != nil {
		logger.Warn("skipping TODO processing", "error", err)
		return diff
	}

	result, err := core.ProcessDiff(ctx, diff, tracker, logger)
	if err != nil {
		logger.Warn("skipping TODO processing", "error", err)
		return diff
	}

	core.SyncFiles(".", result.Edits, logger)
	for _, todo := range result.Todos {
		if todo.IssueID != "" && todo.Context != todo.IssueID {
			logger.Info("created issue", "id", todo.IssueID, "file", todo.File, "comment", todo.Comment)
		}
	}

	return result.Diff
}
