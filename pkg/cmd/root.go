// Package cmd defines the gait command-line interface.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ksysoev/gait/pkg/git"
	"github.com/ksysoev/gait/pkg/logging"
)

// Options stores global CLI options shared between commands.
type Options struct {
	TestMode bool
	LogLevel string
}

// Execute builds the root command, runs it with the provided args and
// logger, and returns any error.
func Execute(args []string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.New(os.Stderr, slog.LevelInfo)
	}

	opts := &Options{LogLevel: "info"}

	rootCmd := newRootCommand(opts, logger)
	rootCmd.SetArgs(args)

	return rootCmd.Execute()
}

// newRootCommand constructs the root cobra.Command. Anything that is
// not a known subcommand is handed to the real git binary, so gait can
// replace git in day-to-day use.
func newRootCommand(opts *Options, logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gait <git-command>",
		Short: "gait wraps git with AI commit messages, pull requests and TODO tracking",
		Long: "gait is a git wrapper: unknown commands pass through to git unchanged, " +
			"while commit, pr, todo and check add AI-generated commit messages, " +
			"pull-request drafting and TODO-to-issue conversion on top.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			os.Exit(git.Run(args))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&opts.TestMode, "test", false, "Run the issue tracker in test mode (no network calls)")

	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		level := logging.ParseLevel(opts.LogLevel)
		logger = logging.New(os.Stderr, level)
		cmd.SetContext(context.WithValue(cmd.Context(), loggerKey{}, logger))
	}

	cmd.AddCommand(
		newCommitCommand(opts),
		newPRCommand(opts),
		newTodoCommand(opts),
		newCheckCommand(opts),
	)

	return cmd
}

// loggerKey is a private context key used to store a logger in command
// contexts.
type loggerKey struct{}

// LoggerFromContext extracts a logger from the context or falls back
// to a default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return logging.New(os.Stderr, slog.LevelInfo)
	}
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && l != nil {
		return l
	}
	return logging.New(os.Stderr, slog.LevelInfo)
}
