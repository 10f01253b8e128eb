package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksysoev/gait/pkg/ai"
	"github.com/ksysoev/gait/pkg/config"
	"github.com/ksysoev/gait/pkg/git"
	"github.com/ksysoev/gait/pkg/term"
)

func newCommitCommand(opts *Options) *cobra.Command {
	var withTodos bool

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message for the staged changes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCommit(cmd.Context(), opts, withTodos)
		},
	}

	cmd.Flags().BoolVar(&withTodos, "todos", false, "Convert new TODO comments into tracker issues before committing")

	return cmd
}

func runCommit(ctx context.Context, opts *Options, withTodos bool) error {
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

	if withTodos {
		diff = processTodos(ctx, cfg, opts, diff, logger)
	}

	gen, err := ai.NewGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if err != nil {
		return err
	}

	message, err := gen.CommitMessage(ctx, diff)
	if err != nil {
		return err
	}

	prompter := term.NewPrompter(os.Stdin, os.Stdout)
	for {
		prompter.Printf("\nProposed commit message:\n→ %s\n\n", message)

		answer, err := prompter.Confirm("Do you want to proceed with this commit message?")
		if err != nil {
			return err
		}

		switch answer {
		case term.AnswerNo:
			prompter.Cancelled("Commit cancelled.")
			return nil
		case term.AnswerEdit:
			message, err = prompter.ReadLine("Enter new commit message: ", message)
			if err != nil {
				return err
			}
			continue
		}
		break
	}

	return git.Commit(ctx, message)
}
