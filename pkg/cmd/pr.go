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
	"github.com/ksysoev/gait/pkg/github"
	"github.com/ksysoev/gait/pkg/term"
)

func newPRCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "pr",
		Short: "Generate and open a pull request for the current branch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPR(cmd.Context(), opts)
		},
	}
}

func runPR(ctx context.Context, _ *Options) error {
	logger := LoggerFromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.GitHub.Validate(); err != nil {
		return err
	}

	branch, err := git.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	base := git.DefaultBranch(ctx)
	logger.Debug("resolved branches", "head", branch, "base", base)

	diff, commits, err := git.BranchChanges(ctx, base, branch)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diff) == "" && strings.TrimSpace(commits) == "" {
		return fmt.Errorf("no changes between origin/%s and origin/%s; have you pushed?", base, branch)
	}

	gen, err := ai.NewGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if err != nil {
		return err
	}

	title, body, err := gen.PRContent(ctx, diff, commits)
	if err != nil {
		return err
	}

	prompter := term.NewPrompter(os.Stdin, os.Stdout)
	for {
		prompter.Printf("\nGenerated PR title: %s\n\nGenerated PR body:\n-------------------\n%s\n-------------------\n\n", title, body)

		answer, err := prompter.Confirm("Would you like to create this PR?")
		if err != nil {
			return err
		}

		switch answer {
		case term.AnswerNo:
			prompter.Cancelled("PR creation cancelled.")
			return nil
		case term.AnswerEdit:
			title, err = prompter.ReadLine("Enter new title (press Enter to keep current): ", title)
			if err != nil {
				return err
			}
			body, err = prompter.ReadMultiline("Enter new body (Ctrl+D with no text to keep current)", body)
			if err != nil {
				return err
			}
			continue
		}
		break
	}

	slug, err := git.OriginSlug(ctx)
	if err != nil {
		return err
	}

	client, err := github.NewClient(ctx, cfg.GitHub.Token, slug)
	if err != nil {
		return err
	}

	url, err := client.CreatePullRequest(ctx, title, body, branch, base)
	if err != nil {
		return err
	}

	fmt.Println("Created pull request:", url)

	return nil
}
