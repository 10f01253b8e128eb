package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ksysoev/gait/pkg/ai"
	"github.com/ksysoev/gait/pkg/config"
	"github.com/ksysoev/gait/pkg/git"
	"github.com/ksysoev/gait/pkg/github"
	"github.com/ksysoev/gait/pkg/linear"
)

func newCheckCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify OpenAI, GitHub and Linear configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), opts)
		},
	}
}

func runCheck(ctx context.Context, opts *Options) error {
	logger := LoggerFromContext(ctx)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	failures := 0

	if err := checkOpenAI(ctx, cfg); err != nil {
		failures++
		fmt.Printf("✗ OpenAI: %v\n", err)
	} else {
		fmt.Printf("✓ OpenAI: connected, model %s\n", cfg.OpenAI.Model)
	}

	if login, slug, err := checkGitHub(ctx, cfg); err != nil {
		failures++
		fmt.Printf("✗ GitHub: %v\n", err)
	} else {
		fmt.Printf("✓ GitHub: authenticated as %s on %s\n", login, slug)
	}

	if opts.TestMode {
		fmt.Println("✓ Linear: test mode, no configuration needed")
	} else if err := cfg.Linear.Validate(); err != nil {
		failures++
		fmt.Printf("✗ Linear: %v\n", err)
	} else if _, err := linear.New(linear.Config{
		APIKey:      cfg.Linear.APIKey,
		TeamID:      cfg.Linear.TeamID,
		ProjectID:   cfg.Linear.ProjectID,
		IssuePrefix: cfg.Linear.IssuePrefix,
	}, logger); err != nil {
		failures++
		fmt.Printf("✗ Linear: %v\n", err)
	} else {
		fmt.Println("✓ Linear: configuration complete")
	}

	if failures > 0 {
		return fmt.Errorf("%d check(s) failed", failures)
	}

	return nil
}

func checkOpenAI(ctx context.Context, cfg *config.Config) error {
	gen, err := ai.NewGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model)
	if err != nil {
		return err
	}
	return gen.Check(ctx)
}

func checkGitHub(ctx context.Context, cfg *config.Config) (string, string, error) {
	if err := cfg.GitHub.Validate(); err != nil {
		return "", "", err
	}

	slug, err := git.OriginSlug(ctx)
	if err != nil {
		return "", "", err
	}

	client, err := github.NewClient(ctx, cfg.GitHub.Token, slug)
	if err != nil {
		return "", "", err
	}

	login, err := client.CheckAuth(ctx)
	if err != nil {
		return "", "", err
	}

	return login, slug, nil
}
