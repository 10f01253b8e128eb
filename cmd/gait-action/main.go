package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/sethvargo/go-githubactions"

	"github.com/ksysoev/gait/pkg/config"
	"github.com/ksysoev/gait/pkg/core"
	"github.com/ksysoev/gait/pkg/github"
	"github.com/ksysoev/gait/pkg/linear"
	"github.com/ksysoev/gait/pkg/logging"
)

// main is the GitHub Action entry point: on a merged pull request it
// fetches the PR diff, runs the TODO pipeline against Linear, and
// syncs the rewritten comments into the Action workspace.
func main() {
	action := githubactions.New()
	ctx := context.Background()
	logger := logging.New(os.Stderr, slog.LevelInfo)

	token := action.GetInput("github_token")
	if token == "" {
		token = os.Getenv("GAIT_GITHUB_TOKEN")
		if token == "" {
			action.Fatalf("github_token input is required")
		}
	}

	branchName := action.GetInput("branch_name")
	if branchName == "" {
		branchName = "main"
	}

	testMode := action.GetInput("test_mode") == "true"

	eventName := os.Getenv("GITHUB_EVENT_NAME")
	if eventName != "pull_request" && eventName != "workflow_dispatch" {
		action.Fatalf("This action only works on pull_request or workflow_dispatch events, got: %s", eventName)
	}

	repoFullName := os.Getenv("GITHUB_REPOSITORY")
	if repoFullName == "" {
		action.Fatalf("GITHUB_REPOSITORY environment variable is not set")
	}

	workspace := os.Getenv("GITHUB_WORKSPACE")
	if workspace == "" {
		action.Fatalf("GITHUB_WORKSPACE environment variable is not set")
	}

	prNumber, err := resolvePRNumber(action, eventName)
	if err != nil {
		action.Fatalf("Failed to resolve PR number: %v", err)
	}

	client, err := github.NewClient(ctx, token, repoFullName)
	if err != nil {
		action.Fatalf("Failed to create GitHub client: %v", err)
	}

	if eventName == "pull_request" {
		merged, err := client.IsMergedTo(ctx, prNumber, branchName)
		if err != nil {
			action.Fatalf("Failed to check if PR is merged: %v", err)
		}
		if !merged {
			action.Infof("PR #%d is not merged to %s yet. Skipping TODO processing.", prNumber, branchName)
			return
		}
	}

	diff, err := client.PullRequestDiff(ctx, prNumber)
	if err != nil {
		action.Fatalf("Failed to fetch PR diff: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		action.Fatalf("Failed to load configuration: %v", err)
	}

	tracker, err := linear.New(linear.Config{
		APIKey:      cfg.Linear.APIKey,
		TeamID:      cfg.Linear.TeamID,
		ProjectID:   cfg.Linear.ProjectID,
		IssuePrefix: cfg.Linear.IssuePrefix,
		TestMode:    testMode,
	}, logger)
	if err != nil {
		action.Fatalf("Tracker configuration: %v", err)
	}

	result, err := core.ProcessDiff(ctx, diff, tracker, logger)
	if errors.Is(err, core.ErrEmptyDiff) {
		action.Infof("PR #%d has an empty diff. Nothing to do.", prNumber)
		return
	}
	if err != nil {
		action.Fatalf("TODO pipeline failed: %v", err)
	}

	core.SyncFiles(workspace, result.Edits, logger)

	created := 0
	for _, todo := range result.Todos {
		if todo.IssueID != "" && todo.IssueID != todo.Context {
			created++
			action.Infof("Created issue %s for TODO in %s: %s", todo.IssueID, todo.File, todo.Comment)
		}
	}

	action.Infof("Processed %d TODO comments, created %d issues", len(result.Todos), created)
}

// resolvePRNumber extracts the PR number from GITHUB_REF for
// pull_request events (refs/pull/<number>/merge) and from the
// pr_number input for workflow_dispatch runs.
func resolvePRNumber(action *githubactions.Action, eventName string) (int, error) {
	if eventName == "workflow_dispatch" {
		input := action.GetInput("pr_number")
		if input == "" {
			return 0, fmt.Errorf("pr_number input is required for workflow_dispatch runs")
		}
		return strconv.Atoi(input)
	}

	ref := os.Getenv("GITHUB_REF")
	const pullPrefix = "refs/pull/"
	if strings.HasPrefix(ref, pullPrefix) {
		numStr := strings.SplitN(strings.TrimPrefix(ref, pullPrefix), "/", 2)[0]
		return strconv.Atoi(numStr)
	}

	if refName := os.Getenv("GITHUB_REF_NAME"); refName != "" {
		return strconv.Atoi(strings.SplitN(refName, "/", 2)[0])
	}

	return 0, fmt.Errorf("could not extract PR number from ref %q", ref)
}
