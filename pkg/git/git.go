// Package git wraps the user's git binary. All repository access goes
// through subprocesses so that user configuration, aliases and hooks
// keep working exactly as with plain git.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"
)

// Run executes git with the given arguments, inheriting the standard
// streams, and returns the exit code.
func Run(args []string) int {
	cmd := exec.Command("git", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// output runs a git command and returns its trimmed stdout.
func output(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// StagedDiff returns the unified diff of the staged changes.
func StagedDiff(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", "--staged")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git diff --staged: %w", err)
	}
	return string(out), nil
}

// CurrentBranch returns the checked-out branch name.
func CurrentBranch(ctx context.Context) (string, error) {
	return output(ctx, "rev-parse", "--abbrev-ref", "HEAD")
}

// DefaultBranch resolves the default branch from origin/HEAD, falling
// back to origin/main, then origin/master, then the literal "main".
func DefaultBranch(ctx context.Context) string {
	if ref, err := output(ctx, "rev-parse", "--abbrev-ref", "origin/HEAD"); err == nil {
		return strings.TrimPrefix(ref, "origin/")
	}

	for _, branch := range []string{"main", "master"} {
		if _, err := output(ctx, "rev-parse", "origin/"+branch); err == nil {
			return branch
		}
	}

	return "main"
}

// BranchChanges returns the diff and the commit subjects between
// origin/<base> and origin/<branch>.
func BranchChanges(ctx context.Context, base, branch string) (string, string, error) {
	cmd := exec.CommandContext(ctx, "git", "diff", fmt.Sprintf("origin/%s...origin/%s", base, branch))
	out, err := cmd.Output()
	if err != nil {
		return "", "", fmt.Errorf("git diff origin/%s...origin/%s: %w", base, branch, err)
	}

	commits, err := output(ctx, "log", fmt.Sprintf("origin/%s..origin/%s", base, branch), "--pretty=format:%s")
	if err != nil {
		return "", "", err
	}

	return string(out), commits, nil
}

// Commit creates a commit with the given message, showing git's own
// output to the operator.
func Commit(ctx context.Context, message string) error {
	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// OriginSlug extracts the owner/repo slug from the origin remote URL.
func OriginSlug(ctx context.Context) (string, error) {
	url, err := output(ctx, "remote", "get-url", "origin")
	if err != nil {
		return "", err
	}
	return ParseSlug(url)
}

var slugPattern = regexp.MustCompile(`[:/]([^/:]+/[^/:]+?)(?:\.git)?$`)

// ParseSlug extracts the owner/repo slug from an ssh or https remote URL.
func ParseSlug(url string) (string, error) {
	m := slugPattern.FindStringSubmatch(strings.TrimSpace(url))
	if m == nil {
		return "", fmt.Errorf("cannot parse repository slug from %q", url)
	}
	return m[1], nil
}
