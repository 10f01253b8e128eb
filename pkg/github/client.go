// Package github wraps the GitHub API operations used by gait.
package github

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"
)

// Client talks to the GitHub API for a single repository.
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient builds a client for the owner/repo slug using a static
// token.
func NewClient(ctx context.Context, token, slug string) (*Client, error) {
	parts := strings.Split(strings.TrimSpace(slug), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid repository slug %q, expected owner/repo", slug)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{client: github.NewClient(tc), owner: parts[0], repo: parts[1]}, nil
}

// CheckAuth verifies that the configured token is accepted and returns
// the authenticated login.
func (c *Client) CheckAuth(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("github authentication failed: %w", err)
	}
	return user.GetLogin(), nil
}

// DefaultBranch returns the repository's default branch name.
func (c *Client) DefaultBranch(ctx context.Context) (string, error) {
	repo, _, err := c.client.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return "", fmt.Errorf("failed to get repository %s/%s: %w", c.owner, c.repo, err)
	}
	return repo.GetDefaultBranch(), nil
}

// CreatePullRequest opens a pull request from head into base and
// returns its URL.
func (c *Client) CreatePullRequest(ctx context.Context, title, body, head, base string) (string, error) {
	pr, _, err := c.client.PullRequests.Create(ctx, c.owner, c.repo, &github.NewPullRequest{
		Title: &title,
		Body:  &body,
		Head:  &head,
		Base:  &base,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create pull request: %w", err)
	}
	return pr.GetHTMLURL(), nil
}

// PullRequestDiff fetches the unified diff of a pull request.
func (c *Client) PullRequestDiff(ctx context.Context, number int) (string, error) {
	diff, _, err := c.client.PullRequests.GetRaw(ctx, c.owner, c.repo, number, github.RawOptions{Type: github.Diff})
	if err != nil {
		return "", fmt.Errorf("failed to get diff for PR #%d: %w", number, err)
	}
	return diff, nil
}

// PullRequestHead returns the head branch of a pull request.
func (c *Client) PullRequestHead(ctx context.Context, number int) (string, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return "", fmt.Errorf("failed to get PR #%d: %w", number, err)
	}
	return pr.GetHead().GetRef(), nil
}

// IsMergedTo reports whether the pull request is merged into the given
// target branch.
func (c *Client) IsMergedTo(ctx context.Context, number int, target string) (bool, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return false, fmt.Errorf("failed to get PR #%d: %w", number, err)
	}
	return pr.GetMerged() && pr.GetBase().GetRef() == target, nil
}
