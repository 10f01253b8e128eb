// Package linear implements the issue tracker boundary against the
// Linear GraphQL API.
package linear

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"

	"github.com/machinebox/graphql"

	"github.com/ksysoev/gait/pkg/core"
)

const apiURL = "https://api.linear.app/graphql"

// Config holds the credentials and identifiers required to create
// issues. In test mode none of them are needed.
type Config struct {
	APIKey      string
	TeamID      string
	ProjectID   string
	IssuePrefix string
	TestMode    bool
}

// Client creates Linear issues. In test mode it returns deterministic
// synthetic identifiers derived from the title, without touching the
// network, so repeated runs resolve the same TODO to the same issue.
type Client struct {
	cfg    Config
	gql    *graphql.Client
	logger *slog.Logger
}

// New validates the configuration and constructs a client. Outside
// test mode the API key, team id and project id are all required; when
// the API key is present but the project id is missing, the available
// teams and projects are listed to help the operator pick one, and an
// error is still returned.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.IssuePrefix == "" {
		cfg.IssuePrefix = "ENG"
	}

	c := &Client{cfg: cfg, gql: graphql.NewClient(apiURL), logger: logger}
	if cfg.TestMode {
		return c, nil
	}

	var missing []string
	for _, v := range []struct{ name, value string }{
		{"LINEAR_API_KEY", cfg.APIKey},
		{"LINEAR_TEAM_ID", cfg.TeamID},
		{"LINEAR_PROJECT_ID", cfg.ProjectID},
	} {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		if cfg.APIKey != "" && cfg.ProjectID == "" {
			c.listTeams(context.Background())
		}
		return nil, fmt.Errorf("missing Linear configuration: %s", strings.Join(missing, ", "))
	}

	return c, nil
}

// CreateIssue implements core.Tracker. Remote failures are logged
// together with a best-effort team/project listing and returned as
// values; the caller decides what to do with the affected TODO.
func (c *Client) CreateIssue(ctx context.Context, req core.IssueRequest) (string, error) {
	if c.cfg.TestMode {
		return c.syntheticID(req.Title), nil
	}

	mutation := graphql.NewRequest(`
mutation CreateIssue($title: String!, $teamId: String!, $projectId: String!) {
  issueCreate(input: {title: $title, teamId: $teamId, projectId: $projectId}) {
    success
    issue {
      identifier
    }
  }
}`)
	mutation.Var("title", req.Title)
	mutation.Var("teamId", c.cfg.TeamID)
	mutation.Var("projectId", c.cfg.ProjectID)
	mutation.Header.Set("Authorization", c.cfg.APIKey)

	var resp struct {
		IssueCreate struct {
			Success bool `json:"success"`
			Issue   struct {
				Identifier string `json:"identifier"`
			} `json:"issue"`
		} `json:"issueCreate"`
	}

	if err := c.gql.Run(ctx, mutation, &resp); err != nil {
		c.logger.Error("issue creation rejected", "title", req.Title, "error", err)
		c.listTeams(ctx)
		return "", fmt.Errorf("create issue %q: %w", req.Title, err)
	}
	if !resp.IssueCreate.Success {
		return "", fmt.Errorf("create issue %q: tracker reported failure", req.Title)
	}

	return resp.IssueCreate.Issue.Identifier, nil
}

// syntheticID derives a stable identifier from the title.
func (c *Client) syntheticID(title string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(title))
	return fmt.Sprintf("%s-%d", c.cfg.IssuePrefix, h.Sum32()%1000)
}

// listTeams prints the available teams and projects as a diagnostic
// when identifiers are missing or rejected. Best effort only.
func (c *Client) listTeams(ctx context.Context) {
	query := graphql.NewRequest(`
query {
  teams {
    nodes {
      id
      name
      projects {
        nodes {
          id
          name
        }
      }
    }
  }
}`)
	query.Header.Set("Authorization", c.cfg.APIKey)

	var resp struct {
		Teams struct {
			Nodes []struct {
				ID       string `json:"id"`
				Name     string `json:"name"`
				Projects struct {
					Nodes []struct {
						ID   string `json:"id"`
						Name string `json:"name"`
					} `json:"nodes"`
				} `json:"projects"`
			} `json:"nodes"`
		} `json:"teams"`
	}

	if err := c.gql.Run(ctx, query, &resp); err != nil {
		c.logger.Warn("could not list Linear teams", "error", err)
		return
	}

	for _, team := range resp.Teams.Nodes {
		c.logger.Info("available team", "id", team.ID, "name", team.Name)
		for _, project := range team.Projects.Nodes {
			c.logger.Info("available project", "team", team.Name, "id", project.ID, "name", project.Name)
		}
	}
}
