// Package config loads gait configuration from .env files and the
// process environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// OpenAI holds settings for the generation client.
type OpenAI struct {
	APIKey string `env:"OPENAI_API_KEY"`
	Model  string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Linear holds settings for the issue tracker client.
type Linear struct {
	APIKey      string `env:"LINEAR_API_KEY"`
	TeamID      string `env:"LINEAR_TEAM_ID"`
	ProjectID   string `env:"LINEAR_PROJECT_ID"`
	IssuePrefix string `env:"LINEAR_ISSUE_PREFIX" envDefault:"ENG"`
}

// GitHub holds the token used for pull-request operations.
type GitHub struct {
	Token string `env:"GITHUB_TOKEN"`
}

// Config is the full gait configuration.
type Config struct {
	OpenAI   OpenAI
	Linear   Linear
	GitHub   GitHub
	LogLevel string `env:"GAIT_LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file from the working directory, then
// parses the process environment. Values from the .env file override
// already-exported variables.
func Load() (*Config, error) {
	_ = godotenv.Overload()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// Validate reports a missing OpenAI API key.
func (o OpenAI) Validate() error {
	if strings.TrimSpace(o.APIKey) == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}
	return nil
}

// Configured reports whether any Linear setting is present at all,
// used to decide between "skip the tracker" and "fail loudly".
func (l Linear) Configured() bool {
	return l.APIKey != "" || l.TeamID != "" || l.ProjectID != ""
}

// Validate names every missing Linear variable.
func (l Linear) Validate() error {
	var missing []string
	if strings.TrimSpace(l.APIKey) == "" {
		missing = append(missing, "LINEAR_API_KEY")
	}
	if strings.TrimSpace(l.TeamID) == "" {
		missing = append(missing, "LINEAR_TEAM_ID")
	}
	if strings.TrimSpace(l.ProjectID) == "" {
		missing = append(missing, "LINEAR_PROJECT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing Linear configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Validate reports a missing GitHub token.
func (g GitHub) Validate() error {
	if strings.TrimSpace(g.Token) == "" {
		return fmt.Errorf("GITHUB_TOKEN is not set")
	}
	return nil
}
