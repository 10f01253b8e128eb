// Package ai generates commit messages and pull-request content from
// diffs through the OpenAI API.
package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const commitSystemPrompt = "You are a highly knowledgeable assistant specialized " +
	"in software development and version control systems."

const prSystemPrompt = "You are a helpful assistant specialized in creating clear " +
	"and informative pull request descriptions. Focus on making the changes " +
	"easy to understand and review."

// Generator produces commit and pull-request text.
type Generator struct {
	client *openai.Client
	model  string
}

// NewGenerator validates the API key and constructs a generator.
func NewGenerator(apiKey, model string) (*Generator, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Generator{client: openai.NewClient(apiKey), model: model}, nil
}

// CommitMessage generates a single-line conventional-commit subject
// for the staged diff.
func (g *Generator) CommitMessage(ctx context.Context, diff string) (string, error) {
	prompt := fmt.Sprintf(`The following Git diff input is in Unified Diff format,
which displays changes made to files in a version control system.
Analyze the changes and generate a clear, concise commit message that summarizes the main modifications.
Focus on describing the purpose or function of the changes.
Generate a concise commit message following conventional commits format.
Requirements:
- Single line
- Max 50 characters

Git diff:
%s`, diff)

	content, err := g.complete(ctx, commitSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("generate commit message: %w", err)
	}

	return strings.TrimSpace(content), nil
}

// PRContent generates a pull-request title and body from the branch
// diff and its commit subjects.
func (g *Generator) PRContent(ctx context.Context, diff, commits string) (string, string, error) {
	prompt := fmt.Sprintf(`Based on the following git diff and commit messages, generate a pull request title and detailed body.
The body should include:
- A summary of changes
- Key modifications
- Any important notes

Commits:
%s

Diff:
%s

Format the response exactly as:
TITLE: <title>
BODY:
<body>`, commits, diff)

	content, err := g.complete(ctx, prSystemPrompt, prompt)
	if err != nil {
		return "", "", fmt.Errorf("generate PR content: %w", err)
	}

	return parsePRContent(content)
}

// Check performs a minimal authenticated call to verify the API key
// and connectivity.
func (g *Generator) Check(ctx context.Context) error {
	if _, err := g.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai connection check failed: %w", err)
	}
	return nil
}

func (g *Generator) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// parsePRContent splits a TITLE:/BODY: formatted response.
func parsePRContent(content string) (string, string, error) {
	_, rest, ok := strings.Cut(content, "TITLE:")
	if !ok {
		return "", "", fmt.Errorf("response missing TITLE section")
	}

	title, body, ok := strings.Cut(rest, "BODY:")
	if !ok {
		return "", "", fmt.Errorf("response missing BODY section")
	}

	return strings.TrimSpace(title), strings.TrimSpace(body), nil
}
