package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrEmptyDiff reports a pipeline run without any diff text.
var ErrEmptyDiff = errors.New("empty diff")

// ProcessDiff runs the TODO pipeline over a unified diff. TODO lines
// that already carry a valid issue reference pass through unchanged
// and are recorded with that identifier. For the rest, issues are
// created sequentially in extraction order so line ordering and issue
// titles stay deterministic, and each successful creation rewrites the
// line to "<indent><symbol> TODO(<id>): <comment>" and queues a
// FileEdit under the owning file. A failed creation keeps the original
// line and records an empty identifier; only an entirely empty diff is
// an error.
func ProcessDiff(ctx context.Context, diff string, tracker Tracker, logger *slog.Logger) (Result, error) {
	if strings.TrimSpace(diff) == "" {
		return Result{}, ErrEmptyDiff
	}
	if logger == nil {
		logger = slog.Default()
	}

	st := scanDiff(diff)

	result := Result{
		Todos: make([]TodoMatch, 0, len(st.todos)),
		Edits: make(map[string][]FileEdit),
	}

	for _, c := range st.todos {
		if c.resolved {
			result.Todos = append(result.Todos, c.todo)
			continue
		}

		id, err := tracker.CreateIssue(ctx, IssueRequest{
			Title:    c.todo.Comment,
			FilePath: c.todo.File,
			Context:  c.todo.Context,
		})
		if err != nil {
			logger.Warn("issue creation failed, keeping original line",
				"file", c.todo.File, "comment", c.todo.Comment, "error", err)
			result.Todos = append(result.Todos, c.todo)
			continue
		}

		c.todo.IssueID = id
		rewritten := fmt.Sprintf("+%s%s TODO(%s): %s", c.todo.Indent, c.todo.Symbol, id, c.todo.Comment)
		st.lines[c.index] = rewritten

		result.Edits[c.todo.File] = append(result.Edits[c.todo.File], FileEdit{
			Old: strings.TrimSpace(strings.TrimPrefix(c.todo.Line, "+")),
			New: strings.TrimSpace(strings.TrimPrefix(rewritten, "+")),
		})
		result.Todos = append(result.Todos, c.todo)
	}

	result.Diff = strings.Join(st.lines, "\n")

	return result, nil
}
