package core

import "context"

// IssueRequest carries the data sent to the tracker for one TODO.
type IssueRequest struct {
	Title    string
	FilePath string
	Context  string
}

// Tracker creates issues in an external project tracker and returns
// their identifier. Failures are returned as values and handled per
// TODO by the pipeline; a failed creation never aborts the run.
type Tracker interface {
	CreateIssue(ctx context.Context, req IssueRequest) (string, error)
}
