package core

// TodoMatch records one detected TODO comment on an added diff line.
type TodoMatch struct {
	// File is the path owning the line, taken from the most recent
	// "+++" header seen before it, without the "b/" prefix.
	File string
	// Line is the original diff line, including the leading "+".
	Line string
	// Context is the token inside TODO(...), empty when absent.
	Context string
	// IssueID is the resolved issue identifier. It equals Context when
	// the line already carried a valid identifier, holds the newly
	// created identifier on success, and stays empty when creation
	// failed.
	IssueID string
	// Comment is the trimmed free text after the colon.
	Comment string
	// Indent is the whitespace between the "+" marker and the comment
	// opener.
	Indent string
	// Symbol is the comment symbol used when rewriting, "#" or "//".
	Symbol string
}

// FileEdit is a pending substitution in one file. Old and New hold
// line content without the diff marker and without surrounding
// whitespace; the synchronizer matches ignoring indentation and keeps
// whatever indentation the file line already has.
type FileEdit struct {
	Old string
	New string
}

// Result is the outcome of a pipeline run over one diff.
type Result struct {
	// Diff is the rewritten diff text.
	Diff string
	// Todos lists every detected TODO in extraction order.
	Todos []TodoMatch
	// Edits maps file paths to pending working-tree substitutions.
	Edits map[string][]FileEdit
}
