// Package core implements the TODO-to-issue pipeline: scanning a
// unified diff for added TODO comments, creating tracker issues for
// the ones that are not referenced yet, rewriting the diff lines to
// embed the identifiers, and synchronizing the working tree.
package core

import (
	"regexp"
	"strings"
)

// todoLine is the grammar for an added TODO line: the "+" marker,
// optional indent, a comment opener ("#", "//" or "/*"), optional
// spaces, the TODO keyword, an optional parenthesized context, a
// colon, whitespace, free text, and an optional trailing "*/" with
// trailing whitespace ignored.
var todoLine = regexp.MustCompile(`^\+(\s*)(#|//|/\*)\s*TODO(?:\(([^)]*)\))?:\s+(.*?)(?:\s*\*/)?\s*$`)

// issueRef matches identifiers handed out by the tracker, e.g. ENG-42.
// A context token of this shape marks the TODO as already processed.
var issueRef = regexp.MustCompile(`^[A-Z]{2,}-\d+$`)

const newFileHeader = "+++ "

// candidate is a TODO detected during the scan. index points at its
// position in the output line slice so the rewriter can replace it.
type candidate struct {
	index    int
	resolved bool
	todo     TodoMatch
}

// scanState is the accumulator threaded through the diff scan.
type scanState struct {
	file  string
	lines []string
	todos []candidate
}

// scanDiff folds over the diff lines, tracking the current file from
// "+++" headers and collecting TODO candidates on added lines. Lines
// that are not added TODO lines pass through untouched, as do TODO
// lines seen before any file header, since those have no file to
// attach an edit to.
func scanDiff(diff string) scanState {
	st := scanState{}
	for _, line := range strings.Split(diff, "\n") {
		st = st.step(line)
	}
	return st
}

func (st scanState) step(line string) scanState {
	if strings.HasPrefix(line, newFileHeader) {
		path := strings.TrimSpace(strings.TrimPrefix(line, newFileHeader))
		st.file = strings.TrimPrefix(path, "b/")
		st.lines = append(st.lines, line)
		return st
	}

	m := todoLine.FindStringSubmatch(line)
	if m == nil || st.file == "" {
		st.lines = append(st.lines, line)
		return st
	}

	todo := TodoMatch{
		File:    st.file,
		Line:    line,
		Context: m[3],
		Comment: strings.TrimSpace(m[4]),
		Indent:  m[1],
		Symbol:  commentSymbol(line),
	}

	c := candidate{index: len(st.lines), todo: todo}
	if issueRef.MatchString(todo.Context) {
		c.resolved = true
		c.todo.IssueID = todo.Context
	}

	st.todos = append(st.todos, c)
	st.lines = append(st.lines, line)
	return st
}

// commentSymbol picks the symbol used when reconstructing a line. "#"
// wins when present anywhere in the original line, else "//".
func commentSymbol(line string) string {
	if strings.Contains(line, "#") {
		return "#"
	}
	return "//"
}
