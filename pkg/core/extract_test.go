package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanDiff(t *testing.T) {
	tests := []struct {
		name         string
		diff         string
		wantTodos    int
		wantFile     string
		wantContext  string
		wantComment  string
		wantSymbol   string
		wantResolved bool
	}{
		{
			name:        "hash comment",
			diff:        "+++ b/a/x.py\n+    # TODO: fix bounds check",
			wantTodos:   1,
			wantFile:    "a/x.py",
			wantComment: "fix bounds check",
			wantSymbol:  "#",
		},
		{
			name:        "slash comment",
			diff:        "+++ b/pkg/core/parser.go\n+  // TODO: refactor",
			wantTodos:   1,
			wantFile:    "pkg/core/parser.go",
			wantComment: "refactor",
			wantSymbol:  "//",
		},
		{
			name:        "block comment with trailing close",
			diff:        "+++ b/style.css\n+/* TODO: tighten selector */",
			wantTodos:   1,
			wantFile:    "style.css",
			wantComment: "tighten selector",
			wantSymbol:  "//",
		},
		{
			name:         "existing issue reference is resolved",
			diff:         "+++ b/main.go\n+// TODO(ENG-42): handle timeout",
			wantTodos:    1,
			wantFile:     "main.go",
			wantContext:  "ENG-42",
			wantComment:  "handle timeout",
			wantSymbol:   "//",
			wantResolved: true,
		},
		{
			name:        "context not shaped like an identifier stays unresolved",
			diff:        "+++ b/main.go\n+// TODO(alice): handle timeout",
			wantTodos:   1,
			wantFile:    "main.go",
			wantContext: "alice",
			wantComment: "handle timeout",
			wantSymbol:  "//",
		},
		{
			name:      "todo before any file header is skipped",
			diff:      "+# TODO: orphan comment\n+++ b/a.py",
			wantTodos: 0,
		},
		{
			name:      "removed and context lines are ignored",
			diff:      "+++ b/a.py\n-# TODO: gone\n # TODO: unchanged",
			wantTodos: 0,
		},
		{
			name:      "header line itself is not a todo",
			diff:      "+++ b/a.py",
			wantTodos: 0,
		},
		{
			name:      "added line without comment opener is ignored",
			diff:      "+++ b/a.py\n+print('TODO: not a comment')",
			wantTodos: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := scanDiff(tt.diff)

			assert.Len(t, st.todos, tt.wantTodos)
			if tt.wantTodos == 0 {
				return
			}

			todo := st.todos[0].todo
			assert.Equal(t, tt.wantFile, todo.File)
			assert.Equal(t, tt.wantContext, todo.Context)
			assert.Equal(t, tt.wantComment, todo.Comment)
			assert.Equal(t, tt.wantSymbol, todo.Symbol)
			assert.Equal(t, tt.wantResolved, st.todos[0].resolved)
		})
	}
}

func TestScanDiffPreservesLines(t *testing.T) {
	diff := "diff --git a/a.py b/a.py\n--- a/a.py\n+++ b/a.py\n@@ -1,2 +1,3 @@\n context\n+# TODO: new task\n-removed"

	st := scanDiff(diff)

	assert.Equal(t, diff, strings.Join(st.lines, "\n"))
	assert.Len(t, st.todos, 1)
	assert.Equal(t, "+# TODO: new task", st.todos[0].todo.Line)
	assert.Equal(t, 5, st.todos[0].index)
}

func TestScanDiffTracksLatestHeader(t *testing.T) {
	diff := "+++ b/first.py\n+# TODO: in first\n+++ b/second.py\n+# TODO: in second"

	st := scanDiff(diff)

	assert.Len(t, st.todos, 2)
	assert.Equal(t, "first.py", st.todos[0].todo.File)
	assert.Equal(t, "second.py", st.todos[1].todo.File)
}
