package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestSyncFilesConvergence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "x.py", "def f():\n    # TODO: fix bounds check\n    return 0\n")

	edits := map[string][]FileEdit{
		"x.py": {{Old: "# TODO: fix bounds check", New: "# TODO(ENG-42): fix bounds check"}},
	}

	SyncFiles(dir, edits, discardLogger())

	content := readFile(t, path)
	assert.Equal(t, "def f():\n    # TODO(ENG-42): fix bounds check\n    return 0\n", content)
	assert.Equal(t, 1, strings.Count(content, "TODO(ENG-42)"))
	assert.NotContains(t, content, "# TODO: fix bounds check")

	// A second pass finds no matching old line and changes nothing.
	SyncFiles(dir, edits, discardLogger())
	assert.Equal(t, content, readFile(t, path))
}

func TestSyncFilesKeepsFileIndentation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.go", "func main() {\n\t// TODO: refactor\n}\n")

	edits := map[string][]FileEdit{
		"main.go": {{Old: "// TODO: refactor", New: "// TODO(ENG-9): refactor"}},
	}

	SyncFiles(dir, edits, discardLogger())

	assert.Equal(t, "func main() {\n\t// TODO(ENG-9): refactor\n}\n", readFile(t, path))
}

func TestSyncFilesDuplicateOldLines(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "# TODO: cleanup\npass\n# TODO: cleanup\n")

	edits := map[string][]FileEdit{
		"a.py": {
			{Old: "# TODO: cleanup", New: "# TODO(ENG-1): cleanup"},
			{Old: "# TODO: cleanup", New: "# TODO(ENG-2): cleanup"},
		},
	}

	SyncFiles(dir, edits, discardLogger())

	assert.Equal(t, "# TODO(ENG-1): cleanup\npass\n# TODO(ENG-2): cleanup\n", readFile(t, path))
}

func TestSyncFilesMultipleEditsOneFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "# TODO: first\ncode\n    # TODO: second\n")

	edits := map[string][]FileEdit{
		"a.py": {
			{Old: "# TODO: first", New: "# TODO(ENG-1): first"},
			{Old: "# TODO: second", New: "# TODO(ENG-2): second"},
		},
	}

	SyncFiles(dir, edits, discardLogger())

	assert.Equal(t, "# TODO(ENG-1): first\ncode\n    # TODO(ENG-2): second\n", readFile(t, path))
}

func TestSyncFilesMissingFileIsNonFatal(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "present.py", "# TODO: here\n")

	edits := map[string][]FileEdit{
		"absent.py":  {{Old: "# TODO: gone", New: "# TODO(ENG-1): gone"}},
		"present.py": {{Old: "# TODO: here", New: "# TODO(ENG-2): here"}},
	}

	SyncFiles(dir, edits, discardLogger())

	assert.Equal(t, "# TODO(ENG-2): here\n", readFile(t, path))
}

func TestSyncFilesUnmatchedEditLeavesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.py", "nothing to see\n")

	edits := map[string][]FileEdit{
		"a.py": {{Old: "# TODO: missing", New: "# TODO(ENG-1): missing"}},
	}

	SyncFiles(dir, edits, discardLogger())

	assert.Equal(t, "nothing to see\n", readFile(t, path))
}
