package core

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SyncFiles applies pending edits to the working tree under dir. Each
// file is handled in a single read-modify-write pass. An edit consumes
// the first line whose trimmed content equals its old text, scanning
// from the top of the file, and keeps the line's own indentation. A
// rewritten line no longer equals any remaining old pattern, so edits
// with identical old text consume successive occurrences. Per-file I/O
// errors are logged and do not stop the remaining files.
func SyncFiles(dir string, edits map[string][]FileEdit, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	paths := make([]string, 0, len(edits))
	for path := range edits {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := syncFile(filepath.Join(dir, path), edits[path], logger); err != nil {
			logger.Error("file sync failed", "file", path, "error", err)
		}
	}
}

func syncFile(path string, edits []FileEdit, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	lines := strings.Split(string(data), "\n")
	for _, edit := range edits {
		for i, line := range lines {
			if strings.TrimSpace(line) != edit.Old {
				continue
			}
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = indent + edit.New
			break
		}
	}

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return err
	}

	verifySync(path, edits, logger)

	return nil
}

// verifySync re-reads the file and warns about expected lines that did
// not land. The write already happened; this is a diagnostic, not a
// rollback trigger.
func verifySync(path string, edits []FileEdit, logger *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("could not verify sync", "file", path, "error", err)
		return
	}

	content := string(data)
	for _, edit := range edits {
		if !strings.Contains(content, edit.New) {
			logger.Warn("expected line missing after sync", "file", path, "line", edit.New)
		}
	}
}
