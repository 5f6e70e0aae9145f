package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// FindCaseInsensitiveFile scans the parent directory of a non-existing file
// for an entry whose name matches case-insensitively but differs in exact
// case. The scan is one level deep and is meant as a recovery aid after
// resolution fails, to surface dependencies checked out on a
// case-insensitive filesystem. It reports false when the parent cannot be
// read or no case variant exists.
func FindCaseInsensitiveFile(nonExisting string) (string, bool) {
	want := filepath.Base(nonExisting)
	if want == "." || want == "/" || want == string(filepath.Separator) {
		return "", false
	}
	parent := filepath.Dir(nonExisting)
	entries, err := os.ReadDir(parent)
	if err != nil {
		return "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if name != want && strings.EqualFold(name, want) {
			return filepath.Join(parent, name), true
		}
	}
	return "", false
}
