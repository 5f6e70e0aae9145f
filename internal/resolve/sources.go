package resolve

import (
	"os"
	"path/filepath"

	"solimports/internal/paths"
)

// SourceFiles returns every Solidity and Yul file under root, or root itself
// when it points at a single source file. Symlinked directories are followed
// with a visited guard so cyclic dependency trees terminate; unreadable
// entries are skipped rather than aborting the walk.
func SourceFiles(root string) []string {
	var files []string
	visited := map[string]struct{}{}
	walkSources(root, visited, &files)
	return files
}

// SolidityDirs returns the unique parent directories of every source file
// under root, in discovery order.
func SolidityDirs(root string) []string {
	seen := map[string]struct{}{}
	var dirs []string
	for _, file := range SourceFiles(root) {
		dir := filepath.Dir(file)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}

func walkSources(path string, visited map[string]struct{}, files *[]string) {
	// Stat follows symlinks, so a link to a directory recurses below.
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		if isSourceFile(path) {
			*files = append(*files, path)
		}
		return
	}
	canonical := paths.CanonicalizeOr(path)
	if _, ok := visited[canonical]; ok {
		return
	}
	visited[canonical] = struct{}{}
	entries, err := os.ReadDir(path)
	if err != nil {
		return
	}
	for _, entry := range entries {
		walkSources(filepath.Join(path, entry.Name()), visited, files)
	}
}

func isSourceFile(path string) bool {
	switch filepath.Ext(path) {
	case ".sol", ".yul":
		return true
	default:
		return false
	}
}
