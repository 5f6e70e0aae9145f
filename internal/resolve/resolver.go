// Package resolve implements the library-root and absolute-from-ancestor
// resolution tiers, plus discovery of Solidity/Yul sources on disk. Absent
// results signal "not this kind of import" to the caller's next tier; they
// are never errors.
package resolve

import (
	"os"
	"path/filepath"
	"strings"

	"solimports/internal/paths"
)

// Match is a successful absolute-tier resolution: the ancestor directory the
// import resolved against and the normalized path of the resolved file.
type Match struct {
	Ancestor string
	Path     string
}

// Library tries to resolve source against the configured library roots, in
// priority order. Within one root the direct join `<root>/<source>` is
// preferred over the repository convention `<root>/<name>/src/<rest>`. An
// absolute import resolves to itself and skips the search entirely. A source
// whose first component is not a plain name is not a library import and
// reports false, as does exhausting all roots; non-existent roots are treated
// as always-missing.
func Library(libs []string, source string) (string, bool) {
	first, rest, kind := splitFirstComponent(source)
	switch kind {
	case componentRoot:
		return source, true
	case componentNormal:
	default:
		return "", false
	}
	for _, lib := range libs {
		if direct := joinPath(lib, source); exists(direct) {
			return direct, true
		}
		if conventional := joinPath(lib, first, "src", rest); exists(conventional) {
			return conventional, true
		}
	}
	return "", false
}

// IsLocalSourceName reports whether source is a local, relative import rather
// than one addressed at a library root.
func IsLocalSourceName(libs []string, source string) bool {
	_, ok := Library(libs, source)
	return !ok
}

// Absolute walks the ancestor chain of cwd upward and tries the import
// against each ancestor: join, lexically normalize, check existence. The
// first ancestor whose joined import exists wins. The walk starts at cwd's
// parent and stops before root; exhausting the chain without reaching root
// reports false.
func Absolute(root, cwd, importPath string) (Match, bool) {
	root = filepath.Clean(root)
	cwd = filepath.Clean(cwd)
	parent := filepath.Dir(cwd)
	if parent == cwd {
		return Match{}, false
	}
	for parent != root {
		if resolved, err := paths.ResolveImportPath(parent, importPath); err == nil {
			return Match{Ancestor: parent, Path: resolved}, true
		}
		next := filepath.Dir(parent)
		if next == parent {
			break
		}
		parent = next
	}
	return Match{}, false
}

// SourceName strips the project root from a source path, leaving the
// root-relative name used in compiler input. Paths outside the root are
// returned unchanged.
func SourceName(source, root string) string {
	prefix := strings.TrimSuffix(filepath.ToSlash(root), "/")
	slashed := filepath.ToSlash(source)
	if prefix != "" && strings.HasPrefix(slashed, prefix+"/") {
		return strings.TrimPrefix(slashed, prefix+"/")
	}
	return source
}

// FaveOrAlt probes root for the preferred subdirectory name, falling back to
// the alternative only when the preferred form is missing and the alternative
// exists. The preferred path is returned even when neither exists.
func FaveOrAlt(root, fave, alt string) string {
	preferred := filepath.Join(root, fave)
	if !exists(preferred) {
		if alternative := filepath.Join(root, alt); exists(alternative) {
			return alternative
		}
	}
	return preferred
}

type componentKind int

const (
	componentOther componentKind = iota
	componentRoot
	componentNormal
)

// splitFirstComponent classifies the first component of an import path and,
// for a plain name, returns it together with the remainder of the path.
func splitFirstComponent(source string) (first, rest string, kind componentKind) {
	slashed := filepath.ToSlash(source)
	if filepath.IsAbs(source) || strings.HasPrefix(slashed, "/") {
		return "", "", componentRoot
	}
	for _, comp := range strings.Split(slashed, "/") {
		if comp == "" {
			continue
		}
		if comp == "." || comp == ".." {
			return "", "", componentOther
		}
		rest = strings.TrimPrefix(strings.TrimPrefix(slashed, comp), "/")
		return comp, rest, componentNormal
	}
	return "", "", componentOther
}

// joinPath concatenates path parts without lexically cleaning them, the way
// the host compiler joins candidate paths before an existence check. Empty
// parts are skipped.
func joinPath(parts ...string) string {
	joined := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if joined == "" {
			joined = strings.TrimSuffix(filepath.ToSlash(part), "/")
			continue
		}
		joined += "/" + filepath.ToSlash(part)
	}
	return joined
}

func exists(path string) bool {
	_, err := os.Stat(filepath.FromSlash(path))
	return err == nil
}
