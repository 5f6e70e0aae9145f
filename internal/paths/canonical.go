package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Canonicalize resolves all symbolic links and relative segments through the
// filesystem and returns the absolute path in the platform-stable separator
// form. It fails when the path does not exist or is inaccessible; the error
// carries the offending path.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err == nil {
		var resolved string
		if resolved, err = filepath.EvalSymlinks(abs); err == nil {
			return platformPath(resolved), nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("cannot canonicalize %q", path)).
		WithCause(err)
}

// CanonicalizeOr returns the canonical form of path, or path unchanged when
// canonicalization fails. Symlink resolution here is a best-effort
// optimization, not a correctness requirement.
func CanonicalizeOr(path string) string {
	if canonical, err := Canonicalize(path); err == nil {
		return canonical
	}
	return path
}

// ResolveImportPath joins an import path onto the directory of the importing
// file, lexically normalizes the result, and verifies that it exists with a
// single metadata read. Unlike Canonicalize it does not resolve symbolic
// links, so a path that crosses a symlinked directory resolves the way the
// host compiler documents it. The error carries the original joined path.
func ResolveImportPath(dir, importPath string) (string, error) {
	joined := Join(dir, importPath)
	normalized := Normalize(joined)
	if _, err := os.Stat(filepath.FromSlash(normalized)); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("import %q does not exist", joined)).
			WithCause(err)
	}
	return normalized, nil
}
