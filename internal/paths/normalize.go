// Package paths provides the path primitives behind import resolution: a
// filesystem-free lexical normalizer, a symlink-resolving canonicalizer,
// common-ancestor computation, and a case-mismatch recovery scan.
package paths

import (
	"path/filepath"
	"strings"
)

// Normalize lexically cleans a path without touching the filesystem.
//
// Current-directory markers are dropped, repeated separators are reduced, and
// a parent-directory marker removes the preceding component only when that
// component is a plain named segment. Root markers and unresolvable parent
// markers are preserved verbatim. Symbolic links are not resolved, so the
// result may differ from what the filesystem would report for a path that
// crosses a link. The result always uses forward slashes and is idempotent.
func Normalize(path string) string {
	slashed := filepath.ToSlash(path)
	vol := filepath.VolumeName(path)
	if vol != "" {
		slashed = slashed[len(vol):]
		vol = strings.ReplaceAll(vol, `\`, "/")
	}
	rooted := strings.HasPrefix(slashed, "/")

	var stack []string
	for _, comp := range strings.Split(slashed, "/") {
		switch comp {
		case "", ".":
		case "..":
			if n := len(stack); n > 0 && stack[n-1] != ".." {
				stack = stack[:n-1]
			} else {
				stack = append(stack, comp)
			}
		default:
			stack = append(stack, comp)
		}
	}

	cleaned := strings.Join(stack, "/")
	if rooted {
		return vol + "/" + cleaned
	}
	return vol + cleaned
}

// Join appends an import path onto the directory of the importing file. An
// absolute import replaces the directory entirely, matching how the host
// compiler joins paths before cleaning them.
func Join(dir, importPath string) string {
	if isRooted(importPath) || dir == "" {
		return importPath
	}
	return strings.TrimSuffix(filepath.ToSlash(dir), "/") + "/" + filepath.ToSlash(importPath)
}

// isRooted reports whether the path starts at a root marker on any supported
// platform, including drive-letter forms.
func isRooted(path string) bool {
	return filepath.IsAbs(path) || strings.HasPrefix(filepath.ToSlash(path), "/")
}
