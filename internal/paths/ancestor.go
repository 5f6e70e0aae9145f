package paths

import (
	"path/filepath"
	"strings"
)

// CommonAncestor returns the longest shared component prefix of a and b. The
// comparison starts at the root; if the first components already differ there
// is no common ancestor and ok is false. A shared root marker alone counts as
// a match.
func CommonAncestor(a, b string) (string, bool) {
	compsA := components(a)
	compsB := components(b)
	var shared []string
	for i := 0; i < len(compsA) && i < len(compsB); i++ {
		if compsA[i] != compsB[i] {
			break
		}
		shared = append(shared, compsA[i])
	}
	if len(shared) == 0 {
		return "", false
	}
	return joinComponents(shared), true
}

// CommonAncestorAll folds CommonAncestor over all given paths. It reports
// false for an empty input or as soon as any pairwise reduction has no
// common ancestor.
func CommonAncestorAll(paths []string) (string, bool) {
	if len(paths) == 0 {
		return "", false
	}
	ancestor := paths[0]
	for _, path := range paths[1:] {
		next, ok := CommonAncestor(ancestor, path)
		if !ok {
			return "", false
		}
		ancestor = next
	}
	return ancestor, true
}

// components splits a path into the units the ancestor comparison works on:
// an optional root marker, a leading current-directory marker, then named
// segments. Interior current-directory markers and repeated separators carry
// no information and are skipped.
func components(path string) []string {
	slashed := filepath.ToSlash(path)
	var comps []string
	if vol := filepath.VolumeName(path); vol != "" {
		comps = append(comps, strings.ReplaceAll(vol, `\`, "/"))
		slashed = slashed[len(vol):]
	}
	if strings.HasPrefix(slashed, "/") {
		comps = append(comps, "/")
	}
	for _, comp := range strings.Split(slashed, "/") {
		switch comp {
		case "":
		case ".":
			if len(comps) == 0 {
				comps = append(comps, comp)
			}
		default:
			comps = append(comps, comp)
		}
	}
	return comps
}

// joinComponents reassembles a component prefix into a path string.
func joinComponents(comps []string) string {
	prefix := ""
	rest := comps
	if strings.HasSuffix(rest[0], ":") {
		prefix = rest[0]
		rest = rest[1:]
	}
	if len(rest) > 0 && rest[0] == "/" {
		prefix += "/"
		rest = rest[1:]
	}
	return prefix + strings.Join(rest, "/")
}
