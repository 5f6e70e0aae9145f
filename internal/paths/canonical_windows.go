//go:build windows

package paths

import "path/filepath"

// platformPath rewrites a canonical Windows path to forward slashes so that
// resolved paths compare equal across host platforms.
func platformPath(path string) string {
	return filepath.ToSlash(path)
}
