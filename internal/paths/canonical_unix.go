//go:build !windows

package paths

// platformPath returns the canonical path unchanged; Unix paths already use
// forward slashes.
func platformPath(path string) string {
	return path
}
