// Package versions scans a compiler installation root laid out as one
// directory per installed version, e.g. `<root>/0.8.10`.
package versions

import (
	"os"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Installed returns the compiler versions installed under root, sorted in
// ascending order. Only immediate subdirectories are considered; entries that
// are not directories or whose names do not parse as a version are silently
// skipped, and an unreadable root yields an empty list.
func Installed(root string) []*semver.Version {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var installed []*semver.Version
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		version, err := semver.StrictNewVersion(entry.Name())
		if err != nil {
			continue
		}
		installed = append(installed, version)
	}
	sort.Sort(semver.Collection(installed))
	return installed
}
