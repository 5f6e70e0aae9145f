package versions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestInstalledSortsAscending(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"0.8.10", "0.7.6", "0.8.10-nightly.2021.9.9", "0.4.26"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, name), 0o755))
	}

	var got []string
	for _, version := range Installed(root) {
		got = append(got, version.Original())
	}
	want := []string{"0.4.26", "0.7.6", "0.8.10-nightly.2021.9.9", "0.8.10"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("installed versions mismatch (-want +got):\n%s", diff)
	}
}

func TestInstalledSkipsInvalidEntries(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "0.8.19"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "not-a-version"), 0o755))
	// A file named like a version is not an installation directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, "0.6.0"), nil, 0o644))

	installed := Installed(root)
	require.Len(t, installed, 1)
	require.Equal(t, "0.8.19", installed[0].Original())
}

func TestInstalledMissingRoot(t *testing.T) {
	require.Empty(t, Installed(filepath.Join(t.TempDir(), "svm")))
}
