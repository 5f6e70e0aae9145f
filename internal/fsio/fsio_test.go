package fsio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type compilerInput struct {
	Language string            `json:"language"`
	Sources  map[string]string `json:"sources"`
}

func TestWriteAndReadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "input.json")
	in := compilerInput{
		Language: "Solidity",
		Sources:  map[string]string{"src/Token.sol": "contract Token {}"},
	}
	require.NoError(t, WriteJSON(path, in))

	var out compilerInput
	require.NoError(t, ReadJSON(path, &out))
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	var out compilerInput
	require.Error(t, ReadJSON(filepath.Join(t.TempDir(), "missing.json"), &out))
}

func TestReadJSONMalformedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out compilerInput
	require.Error(t, ReadJSON(path, &out))
}

func TestCreateParentDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "IsolationModeMagic.sol", "IsolationModeMagic.json")
	require.NoError(t, CreateParentDirs(path))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	// Versioned artifact names share the same parent.
	versioned := filepath.Join(dir, "IVersioned.sol", "IVersioned.0.8.16.json")
	require.NoError(t, CreateParentDirs(versioned))
	require.NoError(t, CreateParentDirs(filepath.Join(dir, "IVersioned.sol", "IVersioned.json")))
}
