package paths

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"./a", "a"},
		{"../a", "../a"},
		{"/a/", "/a"},
		{"//a", "/a"},
		{"a/b", "a/b"},
		{"a//b", "a/b"},
		{"/a/b", "/a/b"},
		{"a/./b", "a/b"},
		{"a/././b", "a/b"},
		{"/a/../b", "/b"},
		{"a/./../b/.", "b"},
		{"a/b/c", "a/b/c"},
		{"a/b/../c", "a/c"},
		{"a/b/../../c", "c"},
		{"a/b/../../../c", "../c"},
		{"a/../b/../../c/./Token.sol", "../c/Token.sol"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Normalize(tt.in)); diff != "" {
			t.Errorf("Normalize(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"", "/", "a", "./a", "../a", "/a/", "//a", "a//b", "a/./b",
		"/a/../b", "a/b/../../../c", "a/../b/../../c/./Token.sol",
	}
	for _, in := range inputs {
		once := Normalize(in)
		require.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		dir        string
		importPath string
		want       string
	}{
		{"/project/src", "./Token.sol", "/project/src/./Token.sol"},
		{"/project/src", "../lib/Math.sol", "/project/src/../lib/Math.sol"},
		{"/project/src", "/abs/Token.sol", "/abs/Token.sol"},
		{"", "Token.sol", "Token.sol"},
		{"/project/src/", "Token.sol", "/project/src/Token.sol"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Join(tt.dir, tt.importPath)); diff != "" {
			t.Errorf("Join(%q, %q) mismatch (-want +got):\n%s", tt.dir, tt.importPath, diff)
		}
	}
}
