package linker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLibraryHashKnownValue(t *testing.T) {
	// keccak256("") = c5d2460186f7233c927e7db2dcc703c0e5...
	want := [17]byte{
		0xc5, 0xd2, 0x46, 0x01, 0x86, 0xf7, 0x23, 0x3c, 0x92,
		0x7e, 0x7d, 0xb2, 0xdc, 0xc7, 0x03, 0xc0, 0xe5,
	}
	require.Equal(t, want, LibraryHash(""))
	require.Equal(t, "$c5d2460186f7233c927e7db2dcc703c0e5$", HashPlaceholder(""))
}

func TestHashPlaceholderDeterministic(t *testing.T) {
	name := "src/libraries/Math.sol:Math"
	first := HashPlaceholder(name)
	second := HashPlaceholder(name)
	require.Equal(t, first, second)

	require.Len(t, first, 36)
	require.True(t, strings.HasPrefix(first, "$"))
	require.True(t, strings.HasSuffix(first, "$"))

	other := HashPlaceholder("src/libraries/Math.sol:SafeMath")
	require.NotEqual(t, first, other)
}

func TestFullyQualifiedPlaceholderPadding(t *testing.T) {
	got := FullyQualifiedPlaceholder("lib/Math.sol:Math")
	require.Len(t, got, 36)
	require.Equal(t, "lib/Math.sol:Math"+strings.Repeat("_", 19), got)
}

func TestFullyQualifiedPlaceholderTruncation(t *testing.T) {
	name := strings.Repeat("a", 40)
	got := FullyQualifiedPlaceholder(name)
	require.Equal(t, strings.Repeat("a", 36), got)
}

func TestFullyQualifiedPlaceholderExactWidth(t *testing.T) {
	name := strings.Repeat("b", 36)
	require.Equal(t, name, FullyQualifiedPlaceholder(name))
}
