// Package linker derives the fixed-width placeholders embedded in bytecode at
// library link sites.
package linker

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"
)

// hashLength is the number of keccak256 bytes kept for a hash placeholder.
const hashLength = 17

// placeholderWidth is the character width of the legacy fully qualified
// placeholder.
const placeholderWidth = 36

// LibraryHash returns the 17-byte keccak256 prefix of the fully qualified
// library name. It is a pure function of the name: no filesystem state, no
// randomness.
func LibraryHash(name string) [hashLength]byte {
	keccak := sha3.NewLegacyKeccak256()
	keccak.Write([]byte(name))
	var out [hashLength]byte
	copy(out[:], keccak.Sum(nil))
	return out
}

// HashPlaceholder returns the link placeholder for name: the 34 hex
// characters of LibraryHash wrapped in `$` delimiters.
func HashPlaceholder(name string) string {
	hash := LibraryHash(name)
	return "$" + hex.EncodeToString(hash[:]) + "$"
}

// FullyQualifiedPlaceholder returns the deprecated 36 character placeholder:
// the name truncated to 36 characters, or right-padded with `_` to exactly
// 36.
func FullyQualifiedPlaceholder(name string) string {
	runes := []rune(name)
	if len(runes) >= placeholderWidth {
		return string(runes[:placeholderWidth])
	}
	return string(runes) + strings.Repeat("_", placeholderWidth-len(runes))
}
