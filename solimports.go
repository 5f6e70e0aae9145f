package solimports

import (
	"github.com/Masterminds/semver/v3"

	"solimports/internal/fsio"
	"solimports/internal/linker"
	"solimports/internal/parse"
	"solimports/internal/paths"
	"solimports/internal/resolve"
	"solimports/internal/versions"
)

// Import is one import path literal extracted from source text, addressed by
// the byte range of the literal within the input.
type Import = parse.Import

// Alias is a single `X as Y` binding inside an import statement.
type Alias = parse.Alias

// Match is a successful absolute-tier resolution: the ancestor directory the
// import resolved against and the normalized path of the resolved file.
type Match = resolve.Match

// Imports returns the path literal of every import statement in src, in
// source order, regardless of quoting form.
func Imports(src string) []Import {
	return parse.Imports(src)
}

// ImportPaths returns just the path literals of Imports.
func ImportPaths(src string) []string {
	return parse.ImportPaths(src)
}

// ImportAliases returns the alias bindings inside one import statement.
func ImportAliases(statement string) []Alias {
	return parse.ImportAliases(statement)
}

// VersionPragma returns the first solidity version pragma expression in src:
// `pragma solidity ^0.8.0;` yields `^0.8.0`.
func VersionPragma(src string) (string, bool) {
	return parse.VersionPragma(src)
}

// License returns the first SPDX license identifier in src.
func License(src string) (string, bool) {
	return parse.License(src)
}

// NormalizePath lexically cleans a path without touching the filesystem; see
// the package documentation for the exact `.`/`..` collapsing rules.
func NormalizePath(path string) string {
	return paths.Normalize(path)
}

// Canonicalize resolves symlinks and relative segments through the
// filesystem, returning an absolute path in platform-stable separator form.
func Canonicalize(path string) (string, error) {
	return paths.Canonicalize(path)
}

// CanonicalizeOr returns the canonical form of path, or path unchanged when
// canonicalization fails.
func CanonicalizeOr(path string) string {
	return paths.CanonicalizeOr(path)
}

// ResolveImportPath joins an import onto the importing file's directory,
// normalizes the result, and verifies it exists without resolving symlinks.
func ResolveImportPath(dir, importPath string) (string, error) {
	return paths.ResolveImportPath(dir, importPath)
}

// CommonAncestor returns the longest shared component prefix of two paths.
func CommonAncestor(a, b string) (string, bool) {
	return paths.CommonAncestor(a, b)
}

// CommonAncestorAll folds CommonAncestor over all given paths.
func CommonAncestorAll(list []string) (string, bool) {
	return paths.CommonAncestorAll(list)
}

// FindCaseInsensitiveFile scans the parent of a non-existing file for an
// entry whose name differs only in case.
func FindCaseInsensitiveFile(nonExisting string) (string, bool) {
	return paths.FindCaseInsensitiveFile(nonExisting)
}

// ResolveLibrary resolves source against the library roots in priority
// order; absence means "not a library import".
func ResolveLibrary(libs []string, source string) (string, bool) {
	return resolve.Library(libs, source)
}

// ResolveAbsolute walks cwd's ancestor chain up to (excluding) root looking
// for an existing match of the import path.
func ResolveAbsolute(root, cwd, importPath string) (Match, bool) {
	return resolve.Absolute(root, cwd, importPath)
}

// IsLocalSourceName reports whether source is a local, relative import
// rather than one addressed at a library root.
func IsLocalSourceName(libs []string, source string) bool {
	return resolve.IsLocalSourceName(libs, source)
}

// SourceName strips the project root from a source path, leaving the
// root-relative name used in compiler input.
func SourceName(source, root string) string {
	return resolve.SourceName(source, root)
}

// SourceFiles returns every Solidity and Yul file under root, following
// symlinks, or root itself when it is a single source file.
func SourceFiles(root string) []string {
	return resolve.SourceFiles(root)
}

// SolidityDirs returns the unique parent directories of every source file
// under root.
func SolidityDirs(root string) []string {
	return resolve.SolidityDirs(root)
}

// FaveOrAlt probes root for the preferred subdirectory name, falling back to
// the alternative only when the preferred form is missing and the
// alternative exists. Used for the `contracts`/`src` and
// `lib`/`node_modules` layout conventions.
func FaveOrAlt(root, fave, alt string) string {
	return resolve.FaveOrAlt(root, fave, alt)
}

// LibraryHash returns the 17-byte keccak256 prefix of a fully qualified
// library name.
func LibraryHash(name string) [17]byte {
	return linker.LibraryHash(name)
}

// LibraryHashPlaceholder returns the link placeholder for name: 34 hex
// characters wrapped in `$` delimiters.
func LibraryHashPlaceholder(name string) string {
	return linker.HashPlaceholder(name)
}

// LibraryFullyQualifiedPlaceholder returns the deprecated 36 character
// placeholder: name truncated or right-padded with `_` to exactly 36.
func LibraryFullyQualifiedPlaceholder(name string) string {
	return linker.FullyQualifiedPlaceholder(name)
}

// InstalledVersions returns the compiler versions installed under root
// (one directory per version, e.g. `<root>/0.8.10`), ascending.
func InstalledVersions(root string) []*semver.Version {
	return versions.Installed(root)
}

// ReadJSONFile reads the JSON file at path into v.
func ReadJSONFile(path string, v any) error {
	return fsio.ReadJSON(path, v)
}

// WriteJSONFile serializes v as JSON into the file at path, creating missing
// parent directories first.
func WriteJSONFile(path string, v any) error {
	return fsio.WriteJSON(path, v)
}

// CreateParentDirs creates the parent directory of file and all of its
// ancestors when missing.
func CreateParentDirs(file string) error {
	return fsio.CreateParentDirs(file)
}
