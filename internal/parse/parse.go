// Package parse extracts import path literals, version pragmas, and SPDX
// license identifiers from raw Solidity/Yul source text. The scans match the
// statement shapes only and tolerate arbitrary surrounding source; they never
// require a grammar parse and never fail on malformed input.
package parse

import (
	"regexp"
	"strings"
)

// Statement patterns, compiled once at package init. The import pattern is
// adapted from hardhat's solidity parser and matches the path literal in
// whichever of the four quoting slots the statement uses.
var (
	reImport        = regexp.MustCompile(`import\s+(?:(?:"(?P<p1>.*)"|'(?P<p2>.*)')(?:\s+as\s+\w+)?|(?:(?:\w+(?:\s+as\s+\w+)?|\*\s+as\s+\w+|\{\s*(?:\w+(?:\s+as\s+\w+)?(?:\s*,\s*)?)+\s*\})\s+from\s+(?:"(?P<p3>.*)"|'(?P<p4>.*)')))\s*;`)
	reImportAlias   = regexp.MustCompile(`(?:(?P<target>\w+)|\*|'|")\s+as\s+(?P<alias>\w+)`)
	reVersionPragma = regexp.MustCompile(`pragma\s+solidity\s+(?P<version>.+?);`)
	reLicense       = regexp.MustCompile(`///?\s*SPDX-License-Identifier:\s*(?P<license>.+)`)
)

var importPathGroups = []int{
	reImport.SubexpIndex("p1"),
	reImport.SubexpIndex("p2"),
	reImport.SubexpIndex("p3"),
	reImport.SubexpIndex("p4"),
}

// Import is one import path literal extracted from source text, addressed by
// the byte range of the literal within the input.
type Import struct {
	Path  string
	Start int
	End   int
}

// Alias is a single `X as Y` binding inside an import statement. Target is
// empty for whole-file and wildcard imports.
type Alias struct {
	Target string
	Name   string
}

// Imports returns the path literal of every import statement in src, in
// source order, regardless of quoting form: `import "X";`,
// `import {A as B} from "X";`, and `import * as B from 'X';` all yield X.
func Imports(src string) []Import {
	var out []Import
	for _, match := range reImport.FindAllStringSubmatchIndex(src, -1) {
		for _, group := range importPathGroups {
			start, end := match[2*group], match[2*group+1]
			if start < 0 {
				continue
			}
			out = append(out, Import{Path: src[start:end], Start: start, End: end})
			break
		}
	}
	return out
}

// ImportPaths returns just the path literals of Imports.
func ImportPaths(src string) []string {
	imports := Imports(src)
	out := make([]string, 0, len(imports))
	for _, imp := range imports {
		out = append(out, imp.Path)
	}
	return out
}

// ImportAliases returns the alias bindings that appear inside one import
// statement.
func ImportAliases(statement string) []Alias {
	targetIdx := reImportAlias.SubexpIndex("target")
	aliasIdx := reImportAlias.SubexpIndex("alias")
	var out []Alias
	for _, match := range reImportAlias.FindAllStringSubmatch(statement, -1) {
		out = append(out, Alias{Target: match[targetIdx], Name: match[aliasIdx]})
	}
	return out
}

// VersionPragma returns the first solidity version pragma expression in src,
// verbatim between `pragma solidity` and the terminating semicolon, trimmed:
// `pragma solidity ^0.8.0;` yields `^0.8.0`.
func VersionPragma(src string) (string, bool) {
	match := reVersionPragma.FindStringSubmatch(src)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[reVersionPragma.SubexpIndex("version")]), true
}

// License returns the first SPDX license identifier in src, following either
// a `//` or `///` comment marker.
func License(src string) (string, bool) {
	match := reLicense.FindStringSubmatch(src)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[reLicense.SubexpIndex("license")]), true
}
