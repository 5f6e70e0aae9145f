// Package solimports resolves Solidity and Yul import statements to concrete
// filesystem locations, reproducing the host compiler's documented
// path-resolution rules without invoking the compiler: relative imports
// against the importing file's directory, library imports against configured
// roots, and root-relative imports reachable by walking up from the importing
// directory.
//
// The import graph and compilation ordering belong to the caller; this
// package owns the per-import three-tier attempt, its logging, and its
// failure context.
package solimports

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"solimports/internal/paths"
	"solimports/internal/resolve"
)

// Resolver resolves individual imports for one project.
//
// A Resolver holds no mutable state and is safe for concurrent use; a
// resolved path existed at the moment of resolution and may go stale the
// instant after, so callers that race the filesystem must re-validate.
type Resolver struct {
	root string
	libs []string
}

// NewResolver creates a Resolver for the project rooted at root with the
// given library roots in resolution priority order. Roots are canonicalized
// best-effort so symlinked layouts (e.g. `/var` vs `/private/var`) compare
// consistently; roots that do not exist are kept as configured and simply
// never match.
func NewResolver(root string, libs ...string) *Resolver {
	resolver := &Resolver{root: paths.CanonicalizeOr(root)}
	for _, lib := range libs {
		resolver.libs = append(resolver.libs, paths.CanonicalizeOr(lib))
	}
	return resolver
}

// Root returns the canonicalized project root.
func (r *Resolver) Root() string {
	return r.root
}

// Libs returns the library roots in resolution priority order.
func (r *Resolver) Libs() []string {
	return r.libs
}

// Resolve locates importPath for a file in cwd. Imports starting with `.`
// resolve against cwd; everything else tries the library roots first and
// then the ancestor walk toward the project root. The returned path is
// normalized but not necessarily canonicalized.
func (r *Resolver) Resolve(ctx context.Context, cwd, importPath string) (string, error) {
	logger := log.Ctx(ctx)
	if strings.HasPrefix(importPath, ".") {
		resolved, err := paths.ResolveImportPath(cwd, importPath)
		if err != nil {
			return "", r.failure(cwd, importPath, err)
		}
		logger.Debug().
			Str("import", importPath).
			Str("resolved", resolved).
			Msg("relative import resolved")
		return resolved, nil
	}
	if resolved, ok := resolve.Library(r.libs, importPath); ok {
		logger.Debug().
			Str("import", importPath).
			Str("resolved", resolved).
			Msg("library import resolved")
		return resolved, nil
	}
	if match, ok := resolve.Absolute(r.root, cwd, importPath); ok {
		logger.Debug().
			Str("import", importPath).
			Str("ancestor", match.Ancestor).
			Str("resolved", match.Path).
			Msg("absolute import resolved")
		return match.Path, nil
	}
	return "", r.failure(cwd, importPath, nil)
}

// failure builds the not-found error carrying the full attempt context:
// import, importing directory, project root, and library roots. When a file
// differing only in case exists next to the relative candidate, the error
// names it so case-insensitive-filesystem checkouts are diagnosable.
func (r *Resolver) failure(cwd, importPath string, cause error) error {
	msg := fmt.Sprintf(
		"cannot resolve import %q from %q (project root %q, library roots %v)",
		importPath, cwd, r.root, r.libs,
	)
	candidate := paths.Normalize(paths.Join(cwd, importPath))
	if existing, ok := paths.FindCaseInsensitiveFile(candidate); ok {
		msg = fmt.Sprintf("%s; a file with a different case exists at %q", msg, existing)
	}
	if cause != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(msg).
			WithCause(cause)
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(msg)
}
