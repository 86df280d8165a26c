// Package workspace resolves caller supplied relative paths against a sandboxed
// workspace root.
package workspace

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	tibcoerrors "github.com/kobibe/tibco-developer-hub/pkg/errors"
)

var errEscapesRoot = errors.New("resolved path is outside the root directory")

// SafeJoin joins child onto root and returns the resulting absolute path.
//
// An empty child resolves to root itself. Lexical escapes ("../..", absolute
// paths outside root) are rejected with a PathResolutionError. Symlinks inside
// root are followed but scoped to root, so a link pointing elsewhere can never
// move the result out of the subtree.
func SafeJoin(root, child string) (string, error) {
	if strings.TrimSpace(root) == "" {
		return "", tibcoerrors.NewPathResolutionError(root, child, errors.New("root directory is empty"))
	}
	if strings.ContainsRune(child, 0) {
		return "", tibcoerrors.NewPathResolutionError(root, child, errors.New("path contains NUL byte"))
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", tibcoerrors.NewPathResolutionError(root, child, fmt.Errorf("resolve root: %w", err))
	}

	target := child
	if !filepath.IsAbs(target) {
		target = filepath.Join(absRoot, target)
	}
	target = filepath.Clean(target)

	rel, err := filepath.Rel(absRoot, target)
	if err != nil {
		return "", tibcoerrors.NewPathResolutionError(absRoot, child, err)
	}
	if !IsChild(rel) {
		return "", tibcoerrors.NewPathResolutionError(absRoot, child, errEscapesRoot)
	}
	if rel == "." {
		return absRoot, nil
	}

	resolved, err := securejoin.SecureJoin(absRoot, rel)
	if err != nil {
		return "", tibcoerrors.NewPathResolutionError(absRoot, child, err)
	}
	return resolved, nil
}

// IsChild reports whether a path relative to some root stays inside that root.
func IsChild(rel string) bool {
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}

// Within reports whether target is root or one of its descendants.
func Within(root, target string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(target))
	if err != nil {
		return false
	}
	return IsChild(rel)
}
