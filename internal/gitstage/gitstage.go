// Package gitstage adds generated files to the index of the repository that
// contains them.
package gitstage

import (
	"errors"
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"

	"github.com/kobibe/tibco-developer-hub/internal/action"
	"github.com/kobibe/tibco-developer-hub/internal/workspace"
)

// Stage adds file to the index of the git repository found at or above
// repoDir. The search never leaves workspaceRoot: a repository whose worktree
// starts above the workspace is treated like no repository at all. Stage
// reports false without error when nothing was staged for that reason.
func Stage(workspaceRoot, repoDir, file string, log action.Logger) (bool, error) {
	if log == nil {
		log = action.NopLogger()
	}

	root, err := filepath.Abs(workspaceRoot)
	if err != nil {
		return false, fmt.Errorf("resolve workspace %s: %w", workspaceRoot, err)
	}
	if !workspace.Within(root, repoDir) {
		return false, fmt.Errorf("%s is outside the workspace %s", repoDir, root)
	}

	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		log.Info(fmt.Sprintf("%s is not a git repository, skipping staging", repoDir))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("open repository at %s: %w", repoDir, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("open worktree: %w", err)
	}
	worktreeRoot := wt.Filesystem.Root()
	if !workspace.Within(root, worktreeRoot) {
		log.Info(fmt.Sprintf("repository at %s is outside the workspace, skipping staging", worktreeRoot))
		return false, nil
	}

	absFile, err := filepath.Abs(file)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", file, err)
	}
	rel, err := filepath.Rel(worktreeRoot, absFile)
	if err != nil || !workspace.IsChild(rel) || rel == "." {
		return false, fmt.Errorf("%s is outside the worktree %s", file, worktreeRoot)
	}

	if _, err := wt.Add(filepath.ToSlash(rel)); err != nil {
		return false, fmt.Errorf("stage %s: %w", rel, err)
	}

	log.Info(fmt.Sprintf("Staged %s", rel))
	return true, nil
}
