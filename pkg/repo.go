package gitrelease

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// DefaultBranch is pushed when the current branch cannot be determined,
// e.g. on a detached HEAD or in a repository without commits.
const DefaultBranch = "main"

// Repository describes the git worktree a release runs in.
type Repository struct {
	// Root is the top-level directory of the worktree.
	Root string
	// Branch is the checked out branch, or "" on a detached HEAD.
	Branch string
}

// OpenRepository locates the worktree containing dir, searching parent
// directories like git does.
func OpenRepository(dir string) (Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return Repository{}, errors.Wrapf(err, "opening git repository at %s", dir)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return Repository{}, errors.Wrapf(err, "%s has no worktree", dir)
	}

	r := Repository{Root: wt.Filesystem.Root()}
	// Head fails in a repository without commits; leave Branch empty then.
	if head, err := repo.Head(); err == nil && head.Name().IsBranch() {
		r.Branch = head.Name().Short()
	}
	return r, nil
}

// BranchOr returns the current branch, or fallback when there is none.
func (r Repository) BranchOr(fallback string) string {
	if r.Branch != "" {
		return r.Branch
	}
	return fallback
}
