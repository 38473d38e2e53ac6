// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"github.com/runoshun/git-review/internal/domain"
)

// ensureCleanState verifies the precondition every mutating command
// requires: HEAD is on the configured working branch and the working tree
// has no uncommitted changes. The check is not repeated between the steps
// of a multi-step command; concurrent external modification is out of
// scope.
func ensureCleanState(g domain.Git, cfg *domain.Config) error {
	current, err := g.CurrentBranch()
	if err != nil {
		return fmt.Errorf("get current branch: %w", err)
	}
	if current != cfg.WorkBranch {
		return fmt.Errorf("%w: checkout %q first", domain.ErrNotOnWorkBranch, cfg.WorkBranch)
	}
	dirty, err := g.HasUncommittedChanges()
	if err != nil {
		return fmt.Errorf("check working tree: %w", err)
	}
	if dirty {
		return domain.ErrDirtyWorkTree
	}
	return nil
}
