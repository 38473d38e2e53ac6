package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-review/internal/domain"
)

// SyncStackInput contains the parameters for syncing the stack.
type SyncStackInput struct{}

// SyncStackOutput contains the result of syncing the stack.
type SyncStackOutput struct {
	MainBranch string
	WorkBranch string
}

// SyncStack is the use case for rebasing the working branch onto a freshly
// pulled integration branch.
type SyncStack struct {
	git    domain.Git
	config domain.ConfigSource
}

// NewSyncStack creates a new SyncStack use case.
func NewSyncStack(git domain.Git, config domain.ConfigSource) *SyncStack {
	return &SyncStack{
		git:    git,
		config: config,
	}
}

// Execute syncs the stack: checkout the integration branch, pull with
// pruning, return to the working branch, rebase onto the integration
// branch. Steps run in order with no rollback; a failure leaves the
// repository wherever git left it.
func (uc *SyncStack) Execute(_ context.Context, _ SyncStackInput) (*SyncStackOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ensureCleanState(uc.git, cfg); err != nil {
		return nil, err
	}

	if err := uc.git.Checkout(cfg.MainBranch); err != nil {
		return nil, err
	}
	if err := uc.git.PullPrune(); err != nil {
		return nil, err
	}
	if err := uc.git.Checkout(cfg.WorkBranch); err != nil {
		return nil, err
	}
	if err := uc.git.Rebase(cfg.MainBranch); err != nil {
		return nil, fmt.Errorf("rebase %s onto %s: %w", cfg.WorkBranch, cfg.MainBranch, err)
	}
	return &SyncStackOutput{MainBranch: cfg.MainBranch, WorkBranch: cfg.WorkBranch}, nil
}
