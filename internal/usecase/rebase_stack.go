package usecase

import (
	"context"

	"github.com/runoshun/git-review/internal/domain"
)

// RebaseStackInput contains the parameters for interactively rebasing the
// stack.
type RebaseStackInput struct{}

// RebaseStack is the use case for interactively editing the stack history.
// It is an explicit escape hatch from the tool's own process lifecycle:
// terminal control is handed to git and the process image is replaced, so
// Execute does not return on success.
type RebaseStack struct {
	git    domain.Git
	config domain.ConfigSource
}

// NewRebaseStack creates a new RebaseStack use case.
func NewRebaseStack(git domain.Git, config domain.ConfigSource) *RebaseStack {
	return &RebaseStack{
		git:    git,
		config: config,
	}
}

// Execute validates the preconditions and replaces the process with an
// interactive rebase onto the integration branch.
func (uc *RebaseStack) Execute(_ context.Context, _ RebaseStackInput) error {
	cfg, err := uc.config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ensureCleanState(uc.git, cfg); err != nil {
		return err
	}
	return uc.git.RebaseInteractive(cfg.MainBranch)
}
