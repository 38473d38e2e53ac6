package usecase

import (
	"context"

	"github.com/runoshun/git-review/internal/domain"
)

// PushStackInput contains the parameters for pushing the working branch.
type PushStackInput struct{}

// PushStackOutput contains the result of pushing the working branch.
type PushStackOutput struct {
	Remote string
	Branch string
}

// PushStack is the use case for force-pushing the whole working branch
// verbatim, for workflows that review the stack branch itself instead of
// per-commit review branches.
type PushStack struct {
	git    domain.Git
	config domain.ConfigSource
}

// NewPushStack creates a new PushStack use case.
func NewPushStack(git domain.Git, config domain.ConfigSource) *PushStack {
	return &PushStack{
		git:    git,
		config: config,
	}
}

// Execute force-pushes the working branch to the configured remote.
func (uc *PushStack) Execute(_ context.Context, _ PushStackInput) (*PushStackOutput, error) {
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
	if err := uc.git.Push(cfg.Remote, cfg.WorkBranch); err != nil {
		return nil, err
	}
	return &PushStackOutput{Remote: cfg.Remote, Branch: cfg.WorkBranch}, nil
}
