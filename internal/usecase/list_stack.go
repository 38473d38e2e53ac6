package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-review/internal/domain"
)

// ListStackInput contains the parameters for listing the stack.
type ListStackInput struct{}

// ListStackOutput contains the listed stack entries, oldest first.
type ListStackOutput struct {
	Entries []*domain.Entry
}

// ListStack is the use case for listing the commits between the
// integration branch and the working branch, with their embedded
// review-branch metadata resolved.
type ListStack struct {
	git    domain.Git
	config domain.ConfigSource
	codec  domain.Codec
}

// NewListStack creates a new ListStack use case.
func NewListStack(git domain.Git, config domain.ConfigSource, codec domain.Codec) *ListStack {
	return &ListStack{
		git:    git,
		config: config,
		codec:  codec,
	}
}

// Execute lists the stack. An empty commit range yields an empty slice,
// not an error.
func (uc *ListStack) Execute(_ context.Context, _ ListStackInput) (*ListStackOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	lines, err := uc.git.Commits(cfg.MainBranch, cfg.WorkBranch)
	if err != nil {
		return nil, err
	}

	// The one-line log is newest first; the stack reads oldest first.
	entries := make([]*domain.Entry, 0, len(lines))
	for i := len(lines) - 1; i >= 0; i-- {
		line := lines[i]
		message, err := uc.git.CommitMessage(line.Commit)
		if err != nil {
			return nil, fmt.Errorf("resolve review branch of %s: %w", line.Commit, err)
		}
		branch := uc.codec.Decode(message)
		entries = append(entries, &domain.Entry{
			Commit:  line.Commit,
			Branch:  branch,
			Ticket:  uc.codec.Ticket(branch),
			Subject: line.Subject,
		})
	}
	return &ListStackOutput{Entries: entries}, nil
}
