package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/runoshun/git-review/internal/domain"
)

// NewCommitsFromFileInput contains the parameters for creating stacked
// commits from a drafts file.
type NewCommitsFromFileInput struct {
	Path string // Path to the YAML drafts file
}

// NewCommitsFromFileOutput contains the result of the batch creation.
type NewCommitsFromFileOutput struct {
	Branches []string // Derived review-branch names, in stack order
}

// NewCommitsFromFile is the use case for creating several stacked commits
// from a YAML file of drafts, oldest stack entry first.
type NewCommitsFromFile struct {
	git    domain.Git
	config domain.ConfigSource
	tags   domain.TagGenerator
	codec  domain.Codec
}

// NewNewCommitsFromFile creates a new NewCommitsFromFile use case.
func NewNewCommitsFromFile(git domain.Git, config domain.ConfigSource, tags domain.TagGenerator, codec domain.Codec) *NewCommitsFromFile {
	return &NewCommitsFromFile{
		git:    git,
		config: config,
		tags:   tags,
		codec:  codec,
	}
}

// Execute parses the drafts file and creates one stacked commit per draft.
// The whole file is validated before the first commit is created, so a
// malformed draft never leaves a partial batch behind.
func (uc *NewCommitsFromFile) Execute(_ context.Context, in NewCommitsFromFileInput) (*NewCommitsFromFileOutput, error) {
	content, err := os.ReadFile(in.Path)
	if err != nil {
		return nil, fmt.Errorf("read drafts file: %w", err)
	}
	drafts, err := domain.ParseCommitDrafts(content)
	if err != nil {
		return nil, err
	}

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

	branches := make([]string, 0, len(drafts))
	for _, draft := range drafts {
		body, branch := uc.codec.Encode(draft.Ticket, draft.Message, uc.tags.NewTag())
		if err := uc.git.Commit(body); err != nil {
			return nil, fmt.Errorf("commit draft %q: %w", draft.Ticket, err)
		}
		branches = append(branches, branch)
	}
	return &NewCommitsFromFileOutput{Branches: branches}, nil
}
