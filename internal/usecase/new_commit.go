package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/runoshun/git-review/internal/domain"
)

// NewCommitInput contains the parameters for creating a stacked commit.
type NewCommitInput struct {
	Ticket  string // Ticket/issue identifier, or "HOTFIX" without one (required)
	Message string // Commit message; empty = fetch the issue title from the platform
}

// NewCommitOutput contains the result of creating a stacked commit.
type NewCommitOutput struct {
	Branch  string // Derived review-branch name
	Subject string // Subject line of the created commit
}

// NewCommit is the use case for creating a new stacked commit tagged with
// a derived review-branch identifier.
type NewCommit struct {
	git    domain.Git
	forge  domain.Forge
	config domain.ConfigSource
	tags   domain.TagGenerator
	codec  domain.Codec
}

// NewNewCommit creates a new NewCommit use case.
func NewNewCommit(git domain.Git, forge domain.Forge, config domain.ConfigSource, tags domain.TagGenerator, codec domain.Codec) *NewCommit {
	return &NewCommit{
		git:    git,
		forge:  forge,
		config: config,
		tags:   tags,
		codec:  codec,
	}
}

// Execute creates the commit. The commit is empty (a stack marker) and its
// message embeds the derived review-branch name as a trailer.
func (uc *NewCommit) Execute(ctx context.Context, in NewCommitInput) (*NewCommitOutput, error) {
	if in.Ticket == "" {
		return nil, domain.ErrEmptyTicket
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

	message := in.Message
	if message == "" {
		message, err = uc.issueTitle(ctx, cfg, in.Ticket)
		if err != nil {
			return nil, err
		}
	}

	body, branch := uc.codec.Encode(in.Ticket, message, uc.tags.NewTag())
	if err := uc.git.Commit(body); err != nil {
		return nil, err
	}
	return &NewCommitOutput{
		Branch:  branch,
		Subject: fmt.Sprintf("%s: %s: %s", uc.codec.DraftTag, in.Ticket, message),
	}, nil
}

// issueTitle fetches the issue title from the hosting platform as the
// default commit message. Only numeric tickets map to issues.
func (uc *NewCommit) issueTitle(ctx context.Context, cfg *domain.Config, ticket string) (string, error) {
	number, err := strconv.Atoi(ticket)
	if err != nil {
		return "", fmt.Errorf("%w (ticket %q is not an issue number)", domain.ErrEmptyMessage, ticket)
	}
	if err := cfg.ValidateForge(); err != nil {
		return "", err
	}
	fetchURL, err := uc.git.FetchURL(cfg.Remote)
	if err != nil {
		return "", err
	}
	repo, err := domain.ParseRepoRef(fetchURL)
	if err != nil {
		return "", err
	}
	issue, err := uc.forge.Issue(ctx, cfg.Credentials(), repo, number)
	if err != nil {
		return "", fmt.Errorf("fetch issue %d: %w", number, err)
	}
	return issue.Title, nil
}
