package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/git-review/internal/domain"
)

// ReconcilePullsInput contains the entries to correlate with open pull
// requests.
type ReconcilePullsInput struct {
	Entries []*domain.Entry
}

// ReconcilePullsOutput contains the augmented entries and the repository
// they were reconciled against.
type ReconcilePullsOutput struct {
	Entries []*domain.Entry
	Repo    domain.RepoRef
}

// ReconcilePulls is the use case for correlating stack entries with the
// open pull requests of the configured remote's repository.
type ReconcilePulls struct {
	git    domain.Git
	forge  domain.Forge
	config domain.ConfigSource
}

// NewReconcilePulls creates a new ReconcilePulls use case.
func NewReconcilePulls(git domain.Git, forge domain.Forge, config domain.ConfigSource) *ReconcilePulls {
	return &ReconcilePulls{
		git:    git,
		forge:  forge,
		config: config,
	}
}

// Execute fetches the open pull requests once and attaches the matching
// pull-request URL to each entry that has a review branch. An entry
// without a match is left untouched: it may simply not have been exported
// yet.
func (uc *ReconcilePulls) Execute(ctx context.Context, in ReconcilePullsInput) (*ReconcilePullsOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateForge(); err != nil {
		return nil, err
	}

	fetchURL, err := uc.git.FetchURL(cfg.Remote)
	if err != nil {
		return nil, err
	}
	repo, err := domain.ParseRepoRef(fetchURL)
	if err != nil {
		return nil, err
	}

	pulls, err := uc.forge.OpenPulls(ctx, cfg.Credentials(), repo)
	if err != nil {
		return nil, fmt.Errorf("list open pull requests: %w", err)
	}
	byLabel := make(map[string]string, len(pulls))
	for _, p := range pulls {
		byLabel[p.HeadLabel] = p.URL
	}

	for _, e := range in.Entries {
		if e.HasBranch() {
			e.PullRequest = byLabel[repo.Label(e.Branch)]
		}
	}
	return &ReconcilePullsOutput{Entries: in.Entries, Repo: repo}, nil
}
