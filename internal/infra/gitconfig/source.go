// Package gitconfig loads the tool configuration from the local repository
// configuration.
package gitconfig

import (
	"fmt"

	git "github.com/go-git/go-git/v5"

	"github.com/runoshun/git-review/internal/domain"
)

// Source reads the review.* keys of the local repository configuration
// using go-git.
type Source struct {
	repoRoot string
}

// NewSource creates a new Source for the repository at repoRoot.
func NewSource(repoRoot string) *Source {
	return &Source{repoRoot: repoRoot}
}

// Ensure Source implements domain.ConfigSource.
var _ domain.ConfigSource = (*Source)(nil)

// Load reads the configuration once. Optional keys fall back to their
// defaults; required keys are validated by the command that needs them.
func (s *Source) Load() (*domain.Config, error) {
	repo, err := git.PlainOpen(s.repoRoot)
	if err != nil {
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	raw, err := repo.Config()
	if err != nil {
		return nil, fmt.Errorf("read repository configuration: %w", err)
	}
	sec := raw.Raw.Section(domain.ConfigSection)

	cfg := &domain.Config{
		WorkBranch: sec.Option("branch"),
		MainBranch: sec.Option("main"),
		Remote:     sec.Option("origin"),
		User:       sec.Option("user"),
		APIToken:   sec.Option("api-token"),
	}
	// The integration branch key predates the main/master rename.
	if cfg.MainBranch == "" {
		cfg.MainBranch = sec.Option("master")
	}
	if cfg.MainBranch == "" {
		cfg.MainBranch = domain.DefaultMainBranch
	}
	if cfg.Remote == "" {
		cfg.Remote = domain.DefaultRemote
	}
	return cfg, nil
}
