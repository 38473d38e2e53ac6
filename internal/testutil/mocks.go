// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"

	"github.com/runoshun/git-review/internal/domain"
)

// MockGit is a test double for domain.Git. Every invocation is recorded in
// Calls in "name(arg,...)" form so tests can assert exact step ordering.
type MockGit struct {
	Calls []string

	Branch    string            // Current branch
	Dirty     bool              // Uncommitted changes present
	Log       []domain.LogLine  // One-line log, newest first
	Messages  map[string]string // Commit hash -> full message
	Committed []string          // Messages recorded by Commit
	Remotes   map[string]string // Remote name -> fetch URL

	CurrentBranchErr    error
	StatusErr           error
	CheckoutErr         error
	CheckoutNewErr      error
	DeleteBranchErr     error
	DeleteBranchErrOnce error // Returned by the next DeleteBranch only
	CommitsErr          error
	CommitErr           error
	PushErr             error
	PullErr             error
	RebaseErr           error
	FetchURLErr         error
}

// NewMockGit creates a MockGit positioned on the given clean branch.
func NewMockGit(branch string) *MockGit {
	return &MockGit{
		Branch:   branch,
		Messages: make(map[string]string),
		Remotes:  make(map[string]string),
	}
}

func (m *MockGit) record(name string, args ...string) {
	call := name + "("
	for i, a := range args {
		if i > 0 {
			call += ","
		}
		call += a
	}
	m.Calls = append(m.Calls, call+")")
}

// CurrentBranch returns the configured branch.
func (m *MockGit) CurrentBranch() (string, error) {
	m.record("CurrentBranch")
	return m.Branch, m.CurrentBranchErr
}

// HasUncommittedChanges returns the configured dirtiness.
func (m *MockGit) HasUncommittedChanges() (bool, error) {
	m.record("HasUncommittedChanges")
	return m.Dirty, m.StatusErr
}

// Checkout records the call and tracks the current branch.
func (m *MockGit) Checkout(branch string) error {
	m.record("Checkout", branch)
	if m.CheckoutErr != nil {
		return m.CheckoutErr
	}
	m.Branch = branch
	return nil
}

// CheckoutNew records the call and tracks the current branch.
func (m *MockGit) CheckoutNew(branch, commit string) error {
	m.record("CheckoutNew", branch, commit)
	if m.CheckoutNewErr != nil {
		return m.CheckoutNewErr
	}
	m.Branch = branch
	return nil
}

// DeleteBranch records the call.
func (m *MockGit) DeleteBranch(branch string) error {
	m.record("DeleteBranch", branch)
	if err := m.DeleteBranchErrOnce; err != nil {
		m.DeleteBranchErrOnce = nil
		return err
	}
	return m.DeleteBranchErr
}

// Commits returns the configured log.
func (m *MockGit) Commits(base, head string) ([]domain.LogLine, error) {
	m.record("Commits", base, head)
	return m.Log, m.CommitsErr
}

// CommitMessage returns the configured message for a commit.
func (m *MockGit) CommitMessage(commit string) (string, error) {
	m.record("CommitMessage", commit)
	msg, ok := m.Messages[commit]
	if !ok {
		return "", fmt.Errorf("no such commit %q", commit)
	}
	return msg, nil
}

// Commit records the created commit message.
func (m *MockGit) Commit(message string) error {
	m.record("Commit")
	if m.CommitErr != nil {
		return m.CommitErr
	}
	m.Committed = append(m.Committed, message)
	return nil
}

// Push records the call.
func (m *MockGit) Push(remote, branch string) error {
	m.record("Push", remote, branch)
	return m.PushErr
}

// PullPrune records the call.
func (m *MockGit) PullPrune() error {
	m.record("PullPrune")
	return m.PullErr
}

// Rebase records the call.
func (m *MockGit) Rebase(onto string) error {
	m.record("Rebase", onto)
	return m.RebaseErr
}

// RebaseInteractive records the call. The real implementation replaces the
// process; the mock just returns.
func (m *MockGit) RebaseInteractive(onto string) error {
	m.record("RebaseInteractive", onto)
	return m.RebaseErr
}

// FetchURL returns the configured fetch URL for the remote.
func (m *MockGit) FetchURL(remote string) (string, error) {
	m.record("FetchURL", remote)
	if m.FetchURLErr != nil {
		return "", m.FetchURLErr
	}
	url, ok := m.Remotes[remote]
	if !ok {
		return "", fmt.Errorf("no such remote %q", remote)
	}
	return url, nil
}

// Ensure MockGit implements domain.Git.
var _ domain.Git = (*MockGit)(nil)

// MockForge is a test double for domain.Forge.
type MockForge struct {
	Pulls   []domain.Pull
	Issues  map[int]*domain.Issue
	Created []domain.PullSpec

	OpenPullsErr  error
	CreatePullErr error
	IssueErr      error
}

// OpenPulls returns the configured open pull requests.
func (m *MockForge) OpenPulls(_ context.Context, _ domain.Credentials, _ domain.RepoRef) ([]domain.Pull, error) {
	if m.OpenPullsErr != nil {
		return nil, m.OpenPullsErr
	}
	return m.Pulls, nil
}

// CreatePull records the spec and returns a synthetic pull request.
func (m *MockForge) CreatePull(_ context.Context, _ domain.Credentials, repo domain.RepoRef, spec domain.PullSpec) (*domain.Pull, error) {
	if m.CreatePullErr != nil {
		return nil, m.CreatePullErr
	}
	m.Created = append(m.Created, spec)
	return &domain.Pull{
		Number:    len(m.Created),
		Title:     spec.Title,
		URL:       fmt.Sprintf("https://example.test/%s/pull/%d", repo.Path(), len(m.Created)),
		HeadLabel: repo.Label(spec.Head),
		HeadRef:   spec.Head,
		BaseRef:   spec.Base,
	}, nil
}

// Issue returns the configured issue.
func (m *MockForge) Issue(_ context.Context, _ domain.Credentials, _ domain.RepoRef, number int) (*domain.Issue, error) {
	if m.IssueErr != nil {
		return nil, m.IssueErr
	}
	issue, ok := m.Issues[number]
	if !ok {
		return nil, fmt.Errorf("no such issue %d", number)
	}
	return issue, nil
}

// Ensure MockForge implements domain.Forge.
var _ domain.Forge = (*MockForge)(nil)

// MockConfigSource is a test double for domain.ConfigSource.
type MockConfigSource struct {
	Cfg *domain.Config
	Err error
}

// Load returns the configured config or error.
func (m *MockConfigSource) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Cfg, nil
}

// Ensure MockConfigSource implements domain.ConfigSource.
var _ domain.ConfigSource = (*MockConfigSource)(nil)

// MockTagGenerator is a test double for domain.TagGenerator returning a
// fixed sequence of tags.
type MockTagGenerator struct {
	Tags []string
	next int
}

// NewTag returns the next configured tag, cycling when exhausted.
func (m *MockTagGenerator) NewTag() string {
	if len(m.Tags) == 0 {
		return "aaaa0000"
	}
	tag := m.Tags[m.next%len(m.Tags)]
	m.next++
	return tag
}

// Ensure MockTagGenerator implements domain.TagGenerator.
var _ domain.TagGenerator = (*MockTagGenerator)(nil)
