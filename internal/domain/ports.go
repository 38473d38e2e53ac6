package domain

import "context"

// Git provides the version-control operations used by the tool. The
// implementation shells out to the git binary; every method is a single
// synchronous subprocess invocation.
type Git interface {
	// CurrentBranch returns the name of the checked-out branch.
	CurrentBranch() (string, error)

	// HasUncommittedChanges checks for staged or unstaged changes.
	HasUncommittedChanges() (bool, error)

	// Checkout switches the working tree to an existing branch.
	Checkout(branch string) error

	// CheckoutNew creates a branch at the given commit and switches to it.
	CheckoutNew(branch, commit string) error

	// DeleteBranch force-deletes a local branch.
	DeleteBranch(branch string) error

	// Commits returns the one-line log for the range base..head,
	// newest first. An empty range yields an empty slice.
	Commits(base, head string) ([]LogLine, error)

	// CommitMessage returns the full message body of a commit.
	CommitMessage(commit string) (string, error)

	// Commit records a commit with the full message supplied on stdin,
	// allowing an empty tree.
	Commit(message string) error

	// Push force-pushes a branch to the remote, setting it as upstream.
	Push(remote, branch string) error

	// PullPrune pulls the current branch and prunes gone remote refs.
	PullPrune() error

	// Rebase rebases the current branch onto the given ref.
	Rebase(onto string) error

	// RebaseInteractive hands terminal control to an interactive rebase
	// by replacing the current process image. It only returns on failure
	// to start the child process.
	RebaseInteractive(onto string) error

	// FetchURL returns the fetch URL of the configured remote.
	FetchURL(remote string) (string, error)
}

// LogLine is one parsed line of the one-line commit log.
type LogLine struct {
	Commit  string
	Subject string
}

// Forge is the hosting platform's pull-request API.
type Forge interface {
	// OpenPulls lists all open pull requests of a repository.
	OpenPulls(ctx context.Context, auth Credentials, repo RepoRef) ([]Pull, error)

	// CreatePull opens a new pull request.
	CreatePull(ctx context.Context, auth Credentials, repo RepoRef, spec PullSpec) (*Pull, error)

	// Issue retrieves a single issue.
	Issue(ctx context.Context, auth Credentials, repo RepoRef, number int) (*Issue, error)
}

// ConfigSource loads the tool configuration from the local repository
// configuration.
type ConfigSource interface {
	// Load returns the configuration. Defaults are applied for optional
	// keys; required keys are validated by the caller.
	Load() (*Config, error)
}

// SettingsLoader loads the optional tool settings file.
type SettingsLoader interface {
	// Load returns the settings, falling back to defaults when no file
	// exists.
	Load() (*Settings, error)
}
