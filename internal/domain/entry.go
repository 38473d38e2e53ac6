package domain

// Entry represents one commit on the stack. Entries are built fresh from
// live repository state on every invocation and never persisted.
type Entry struct {
	Commit      string // Short commit hash
	Branch      string // Derived review branch, "" if the commit has no trailer
	Ticket      string // Ticket/issue identifier derived from the branch name
	Subject     string // One-line commit subject
	PullRequest string // Correlated pull request URL, "" until reconciled
}

// HasBranch reports whether the commit carries review-branch metadata.
func (e *Entry) HasBranch() bool {
	return e.Branch != ""
}
