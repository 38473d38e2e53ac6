package domain

import "errors"

// Domain errors.
var (
	ErrNotGitRepository = errors.New("not a git repository (or any of the parent directories)")
	ErrNoWorkBranch     = errors.New("no working branch configured; run: git config --local --add review.branch <branch-name>")
	ErrNoUser           = errors.New("no platform user configured; run: git config --local --add review.user <user>")
	ErrNoAPIToken       = errors.New("no API token configured; generate one with repo access and run: git config --local --add review.api-token <token>")
	ErrNotOnWorkBranch  = errors.New("not on the configured working branch")
	ErrDirtyWorkTree    = errors.New("working directory is dirty; commit or stash your changes first")
	ErrLogParse         = errors.New("unexpected git log output")
	ErrBadRemoteURL     = errors.New("cannot determine owner/repository from remote fetch URL")
	ErrEmptyTicket      = errors.New("ticket cannot be empty")
	ErrEmptyMessage     = errors.New("commit message cannot be empty")
	ErrNoDrafts         = errors.New("drafts file contains no commits")
)
