// Package git provides git operations via the git binary.
package git

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"

	"github.com/runoshun/git-review/internal/domain"
)

// onelinePattern matches one line of `git log --oneline` output: an
// abbreviated hash followed by the subject.
var onelinePattern = regexp.MustCompile(`^(\S+)\s+(.*)$`)

// Client provides git operations by shelling out to the git binary.
type Client struct {
	repoRoot   string // Main repository root (parent of .git)
	gitDir     string // Common .git directory
	workingDir string // Current working directory (may be worktree)
}

// NewClient creates a new git client by detecting the repository root from
// the given directory.
func NewClient(dir string) (*Client, error) {
	repoRoot, gitDir, workingDir, err := findGitRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Client{
		repoRoot:   repoRoot,
		gitDir:     gitDir,
		workingDir: workingDir,
	}, nil
}

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// CurrentBranch returns the name of the checked-out branch.
func (c *Client) CurrentBranch() (string, error) {
	out, err := c.output("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("get current branch: %w", err)
	}
	return out, nil
}

// HasUncommittedChanges checks for staged or unstaged changes.
func (c *Client) HasUncommittedChanges() (bool, error) {
	out, err := c.output("status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("check uncommitted changes: %w", err)
	}
	return out != "", nil
}

// Checkout switches the working tree to an existing branch.
func (c *Client) Checkout(branch string) error {
	return c.run("checkout", branch)
}

// CheckoutNew creates a branch at the given commit and switches to it.
func (c *Client) CheckoutNew(branch, commit string) error {
	return c.run("checkout", "-b", branch, commit)
}

// DeleteBranch force-deletes a local branch. Deleting the checked-out
// branch fails; callers sequence checkouts accordingly.
func (c *Client) DeleteBranch(branch string) error {
	return c.run("branch", "-D", branch)
}

// Commits returns the one-line log for the range base..head, newest first.
func (c *Client) Commits(base, head string) ([]domain.LogLine, error) {
	out, err := c.output("log", "--oneline", base+".."+head)
	if err != nil {
		return nil, fmt.Errorf("list commits %s..%s: %w", base, head, err)
	}
	if out == "" {
		return nil, nil
	}
	var lines []domain.LogLine
	for _, line := range strings.Split(out, "\n") {
		m := onelinePattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", domain.ErrLogParse, line)
		}
		lines = append(lines, domain.LogLine{Commit: m[1], Subject: m[2]})
	}
	return lines, nil
}

// CommitMessage returns the full message body of a commit.
func (c *Client) CommitMessage(commit string) (string, error) {
	out, err := c.output("show", "-s", "--format=%B", commit)
	if err != nil {
		return "", fmt.Errorf("show commit %s: %w", commit, err)
	}
	return out, nil
}

// Commit records a commit with the full message supplied on stdin. The
// tree may be empty: stacked commits start as empty markers.
func (c *Client) Commit(message string) error {
	cmd := exec.Command("git", "commit", "--allow-empty", "-F", "-")
	cmd.Dir = c.workingDir
	cmd.Stdin = strings.NewReader(message)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git commit: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Push force-pushes a branch to the remote, setting it as the upstream of
// the pushed ref. An existing remote branch of the same name is
// overwritten unconditionally.
func (c *Client) Push(remote, branch string) error {
	return c.run("push", "--force", "--set-upstream", remote, branch)
}

// PullPrune pulls the current branch and prunes gone remote refs.
func (c *Client) PullPrune() error {
	return c.run("pull", "--prune")
}

// Rebase rebases the current branch onto the given ref.
func (c *Client) Rebase(onto string) error {
	return c.run("rebase", onto)
}

// RebaseInteractive hands terminal control to `git rebase --interactive`
// by replacing the current process image, so the user interacts with git
// directly and the tool terminates with git's exit status. --keep-empty
// preserves the empty marker commits the stack is built from.
func (c *Client) RebaseInteractive(onto string) error {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return fmt.Errorf("locate git binary: %w", err)
	}
	argv := []string{"git", "rebase", "--interactive", "--keep-empty", onto}
	if err := syscall.Exec(gitPath, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec git rebase: %w", err)
	}
	return nil
}

// FetchURL returns the fetch URL of the configured remote.
func (c *Client) FetchURL(remote string) (string, error) {
	out, err := c.output("remote", "get-url", remote)
	if err != nil {
		return "", fmt.Errorf("get remote url %s: %w", remote, err)
	}
	return out, nil
}

// Ensure Client implements domain.Git interface.
var _ domain.Git = (*Client)(nil)

// run executes a git command, surfacing the captured output on failure.
func (c *Client) run(args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.workingDir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// output executes a git command and returns its trimmed stdout.
func (c *Client) output(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.workingDir
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(out)), nil
}

// findGitRoot finds the git repository root and .git directory from the
// given directory. This works both in the main repository and inside
// worktrees.
func findGitRoot(dir string) (repoRoot, gitDir, workingDir string, err error) {
	cmd := exec.Command("git", "rev-parse", "--git-common-dir")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", "", "", domain.ErrNotGitRepository
	}
	gitDir = strings.TrimSpace(string(out))

	cmd = exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	toplevel, err := cmd.Output()
	if err != nil {
		return "", "", "", fmt.Errorf("failed to find toplevel: %w", err)
	}
	workingDir = strings.TrimSpace(string(toplevel))

	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	gitDir = filepath.Clean(gitDir)
	repoRoot = filepath.Dir(gitDir)

	return repoRoot, gitDir, workingDir, nil
}
