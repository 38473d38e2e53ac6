package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand_CreatesCommit(t *testing.T) {
	deps := newTestDeps()
	deps.Tags.Tags = []string{"x1y2z3w4"}

	out, err := execute(t, deps, "new", "--ticket", "T-17", "--message", "fix the frobnicator")
	require.NoError(t, err)
	assert.Contains(t, out, "wip: T-17: fix the frobnicator")
	assert.Contains(t, out, "T-17-x1y2z3w4")
	require.Len(t, deps.Git.Committed, 1)
	assert.Contains(t, deps.Git.Committed[0], "PR_BRANCH=T-17-x1y2z3w4")
}

func TestNewCommand_ShortFlags(t *testing.T) {
	deps := newTestDeps()

	_, err := execute(t, deps, "new", "-t", "T-17", "-m", "fix the frobnicator")
	require.NoError(t, err)
	assert.Len(t, deps.Git.Committed, 1)
}

func TestNewCommand_MissingTicket(t *testing.T) {
	deps := newTestDeps()

	_, err := execute(t, deps, "new", "-m", "fix the frobnicator")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket")
	assert.Empty(t, deps.Git.Committed)
}

func TestNewCommand_FromFile(t *testing.T) {
	deps := newTestDeps()
	deps.Tags.Tags = []string{"aaaa1111", "bbbb2222"}
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`commits:
  - ticket: T-1
    message: fix x
  - ticket: T-2
    message: fix y
`), 0o644))

	out, err := execute(t, deps, "new", "--from", path)
	require.NoError(t, err)
	assert.Contains(t, out, "T-1-aaaa1111")
	assert.Contains(t, out, "T-2-bbbb2222")
	assert.Len(t, deps.Git.Committed, 2)
}
