package cli

import (
	"strings"
	"testing"

	"github.com/runoshun/git-review/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackDeps() *testDeps {
	deps := newTestDeps()
	deps.Git.Log = []domain.LogLine{
		{Commit: "bbb2", Subject: "T-2: fix pagination"},
		{Commit: "aaa1", Subject: "wip: T-1: add endpoint"},
	}
	deps.Git.Messages["aaa1"] = "wip: T-1: add endpoint\n\nPR_BRANCH=T-1-aaaa1111\n"
	deps.Git.Messages["bbb2"] = "T-2: fix pagination\n\nPR_BRANCH=T-2-bbbb2222\n"
	deps.Git.Remotes["origin"] = "git@github.com:acme/widgets.git"
	return deps
}

func TestLogCommand_NewestFirst(t *testing.T) {
	out, err := execute(t, stackDeps(), "log")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "COMMIT")
	assert.Contains(t, lines[0], "TICKET")
	assert.NotContains(t, lines[0], "PULL-REQUEST")
	assert.Contains(t, lines[1], "bbb2")
	assert.Contains(t, lines[2], "aaa1")
}

func TestLogCommand_EmptyStack(t *testing.T) {
	out, err := execute(t, newTestDeps(), "log")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1, "only the header is printed")
}

func TestLogCommand_WithPulls(t *testing.T) {
	deps := stackDeps()
	deps.Forge.Pulls = []domain.Pull{
		{HeadLabel: "acme:T-2-bbbb2222", URL: "https://github.com/acme/widgets/pull/7"},
	}

	out, err := execute(t, deps, "log", "--pulls")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PULL-REQUEST")
	assert.Contains(t, lines[1], "https://github.com/acme/widgets/pull/7")
	// The unexported draft commit has no pull request.
	assert.Contains(t, lines[2], "-")
}

func TestLogCommand_DashForMissingBranch(t *testing.T) {
	deps := newTestDeps()
	deps.Git.Log = []domain.LogLine{{Commit: "ccc3", Subject: "T-3: drive-by fix"}}
	deps.Git.Messages["ccc3"] = "T-3: drive-by fix\n"

	out, err := execute(t, deps, "log")
	require.NoError(t, err)
	assert.Contains(t, out, "-")
}
