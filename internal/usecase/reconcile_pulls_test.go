package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/git-review/internal/domain"
	"github.com/runoshun/git-review/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcilePulls_Execute_AttachesByHeadLabel(t *testing.T) {
	git := testutil.NewMockGit("work")
	git.Remotes["origin"] = "git@github.com:acme/widgets.git"
	forge := &testutil.MockForge{
		Pulls: []domain.Pull{
			{HeadLabel: "acme:T-2-bbbb2222", URL: "https://github.com/acme/widgets/pull/7"},
			{HeadLabel: "acme:unrelated-branch", URL: "https://github.com/acme/widgets/pull/3"},
		},
	}
	entries := []*domain.Entry{
		{Commit: "aaa1", Branch: "T-1-aaaa1111", Ticket: "T-1"},
		{Commit: "bbb2", Branch: "T-2-bbbb2222", Ticket: "T-2"},
		{Commit: "ccc3"},
	}

	uc := NewReconcilePulls(git, forge, testConfigSource())

	out, err := uc.Execute(context.Background(), ReconcilePullsInput{Entries: entries})
	require.NoError(t, err)

	assert.Empty(t, out.Entries[0].PullRequest, "branch without an open pull stays unset")
	assert.Equal(t, "https://github.com/acme/widgets/pull/7", out.Entries[1].PullRequest)
	assert.Empty(t, out.Entries[2].PullRequest, "entry without a branch is never matched")
	assert.Equal(t, domain.RepoRef{Owner: "acme", Name: "widgets"}, out.Repo)
}

func TestReconcilePulls_Execute_MissingCredentials(t *testing.T) {
	git := testutil.NewMockGit("work")
	cfg := testConfig()
	cfg.User = ""

	uc := NewReconcilePulls(git, &testutil.MockForge{}, &testutil.MockConfigSource{Cfg: cfg})

	_, err := uc.Execute(context.Background(), ReconcilePullsInput{})
	assert.ErrorIs(t, err, domain.ErrNoUser)
	assert.Empty(t, git.Calls)
}

func TestReconcilePulls_Execute_BadRemoteURL(t *testing.T) {
	git := testutil.NewMockGit("work")
	git.Remotes["origin"] = "not a url"

	uc := NewReconcilePulls(git, &testutil.MockForge{}, testConfigSource())

	_, err := uc.Execute(context.Background(), ReconcilePullsInput{})
	assert.ErrorIs(t, err, domain.ErrBadRemoteURL)
}

func TestReconcilePulls_Execute_ForgeError(t *testing.T) {
	git := testutil.NewMockGit("work")
	git.Remotes["origin"] = "git@github.com:acme/widgets.git"
	forge := &testutil.MockForge{OpenPullsErr: assert.AnError}

	uc := NewReconcilePulls(git, forge, testConfigSource())

	_, err := uc.Execute(context.Background(), ReconcilePullsInput{})
	assert.ErrorIs(t, err, assert.AnError)
}
