package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/git-review/internal/domain"
	"github.com/runoshun/git-review/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommit_Execute_Success(t *testing.T) {
	git := testutil.NewMockGit("work")
	tags := &testutil.MockTagGenerator{Tags: []string{"x1y2z3w4"}}

	uc := NewNewCommit(git, &testutil.MockForge{}, testConfigSource(), tags, testCodec())

	out, err := uc.Execute(context.Background(), NewCommitInput{Ticket: "T-42", Message: "add retries"})
	require.NoError(t, err)
	assert.Equal(t, "T-42-x1y2z3w4", out.Branch)
	assert.Equal(t, "wip: T-42: add retries", out.Subject)

	require.Len(t, git.Committed, 1)
	assert.Equal(t, "wip: T-42: add retries\n\nPR_BRANCH=T-42-x1y2z3w4\n", git.Committed[0])
}

func TestNewCommit_Execute_EmptyTicket(t *testing.T) {
	git := testutil.NewMockGit("work")

	uc := NewNewCommit(git, &testutil.MockForge{}, testConfigSource(), &testutil.MockTagGenerator{}, testCodec())

	_, err := uc.Execute(context.Background(), NewCommitInput{Message: "add retries"})
	assert.ErrorIs(t, err, domain.ErrEmptyTicket)
	assert.Empty(t, git.Calls)
}

func TestNewCommit_Execute_IssueTitleFallback(t *testing.T) {
	git := testutil.NewMockGit("work")
	git.Remotes["origin"] = "https://github.com/acme/widgets.git"
	forge := &testutil.MockForge{
		Issues: map[int]*domain.Issue{42: {Number: 42, Title: "Retries are never attempted"}},
	}
	tags := &testutil.MockTagGenerator{Tags: []string{"x1y2z3w4"}}

	uc := NewNewCommit(git, forge, testConfigSource(), tags, testCodec())

	out, err := uc.Execute(context.Background(), NewCommitInput{Ticket: "42"})
	require.NoError(t, err)
	assert.Equal(t, "42-x1y2z3w4", out.Branch)
	assert.Equal(t, "wip: 42: Retries are never attempted", out.Subject)
	require.Len(t, git.Committed, 1)
	assert.Contains(t, git.Committed[0], "Retries are never attempted")
}

func TestNewCommit_Execute_NoMessageNonNumericTicket(t *testing.T) {
	git := testutil.NewMockGit("work")

	uc := NewNewCommit(git, &testutil.MockForge{}, testConfigSource(), &testutil.MockTagGenerator{}, testCodec())

	_, err := uc.Execute(context.Background(), NewCommitInput{Ticket: "HOTFIX"})
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
	assert.Empty(t, git.Committed)
}

func TestNewCommit_Execute_DirtyWorkTree(t *testing.T) {
	git := testutil.NewMockGit("work")
	git.Dirty = true

	uc := NewNewCommit(git, &testutil.MockForge{}, testConfigSource(), &testutil.MockTagGenerator{}, testCodec())

	_, err := uc.Execute(context.Background(), NewCommitInput{Ticket: "T-1", Message: "x"})
	assert.ErrorIs(t, err, domain.ErrDirtyWorkTree)
	assert.Empty(t, git.Committed)
}

func TestNewCommit_Execute_ConfigErrorNoSideEffects(t *testing.T) {
	git := testutil.NewMockGit("work")
	source := &testutil.MockConfigSource{Err: assert.AnError}

	uc := NewNewCommit(git, &testutil.MockForge{}, source, &testutil.MockTagGenerator{}, testCodec())

	_, err := uc.Execute(context.Background(), NewCommitInput{Ticket: "T-1", Message: "x"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, git.Calls)
}
