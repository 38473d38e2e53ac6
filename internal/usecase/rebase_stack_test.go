package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/git-review/internal/domain"
	"github.com/runoshun/git-review/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebaseStack_Execute_Success(t *testing.T) {
	git := testutil.NewMockGit("work")

	uc := NewRebaseStack(git, testConfigSource())

	require.NoError(t, uc.Execute(context.Background(), RebaseStackInput{}))
	assert.Contains(t, git.Calls, "RebaseInteractive(main)")
}

func TestRebaseStack_Execute_DirtyWorkTree(t *testing.T) {
	git := testutil.NewMockGit("work")
	git.Dirty = true

	uc := NewRebaseStack(git, testConfigSource())

	err := uc.Execute(context.Background(), RebaseStackInput{})
	assert.ErrorIs(t, err, domain.ErrDirtyWorkTree)
	assert.NotContains(t, git.Calls, "RebaseInteractive(main)")
}
