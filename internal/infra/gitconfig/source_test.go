package gitconfig

import (
	"testing"

	git "github.com/go-git/go-git/v5"

	"github.com/runoshun/git-review/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo creates a repository whose local configuration carries the
// given review.* options.
func setupRepo(t *testing.T, options map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	cfg, err := repo.Config()
	require.NoError(t, err)
	sec := cfg.Raw.Section(domain.ConfigSection)
	for key, value := range options {
		sec.SetOption(key, value)
	}
	require.NoError(t, repo.SetConfig(cfg))

	return dir
}

func TestSource_Load_AllKeys(t *testing.T) {
	dir := setupRepo(t, map[string]string{
		"branch":    "work",
		"main":      "develop",
		"origin":    "upstream",
		"user":      "alice",
		"api-token": "secret",
	})

	cfg, err := NewSource(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, &domain.Config{
		WorkBranch: "work",
		MainBranch: "develop",
		Remote:     "upstream",
		User:       "alice",
		APIToken:   "secret",
	}, cfg)
}

func TestSource_Load_Defaults(t *testing.T) {
	dir := setupRepo(t, map[string]string{"branch": "work"})

	cfg, err := NewSource(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "work", cfg.WorkBranch)
	assert.Equal(t, domain.DefaultMainBranch, cfg.MainBranch)
	assert.Equal(t, domain.DefaultRemote, cfg.Remote)
	assert.Empty(t, cfg.User)
	assert.Empty(t, cfg.APIToken)
}

func TestSource_Load_MasterKeyFallback(t *testing.T) {
	dir := setupRepo(t, map[string]string{
		"branch": "work",
		"master": "trunk",
	})

	cfg, err := NewSource(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "trunk", cfg.MainBranch)
}

func TestSource_Load_NoSection(t *testing.T) {
	dir := setupRepo(t, nil)

	cfg, err := NewSource(dir).Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.WorkBranch)
	assert.ErrorIs(t, cfg.Validate(), domain.ErrNoWorkBranch)
}

func TestSource_Load_NotARepository(t *testing.T) {
	_, err := NewSource(t.TempDir()).Load()
	assert.Error(t, err)
}
