package usecase

import (
	"github.com/runoshun/git-review/internal/domain"
	"github.com/runoshun/git-review/internal/testutil"
)

// testConfig returns a fully populated configuration for use-case tests.
func testConfig() *domain.Config {
	return &domain.Config{
		WorkBranch: "work",
		MainBranch: "main",
		Remote:     "origin",
		User:       "alice",
		APIToken:   "secret",
	}
}

// testConfigSource wraps testConfig in a ConfigSource mock.
func testConfigSource() *testutil.MockConfigSource {
	return &testutil.MockConfigSource{Cfg: testConfig()}
}

// testCodec is the codec with default settings used across use-case tests.
func testCodec() domain.Codec {
	return domain.NewDefaultSettings().Codec()
}
