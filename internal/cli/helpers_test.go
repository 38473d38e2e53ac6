package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/domain"
	"github.com/runoshun/git-review/internal/testutil"
)

// testDeps bundles the mocks behind a test container.
type testDeps struct {
	Git    *testutil.MockGit
	Forge  *testutil.MockForge
	Source *testutil.MockConfigSource
	Tags   *testutil.MockTagGenerator
}

// newTestDeps returns mocks for a clean working branch with a full
// configuration.
func newTestDeps() *testDeps {
	return &testDeps{
		Git:   testutil.NewMockGit("work"),
		Forge: &testutil.MockForge{},
		Source: &testutil.MockConfigSource{Cfg: &domain.Config{
			WorkBranch: "work",
			MainBranch: "main",
			Remote:     "origin",
			User:       "alice",
			APIToken:   "secret-token",
		}},
		Tags: &testutil.MockTagGenerator{},
	}
}

// execute runs the root command built from deps with the given arguments
// and returns the combined output.
func execute(t *testing.T, deps *testDeps, args ...string) (string, error) {
	t.Helper()
	container := app.NewWithDeps(deps.Git, deps.Forge, deps.Source, deps.Tags, nil, nil)
	root := NewRootCommand(container, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// findCommand returns the named subcommand of root, failing the test if
// it is not registered.
func findCommand(t *testing.T, root *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}
