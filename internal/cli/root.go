// Package cli provides the command-line interface for git-review.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
)

// Command group IDs.
const (
	groupStack  = "stack"
	groupRemote = "remote"
)

// NewRootCommand creates the root command for git-review. It receives the
// container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "git-review",
		Short: "Stack-based code-review workflow on top of git",
		Long: `git-review manages a stack of commits on a personal working branch
ahead of a shared integration branch. Each non-draft commit can be
exported to its own remote review branch, paired with a pull request
against the integration branch.

Required setup:
  git config --local --add review.branch <working-branch>
  git config --local --add review.user <platform-user>
  git config --local --add review.api-token <token>`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		// Unknown and missing subcommands fall through to help, exit 0.
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupStack, Title: "Stack Commands:"},
		&cobra.Group{ID: groupRemote, Title: "Remote Commands:"},
	)

	newCmd := newNewCommand(c)
	newCmd.GroupID = groupStack

	logCmd := newLogCommand(c)
	logCmd.GroupID = groupStack

	syncCmd := newSyncCommand(c)
	syncCmd.GroupID = groupStack

	rebaseCmd := newRebaseCommand(c)
	rebaseCmd.GroupID = groupStack

	exportCmd := newExportCommand(c)
	exportCmd.GroupID = groupRemote

	pushCmd := newPushCommand(c)
	pushCmd.GroupID = groupRemote

	configCmd := newConfigCommand(c)

	root.AddCommand(
		newCmd,
		logCmd,
		syncCmd,
		rebaseCmd,
		exportCmd,
		pushCmd,
		configCmd,
	)

	return root
}
