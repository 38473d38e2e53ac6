package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/usecase"
)

// newRebaseCommand creates the rebase command. On success the process is
// replaced by git, so the command only returns on failure.
func newRebaseCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rebase",
		Short: "Interactively edit the stack history",
		Long: `Hand terminal control to 'git rebase --interactive --keep-empty' onto
the integration branch. The tool terminates with git's exit status.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.RebaseStackUseCase().Execute(cmd.Context(), usecase.RebaseStackInput{})
		},
	}
}
