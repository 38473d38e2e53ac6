package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/usecase"
)

// newSyncCommand creates the sync command.
func newSyncCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Rebase the working branch onto the fresh integration branch",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.SyncStackUseCase().Execute(cmd.Context(), usecase.SyncStackInput{})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rebased %s onto %s\n", out.WorkBranch, out.MainBranch)
			return nil
		},
	}
}
