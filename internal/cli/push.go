package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/usecase"
)

// newPushCommand creates the push command.
func newPushCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Force-push the whole working branch verbatim",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.PushStackUseCase().Execute(cmd.Context(), usecase.PushStackInput{})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pushed %s to %s\n", out.Branch, out.Remote)
			return nil
		},
	}
}
