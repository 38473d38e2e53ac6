package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Update review branches and their pull requests",
		Long: `Export each non-draft stacked commit to its own remote review branch
(force-pushed, last writer wins) and open a pull request against the
integration branch for branches that have none.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ExportStackUseCase(cmd.OutOrStdout())
			out, err := uc.Execute(cmd.Context(), usecase.ExportStackInput{})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d, skipped %d, created %d pull request(s)\n",
				out.Exported, out.Skipped, out.Created)
			return nil
		},
	}
}
