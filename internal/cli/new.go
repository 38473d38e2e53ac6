package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/usecase"
)

// newNewCommand creates the new command for creating stacked commits.
func newNewCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Ticket  string
		Message string
		From    string
	}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new stacked commit",
		Long: `Create a new empty commit on the working branch, tagged with a derived
review-branch identifier.

The commit subject is prefixed with the draft tag; remove it with
'git-review rebase' (reword) when the commit is ready for export.

Examples:
  # Create a stacked commit for a ticket
  git-review new --ticket T-17 --message "fix the frobnicator"

  # Use "HOTFIX" when there is no ticket
  git-review new --ticket HOTFIX --message "emergency fix"

  # Numeric tickets can default the message to the issue title
  git-review new --ticket 42

  # Create several stacked commits from a drafts file
  git-review new --from plan.yaml

File format for --from:
  commits:
    - ticket: T-1
      message: fix x
    - ticket: T-2
      message: fix y`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				uc := c.NewCommitsFromFileUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.NewCommitsFromFileInput{Path: opts.From})
				if err != nil {
					return err
				}
				for _, branch := range out.Branches {
					fmt.Fprintf(cmd.OutOrStdout(), "created commit for review branch %s\n", branch)
				}
				return nil
			}

			if opts.Ticket == "" {
				return fmt.Errorf("required flag(s) \"ticket\" not set")
			}
			uc := c.NewCommitUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NewCommitInput{
				Ticket:  opts.Ticket,
				Message: opts.Message,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %q (review branch %s)\n", out.Subject, out.Branch)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Ticket, "ticket", "t", "", "Ticket/issue identifier, or \"HOTFIX\" without one")
	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "Commit message (default: fetch the issue title)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create stacked commits from a YAML drafts file")

	return cmd
}
