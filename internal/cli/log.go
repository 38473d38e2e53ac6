package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/domain"
	"github.com/runoshun/git-review/internal/usecase"
)

// newLogCommand creates the log command for listing the stack.
func newLogCommand(c *app.Container) *cobra.Command {
	var pulls bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show what is on the stack",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListStackUseCase().Execute(cmd.Context(), usecase.ListStackInput{})
			if err != nil {
				return err
			}
			entries := out.Entries
			if pulls {
				reconciled, err := c.ReconcilePullsUseCase().Execute(cmd.Context(), usecase.ReconcilePullsInput{Entries: entries})
				if err != nil {
					return err
				}
				entries = reconciled.Entries
			}
			printEntries(cmd, entries, pulls)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pulls, "pulls", "p", false, "Find corresponding pull requests")

	return cmd
}

// printEntries writes the stack as a table, newest commit first.
func printEntries(cmd *cobra.Command, entries []*domain.Entry, pulls bool) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	if pulls {
		fmt.Fprintln(w, "COMMIT\tBRANCH\tPULL-REQUEST\tTICKET\tMESSAGE")
	} else {
		fmt.Fprintln(w, "COMMIT\tBRANCH\tTICKET\tMESSAGE")
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if pulls {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Commit, orDash(e.Branch), orDash(e.PullRequest), orDash(e.Ticket), e.Subject)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Commit, orDash(e.Branch), orDash(e.Ticket), e.Subject)
		}
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
