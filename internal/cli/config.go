package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-review/internal/app"
	"github.com/runoshun/git-review/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintf(w, "branch\t%s\n", out.Config.WorkBranch)
			fmt.Fprintf(w, "main\t%s\n", out.Config.MainBranch)
			fmt.Fprintf(w, "origin\t%s\n", out.Config.Remote)
			fmt.Fprintf(w, "user\t%s\n", out.Config.User)
			fmt.Fprintf(w, "api-token\t%s\n", maskToken(out.Config.APIToken))
			fmt.Fprintf(w, "api-url\t%s\n", out.Settings.APIBaseURL)
			fmt.Fprintf(w, "trailer-key\t%s\n", out.Settings.TrailerKey)
			fmt.Fprintf(w, "draft-tag\t%s\n", out.Settings.DraftTag)
			fmt.Fprintf(w, "export.latest-only\t%v\n", out.Settings.Export.LatestOnly)
			return w.Flush()
		},
	}
}

// maskToken hides all but the last four characters of the API token.
func maskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 4 {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-4) + token[len(token)-4:]
}
