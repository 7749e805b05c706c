package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ufccards/ufccards/internal/roster"
)

// showResult is the --json shape of the show command.
type showResult struct {
	Slug    string           `json:"slug"`
	Fighter roster.Fighter   `json:"fighter"`
	Ratings []roster.Metric  `json:"ratings"`
	Stats   roster.StatSheet `json:"stats"`
}

func newShowCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <slug|name>",
		Short: "Show one fighter's card with detailed stats",
		Long: `Show the full card of one fighter.

The argument may be the fighter's slug (e.g. jon-jones) or name; several
arguments are joined with spaces, so quoting is optional.`,
		Example: `  ufccards show jon-jones
  ufccards show Alex Pereira`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			_, r, err := a.loadRoster(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			f, ok := r.Lookup(query)
			if !ok {
				return NewExitError(ExitCodeNotFound, fmt.Sprintf("no fighter matches %q", query))
			}

			if jsonOutput {
				return writeJSON(cmd, showResult{
					Slug:    f.Slug(),
					Fighter: f,
					Ratings: roster.Ratings(f),
					Stats:   roster.DetailedStats(f),
				})
			}

			renderCard(cmd.OutOrStdout(), f)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	return cmd
}
