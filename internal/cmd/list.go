package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ufccards/ufccards/internal/paginate"
	"github.com/ufccards/ufccards/internal/roster"
)

// listResult is the --json shape of the list command.
type listResult struct {
	Criteria roster.Criteria  `json:"criteria"`
	Total    int              `json:"total"`
	Matched  int              `json:"matched"`
	Shown    int              `json:"shown"`
	HasMore  bool             `json:"has_more"`
	Fighters []roster.Fighter `json:"fighters"`
}

func newListCmd(a *app) *cobra.Command {
	var (
		search     string
		class      string
		pages      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List fighters matching a search and weight class",
		Long: `List fighter cards in rank order.

--search matches name or nickname, case-insensitively. --class selects a
weight class (see "ufccards classes"); the default selects every class and
ranks by pound-for-pound. Results are paged in batches of batch_size; use
--pages to reveal more batches. A search shows every match at once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if pages < 1 {
				return NewExitError(ExitCodeFailure, fmt.Sprintf("--pages must be at least 1, got %d", pages))
			}

			weightClass, err := a.weightClass(class)
			if err != nil {
				return err
			}

			_, r, err := a.loadRoster(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			session := paginate.NewSession(r.All(),
				paginate.WithBatchSize(a.cfg.UFCCards.BatchSize),
				paginate.WithLogger(a.logger))
			defer session.Close()

			session.SetCriteria(roster.Criteria{Search: search, WeightClass: weightClass})
			for i := 1; i < pages; i++ {
				if !session.Advance() {
					break
				}
			}

			view := session.View()
			if jsonOutput {
				return writeJSON(cmd, listResult{
					Criteria: view.Criteria,
					Total:    view.Total,
					Matched:  view.Matched,
					Shown:    view.Shown(),
					HasMore:  view.HasMore,
					Fighters: view.Fighters,
				})
			}

			renderView(cmd.OutOrStdout(), view)
			if view.HasMore {
				cmd.Printf("Use --pages %d to show more.\n", pages+1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by name or nickname")
	cmd.Flags().StringVarP(&class, "class", "c", "", "weight class (default from config)")
	cmd.Flags().IntVarP(&pages, "pages", "p", 1, "number of batches to show")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

// writeJSON writes v as indented JSON to the command output.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
