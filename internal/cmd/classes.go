package cmd

import (
	"github.com/spf13/cobra"
)

func newClassesCmd(a *app) *cobra.Command {
	var withCounts bool

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the selectable weight classes",
		Long: `List the weight classes accepted by --class and the browse /c command,
in display order. "Pound for Pound" selects every fighter.

With --counts the roster is loaded and the number of fighters in each
class is shown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !withCounts {
				renderClasses(cmd.OutOrStdout(), nil, 0)
				return nil
			}

			_, r, err := a.loadRoster(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			renderClasses(cmd.OutOrStdout(), r.WeightClassCounts(), r.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&withCounts, "counts", false, "load the roster and show fighters per class")
	return cmd
}
