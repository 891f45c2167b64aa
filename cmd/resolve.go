package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/intellecat/AstroCore/chart"
	"github.com/intellecat/AstroCore/collision"
)

func (a *app) resolveCmd() *cobra.Command {
	var stacked, noHouses bool
	cmd := &cobra.Command{
		Use:   "resolve <chart>",
		Short: "Print where each body's symbol would be drawn",
		Long: "Resolve symbol collisions for a chart file and print the original and\n" +
			"adjusted longitude of each body. House cusps are avoided when the chart has\n" +
			"houses, unless --no-houses is given. --stacked separates bodies radially.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := chart.Load(args[0])
			if err != nil {
				return err
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			col := a.cfg.Collision

			var res collision.Result
			if stacked {
				res = collision.ResolveStackedWithReport(c.Points(), col.SynastryMinDistance)
			} else {
				avoid := col.AvoidHouses && !noHouses && len(c.Houses) > 0
				res = collision.ResolveWithReport(c.Points(), c.Boundaries(), col.MinDistance, col.HouseBuffer, avoid)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "BODY\tORIGINAL\tADJUSTED\tSHIFT\tTRACK")
			for _, p := range res.Positions {
				fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%+.2f\t%d\n",
					p.ID, p.OriginalLongitude, p.AdjustedLongitude, p.Displacement(), p.RadialOffset)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\niterations: %d, converged: %t\n", res.Iterations, res.Converged)
			return nil
		},
	}
	cmd.Flags().BoolVar(&stacked, "stacked", false, "use the radial stacking resolver")
	cmd.Flags().BoolVar(&noHouses, "no-houses", false, "ignore house cusps")
	cmd.Flags().Float64("min-distance", 0, "minimum angular gap between symbols, in degrees")
	return cmd
}
