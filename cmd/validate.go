package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/intellecat/AstroCore/chart"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [chart...]",
		Short: "Check the configuration and chart files",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ok := true

			if _, err := a.cfg.RenderOptions(); err != nil {
				fmt.Fprintf(out, "✗ config: %v\n", err)
				ok = false
			} else {
				fmt.Fprintln(out, "✓ config")
			}

			for _, path := range args {
				c, err := chart.Load(path)
				if err != nil {
					fmt.Fprintf(out, "✗ %s: %v\n", path, err)
					ok = false
					continue
				}
				fmt.Fprintf(out, "✓ %s: %d bodies, %d houses, %d aspects\n",
					path, len(c.Bodies), len(c.Houses), len(c.Aspects))
			}

			if !ok {
				return errors.New("validation failed")
			}
			return nil
		},
	}
}
