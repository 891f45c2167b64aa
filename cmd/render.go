package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/intellecat/AstroCore/chart"
	"github.com/intellecat/AstroCore/internal/debug"
	"github.com/intellecat/AstroCore/internal/watch"
	"github.com/intellecat/AstroCore/render"
)

// drawFunc renders loaded charts, in argument order.
type drawFunc func(charts []*chart.Chart, opts render.Options) string

type renderFlags struct {
	output string
	watch  bool
}

func (a *app) renderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart wheel to SVG",
		Long: "Render a chart wheel to SVG. Without --output the first chart file's name\n" +
			"is used with its extension replaced by .svg; --output - writes to stdout.",
	}
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.output, "output", "o", "", "output SVG file")
	flags.BoolVarP(&f.watch, "watch", "w", false, "re-render whenever an input file changes")
	flags.Int("width", 0, "canvas width in pixels")
	flags.Int("height", 0, "canvas height in pixels")
	flags.Float64("min-distance", 0, "minimum angular gap between symbols, in degrees")
	flags.String("marker", "", "marker style: line, dot, triangle or none")

	sub := []struct {
		use, short, suffix string
		args               int
		draw               drawFunc
	}{
		{"natal <chart>", "Natal wheel with houses and aspects", "", 1,
			func(c []*chart.Chart, o render.Options) string { return render.Natal(c[0], o) }},
		{"transit <natal> <transit>", "Natal wheel with an outer ring of transits", "-transit", 2,
			func(c []*chart.Chart, o render.Options) string { return render.Transit(c[0], c[1], o) }},
		{"synastry <a> <b>", "Two charts on one wheel, stacked by band", "-synastry", 2,
			func(c []*chart.Chart, o render.Options) string { return render.Synastry(c[0], c[1], o) }},
		{"composite <a> <b>", "Midpoint composite chart of two charts", "-composite", 2,
			func(c []*chart.Chart, o render.Options) string {
				comp := chart.Composite(c[0], c[1])
				return render.Natal(&comp, o)
			}},
		{"noon <chart>", "Wheel without houses for an unknown birth time", "-noon", 1,
			func(c []*chart.Chart, o render.Options) string { return render.Noon(c[0], o) }},
	}
	for _, s := range sub {
		cmd.AddCommand(&cobra.Command{
			Use:   s.use,
			Short: s.short,
			Args:  cobra.ExactArgs(s.args),
			RunE: func(cmd *cobra.Command, args []string) error {
				out := outputFilename(args[0], f.output, s.suffix)
				if err := a.renderOnce(cmd.OutOrStdout(), args, out, s.draw); err != nil {
					return err
				}
				if !f.watch {
					return nil
				}
				return a.watchAndRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, out, s.draw)
			},
		})
	}
	return cmd
}

func (a *app) renderOnce(stdout io.Writer, inputs []string, output string, draw drawFunc) error {
	opts, err := a.cfg.RenderOptions()
	if err != nil {
		return err
	}
	charts := make([]*chart.Chart, len(inputs))
	for i, in := range inputs {
		c, err := chart.Load(in)
		if err != nil {
			return err
		}
		debug.Printf("loaded %s: %d bodies, %d houses", in, len(c.Bodies), len(c.Houses))
		charts[i] = &c
	}

	if err := writeSVG(stdout, output, draw(charts, opts)); err != nil {
		return err
	}
	if output != "-" {
		fmt.Fprintf(stdout, "Chart written to %s\n", output)
	}
	return nil
}

// watchAndRender re-renders on every input change until ctx is done. Render errors
// are reported and watching continues.
func (a *app) watchAndRender(ctx context.Context, stdout, stderr io.Writer, inputs []string, output string, draw drawFunc) error {
	w, err := watch.New(inputs...)
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Fprintf(stderr, "Watching %d file(s), press Ctrl+C to stop\n", len(inputs))
	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-w.Changes:
			if !ok {
				return nil
			}
			debug.Printf("change detected: %s", changed)
			if err := a.renderOnce(stdout, inputs, output, draw); err != nil {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			}
		}
	}
}
