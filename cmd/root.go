// Package cmd is the astrocore command tree.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/intellecat/AstroCore/config"
	"github.com/intellecat/AstroCore/internal/debug"
)

// configName is looked up in the working directory, then the home directory,
// when --config is not given.
const configName = ".astrocore.yaml"

// app is the state shared by every command of one invocation.
type app struct {
	configPath string
	debug      bool

	// v carries ASTROCORE_* environment values and the flags bound to
	// config keys.
	v   *viper.Viper
	cfg config.Config
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "astrocore",
		Short: "Render astrological chart wheels as SVG",
		Long: "astrocore draws natal, transit, synastry, composite and noon chart wheels from\n" +
			"chart files (YAML, TOML or JSON), keeping crowded planet symbols readable.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+configName+")")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug output on stderr")

	root.AddCommand(a.renderCmd(), a.resolveCmd(), a.validateCmd())
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	debug.SetEnabled(a.debug)
	a.bindFlags(cmd)

	path := a.configPath
	if path == "" {
		path = findConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyOverrides(a.v)
	a.cfg = cfg
	debug.Printf("config: %q, canvas %dx%d, min distance %g, house buffer %g",
		path, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Collision.MinDistance, cfg.Collision.HouseBuffer)
	return nil
}

// findConfig returns the first default config file that exists, or "".
func findConfig() string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	for _, dir := range dirs {
		p := filepath.Join(dir, configName)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// flagKeys maps flags onto dotted config keys. Only flags the user actually
// set override the file.
var flagKeys = map[string]string{
	"width":        "canvas.width",
	"height":       "canvas.height",
	"min-distance": "collision.min_distance",
	"marker":       "display.marker",
}

// bindFlags binds the flags of the command being run to their config keys.
func (a *app) bindFlags(cmd *cobra.Command) {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = a.v.BindPFlag(key, f)
		}
	}
}
