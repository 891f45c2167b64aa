// Package config holds the astrocore configuration file: canvas size,
// resolver spacing, display toggles and the theme.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/intellecat/AstroCore/chart"
	"github.com/intellecat/AstroCore/collision"
	"github.com/intellecat/AstroCore/render"
)

// EnvPrefix prefixes every environment override, e.g. ASTROCORE_CANVAS_WIDTH.
const EnvPrefix = "ASTROCORE"

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the configuration file layout.
type Config struct {
	Canvas struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"canvas"`
	Collision struct {
		MinDistance         float64 `yaml:"min_distance"`
		HouseBuffer         float64 `yaml:"house_buffer"`
		TransitMinDistance  float64 `yaml:"transit_min_distance"`
		SynastryMinDistance float64 `yaml:"synastry_min_distance"`
		AvoidHouses         bool    `yaml:"avoid_houses"`
	} `yaml:"collision"`
	Display struct {
		Degrees    bool     `yaml:"degrees"`
		Minutes    bool     `yaml:"minutes"`
		Signs      bool     `yaml:"signs"`
		Aspects    bool     `yaml:"aspects"`
		Retrograde bool     `yaml:"retrograde"`
		Marker     string   `yaml:"marker"`
		SymbolSize int      `yaml:"symbol_size"`
		Bodies     []string `yaml:"bodies"`
	} `yaml:"display"`
	Theme struct {
		Path string `yaml:"path"`
	} `yaml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Canvas.Width = 800
	c.Canvas.Height = 800

	c.Collision.MinDistance = collision.DefaultMinDistance
	c.Collision.HouseBuffer = collision.DefaultBoundaryBuffer
	c.Collision.TransitMinDistance = collision.DefaultMinDistance
	c.Collision.SynastryMinDistance = collision.DefaultMinDistance
	c.Collision.AvoidHouses = true

	c.Display.Degrees = true
	c.Display.Signs = true
	c.Display.Aspects = true
	c.Display.Retrograde = true
	c.Display.Marker = string(render.MarkerLine)
	c.Display.SymbolSize = 18
	return c
}

// Load reads a YAML configuration file over the defaults. An empty path
// returns Default.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	return c, nil
}

// NewViper returns a viper instance that reads ASTROCORE_* environment
// variables for the dotted config keys.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ApplyOverrides copies every key set in v (environment, bound flags or
// explicit Set calls) onto c. Keys use the dotted YAML names, e.g.
// "collision.min_distance".
func (c *Config) ApplyOverrides(v *viper.Viper) {
	ints := map[string]*int{
		"canvas.width":        &c.Canvas.Width,
		"canvas.height":       &c.Canvas.Height,
		"display.symbol_size": &c.Display.SymbolSize,
	}
	floats := map[string]*float64{
		"collision.min_distance":          &c.Collision.MinDistance,
		"collision.house_buffer":          &c.Collision.HouseBuffer,
		"collision.transit_min_distance":  &c.Collision.TransitMinDistance,
		"collision.synastry_min_distance": &c.Collision.SynastryMinDistance,
	}
	bools := map[string]*bool{
		"collision.avoid_houses": &c.Collision.AvoidHouses,
		"display.degrees":        &c.Display.Degrees,
		"display.minutes":        &c.Display.Minutes,
		"display.signs":          &c.Display.Signs,
		"display.aspects":        &c.Display.Aspects,
		"display.retrograde":     &c.Display.Retrograde,
	}
	strs := map[string]*string{
		"display.marker": &c.Display.Marker,
		"theme.path":     &c.Theme.Path,
	}

	for key, dst := range ints {
		if v.IsSet(key) {
			*dst = v.GetInt(key)
		}
	}
	for key, dst := range floats {
		if v.IsSet(key) {
			*dst = v.GetFloat64(key)
		}
	}
	for key, dst := range bools {
		if v.IsSet(key) {
			*dst = v.GetBool(key)
		}
	}
	for key, dst := range strs {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	if v.IsSet("display.bodies") {
		c.Display.Bodies = v.GetStringSlice("display.bodies")
	}
}

// Validate rejects a configuration the renderers cannot use.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size must be positive, got %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	for name, d := range map[string]float64{
		"min_distance":          c.Collision.MinDistance,
		"house_buffer":          c.Collision.HouseBuffer,
		"transit_min_distance":  c.Collision.TransitMinDistance,
		"synastry_min_distance": c.Collision.SynastryMinDistance,
	} {
		if d < 0 {
			return fmt.Errorf("%w: collision.%s must not be negative, got %g", ErrInvalid, name, d)
		}
	}
	if c.Display.SymbolSize <= 0 {
		return fmt.Errorf("%w: display.symbol_size must be positive, got %d", ErrInvalid, c.Display.SymbolSize)
	}
	if _, err := render.ParseMarkerStyle(c.Display.Marker); err != nil {
		return fmt.Errorf("%w: display.marker: %v", ErrInvalid, err)
	}
	return nil
}

// RenderOptions validates c, loads its theme and returns the renderer
// options it describes.
func (c Config) RenderOptions() (render.Options, error) {
	if err := c.Validate(); err != nil {
		return render.Options{}, err
	}
	theme, err := render.LoadTheme(c.Theme.Path)
	if err != nil {
		return render.Options{}, err
	}
	marker, _ := render.ParseMarkerStyle(c.Display.Marker)

	opts := render.Options{
		Width:               c.Canvas.Width,
		Height:              c.Canvas.Height,
		MinDistance:         c.Collision.MinDistance,
		TransitMinDistance:  c.Collision.TransitMinDistance,
		SynastryMinDistance: c.Collision.SynastryMinDistance,
		HouseBuffer:         c.Collision.HouseBuffer,
		AvoidHouses:         c.Collision.AvoidHouses,
		ShowDegrees:         c.Display.Degrees,
		ShowMinutes:         c.Display.Minutes,
		ShowSigns:           c.Display.Signs,
		ShowAspects:         c.Display.Aspects,
		ShowRetrograde:      c.Display.Retrograde,
		Marker:              marker,
		SymbolSize:          c.Display.SymbolSize,
		Theme:               theme,
	}
	for _, id := range c.Display.Bodies {
		opts.Bodies = append(opts.Bodies, chart.BodyID(id))
	}
	return opts, nil
}
