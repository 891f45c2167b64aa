package chart

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a chart file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	}
	return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// file is the on-disk chart layout shared by all three encodings.
type file struct {
	Name        string      `yaml:"name" toml:"name" json:"name"`
	Date        time.Time   `yaml:"date" toml:"date" json:"date"`
	Location    fileLoc     `yaml:"location" toml:"location" json:"location"`
	HouseSystem string      `yaml:"house_system" toml:"house_system" json:"house_system"`
	Bodies      []fileBody  `yaml:"bodies" toml:"bodies" json:"bodies"`
	Houses      []float64   `yaml:"houses" toml:"houses" json:"houses"`
	Angles      *fileAngles `yaml:"angles" toml:"angles" json:"angles"`
}

type fileLoc struct {
	Latitude  float64 `yaml:"latitude" toml:"latitude" json:"latitude"`
	Longitude float64 `yaml:"longitude" toml:"longitude" json:"longitude"`
}

type fileBody struct {
	ID         string  `yaml:"id" toml:"id" json:"id"`
	Longitude  float64 `yaml:"longitude" toml:"longitude" json:"longitude"`
	Latitude   float64 `yaml:"latitude" toml:"latitude" json:"latitude"`
	Speed      float64 `yaml:"speed" toml:"speed" json:"speed"`
	Retrograde bool    `yaml:"retrograde" toml:"retrograde" json:"retrograde"`
}

type fileAngles struct {
	Asc float64 `yaml:"asc" toml:"asc" json:"asc"`
	MC  float64 `yaml:"mc" toml:"mc" json:"mc"`
}

// Load reads a chart file, choosing the decoder from the extension.
func Load(path string) (Chart, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Chart{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Chart{}, fmt.Errorf("error reading chart file: %w", err)
	}
	c, err := Decode(data, format)
	if err != nil {
		return Chart{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// Decode parses chart data in the given format, validates it and fills the
// derived fields. Aspects and the lunar phase are computed with the defaults.
func Decode(data []byte, format Format) (Chart, error) {
	var f file
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &f)
	case TOML:
		err = toml.Unmarshal(data, &f)
	case JSON:
		err = json.Unmarshal(data, &f)
	default:
		return Chart{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	if err != nil {
		return Chart{}, err
	}

	c := Chart{Meta: Meta{
		Name:        f.Name,
		Time:        f.Date,
		Location:    Location(f.Location),
		HouseSystem: HouseSystem(f.HouseSystem),
	}}
	for _, b := range f.Bodies {
		c.Bodies = append(c.Bodies, Body{
			ID:         BodyID(b.ID),
			Longitude:  b.Longitude,
			Latitude:   b.Latitude,
			Speed:      b.Speed,
			Retrograde: b.Retrograde,
		})
	}
	for _, lon := range f.Houses {
		c.Houses = append(c.Houses, HouseCusp{Longitude: lon})
	}
	if f.Angles != nil {
		c.Angles = AnglesFrom(f.Angles.Asc, f.Angles.MC)
	}

	if err := c.Validate(); err != nil {
		return Chart{}, err
	}
	c.Fill()
	c.Aspects = CalculateAspects(c.Bodies, nil)
	if sun, ok := c.Body(Sun); ok {
		if moon, ok := c.Body(Moon); ok {
			c.Phase = LunarPhase(sun.Longitude, moon.Longitude)
		}
	}
	return c, nil
}

// Validate checks that every body has an id and a finite longitude and that
// the chart has either no houses or twelve.
func (c *Chart) Validate() error {
	for i, b := range c.Bodies {
		if b.ID == "" {
			return fmt.Errorf("body %d: %w", i, ErrMissingID)
		}
		if !finite(b.Longitude) {
			return fmt.Errorf("body %s: %w", b.ID, ErrInvalidLongitude)
		}
	}
	if n := len(c.Houses); n != 0 && n != 12 {
		return fmt.Errorf("got %d cusps: %w", n, ErrInvalidHouses)
	}
	for _, h := range c.Houses {
		if !finite(h.Longitude) {
			return fmt.Errorf("house cusp: %w", ErrInvalidLongitude)
		}
	}
	if !finite(c.Angles.Asc) || !finite(c.Angles.MC) {
		return fmt.Errorf("angles: %w", ErrInvalidLongitude)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
