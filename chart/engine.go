package chart

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/intellecat/AstroCore/circle"
)

// Position is what an ephemeris reports for one body.
type Position struct {
	Longitude float64
	Latitude  float64
	Speed     float64
}

// HouseResult is what an ephemeris reports for a house system.
type HouseResult struct {
	Cusps     []float64 // twelve cusps, first house first
	Ascendant float64
	MC        float64
	Vertex    float64
}

// Engine is the ephemeris capability a chart is cast from. Implementations
// wrap an astronomy library; none ships with this module.
type Engine interface {
	PositionOf(ctx context.Context, id BodyID, t time.Time) (Position, error)
	HousesFor(ctx context.Context, t time.Time, loc Location, system HouseSystem) (HouseResult, error)
}

// Request describes the chart to cast.
type Request struct {
	Name     string
	Time     time.Time
	Location Location
	// HouseSystem selects the houses. Leave it empty for a chart without
	// houses, such as a noon chart for an unknown birth time.
	HouseSystem HouseSystem
	// Bodies defaults to StandardBodies.
	Bodies []BodyID
	// Aspects defaults to DefaultAspects.
	Aspects []AspectDef
}

// maxHouseLatitude is where quadrant house systems stop being defined.
const maxHouseLatitude = 66.0

// Calculate casts a chart from engine. Derived points are added when their
// inputs are present: SouthNode opposite MeanNode, Vertex and AntiVertex
// from the houses, and ParsFortunae as Asc + Moon - Sun.
func Calculate(ctx context.Context, engine Engine, req Request) (Chart, error) {
	if engine == nil {
		return Chart{}, ErrNoEngine
	}
	ids := req.Bodies
	if len(ids) == 0 {
		ids = StandardBodies
	}

	c := Chart{Meta: Meta{
		Name:        req.Name,
		Time:        req.Time,
		Location:    req.Location,
		HouseSystem: req.HouseSystem,
	}}

	var vertex float64
	if req.HouseSystem != "" {
		loc := req.Location
		loc.Latitude = math.Max(-maxHouseLatitude, math.Min(maxHouseLatitude, loc.Latitude))
		hr, err := engine.HousesFor(ctx, req.Time, loc, req.HouseSystem)
		if err != nil {
			return Chart{}, fmt.Errorf("calculating houses: %w", err)
		}
		if len(hr.Cusps) != 12 {
			return Chart{}, fmt.Errorf("calculating houses: got %d cusps: %w", len(hr.Cusps), ErrInvalidHouses)
		}
		c.Houses = make([]HouseCusp, 12)
		for i, lon := range hr.Cusps {
			c.Houses[i].Longitude = lon
		}
		c.Angles = AnglesFrom(hr.Ascendant, hr.MC)
		vertex = hr.Vertex
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return Chart{}, err
		}
		p, err := engine.PositionOf(ctx, id, req.Time)
		if err != nil {
			return Chart{}, fmt.Errorf("calculating %s: %w", id, err)
		}
		c.Bodies = append(c.Bodies, Body{ID: id, Longitude: p.Longitude, Latitude: p.Latitude, Speed: p.Speed})
	}

	if node, ok := c.Body(MeanNode); ok {
		c.Bodies = append(c.Bodies, Body{ID: SouthNode, Longitude: node.Longitude + circle.Half})
	}
	if len(c.Houses) > 0 {
		c.Bodies = append(c.Bodies,
			Body{ID: Vertex, Longitude: vertex},
			Body{ID: AntiVertex, Longitude: vertex + circle.Half},
		)
	}
	sun, hasSun := c.Body(Sun)
	moon, hasMoon := c.Body(Moon)
	if hasSun && hasMoon && len(c.Houses) > 0 {
		c.Bodies = append(c.Bodies, Body{ID: ParsFortunae, Longitude: c.Angles.Asc + moon.Longitude - sun.Longitude})
	}

	if err := c.Validate(); err != nil {
		return Chart{}, err
	}
	c.Fill()
	c.Aspects = CalculateAspects(c.Bodies, req.Aspects)
	if hasSun && hasMoon {
		c.Phase = LunarPhase(sun.Longitude, moon.Longitude)
	}
	return c, nil
}
