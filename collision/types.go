package collision

import "github.com/intellecat/AstroCore/circle"

// Resolver tuning constants. Callers pass distances explicitly; the Default*
// values are what the chart renderers use.
const (
	// DefaultMinDistance is the minimum gap in degrees between neighbouring symbols.
	DefaultMinDistance = 6.0

	// DefaultBoundaryBuffer is the clearance in degrees kept from a house cusp.
	DefaultBoundaryBuffer = 4.0

	// MaxIterations caps every relaxation loop.
	MaxIterations = 100

	// StackTracks is the number of concentric tracks ResolveStacked assigns.
	StackTracks = 2

	// pairMargin is added to every pairwise push so that a pair lands past
	// minDistance rather than exactly on it.
	pairMargin = 0.05

	// boundaryMargin plays the same role for boundary pushes.
	boundaryMargin = 0.1

	windingTolerance = 1e-6
)

// Body is a point to place: an identifier and an ecliptic longitude in degrees.
// The resolvers look at nothing else.
type Body struct {
	ID        string
	Longitude float64
}

// Boundary is a sector boundary to keep clear of, usually a house cusp.
// Only Longitude affects resolution.
type Boundary struct {
	Index     int
	Longitude float64
}

// AdjustedPosition is where a body's symbol should be drawn.
//
// OriginalLongitude is the normalized input longitude, where the tick mark
// belongs. AdjustedLongitude is where the glyph goes. RadialOffset is the
// track index chosen by ResolveStacked and is always 0 for Resolve. Index is
// the body's position in the input slice, which tells apart bodies that share
// an ID.
type AdjustedPosition struct {
	ID                string
	Index             int
	OriginalLongitude float64
	AdjustedLongitude float64
	RadialOffset      int
}

// Displacement returns how far the symbol moved, as a signed angle in
// (-180, 180]. Positive means it moved clockwise.
func (p AdjustedPosition) Displacement() float64 {
	return circle.SignedDistance(p.OriginalLongitude, p.AdjustedLongitude)
}

// Result carries resolved positions and how the relaxation ended.
type Result struct {
	Positions []AdjustedPosition

	// Iterations is the number of passes of the main loop that ran.
	Iterations int

	// Converged is true when a pass made no change before MaxIterations.
	// False is a valid outcome for hyper-dense input: Positions then holds
	// the best state reached.
	Converged bool
}
