package collision

import (
	"math"
	"sort"

	"github.com/intellecat/AstroCore/circle"
)

// slot is one body's working state during a resolve.
type slot struct {
	id       string
	index    int
	original float64
	current  float64
}

// newRing copies points into slots sorted by normalized longitude. The sort
// is stable, so bodies sharing a longitude keep their input order. This is
// the circular order every pass must preserve.
func newRing(points []Body) []slot {
	ring := make([]slot, len(points))
	for i, p := range points {
		lon := circle.Normalize(p.Longitude)
		ring[i] = slot{id: p.ID, index: i, original: lon, current: lon}
	}
	sort.SliceStable(ring, func(i, j int) bool {
		return ring[i].original < ring[j].original
	})
	return ring
}

func positions(ring []slot, offsets []int) []AdjustedPosition {
	out := make([]AdjustedPosition, len(ring))
	for i, s := range ring {
		out[i] = AdjustedPosition{
			ID:                s.id,
			Index:             s.index,
			OriginalLongitude: s.original,
			AdjustedLongitude: s.current,
		}
		if offsets != nil {
			out[i].RadialOffset = offsets[i]
		}
	}
	return out
}

// Resolve spreads points along a single ring so that circularly adjacent
// symbols are at least minDistance degrees apart and, when avoidBoundaries is
// set, at least boundaryBuffer degrees from every boundary. The circular order
// of the input longitudes is preserved.
//
// Boundary avoidance is skipped when avoidBoundaries is false or boundaries
// is empty, which is what outer transit rings and noon charts want.
//
// Results come back sorted by original longitude. Inputs are not modified.
func Resolve(points []Body, boundaries []Boundary, minDistance, boundaryBuffer float64, avoidBoundaries bool) []AdjustedPosition {
	return ResolveWithReport(points, boundaries, minDistance, boundaryBuffer, avoidBoundaries).Positions
}

// ResolveWithReport is Resolve with convergence diagnostics.
//
// When the main loop hits MaxIterations without a quiet pass, a finishing
// relaxation runs with boundaries ignored, so overlapping glyphs are always
// pulled apart even if one then sits inside a cusp buffer.
func ResolveWithReport(points []Body, boundaries []Boundary, minDistance, boundaryBuffer float64, avoidBoundaries bool) Result {
	if len(points) == 0 {
		return Result{Positions: []AdjustedPosition{}, Converged: true}
	}

	// A ring cannot hold more than 360/N degrees per gap. Relax towards an
	// even spread instead and report the layout as not converged.
	n := len(points)
	spacing := math.Max(minDistance, 0)
	feasible := float64(n)*spacing <= circle.Full
	if !feasible {
		spacing = math.Max(circle.Full/float64(n)-2*pairMargin, 0)
	}

	r := &relaxer{
		ring:        newRing(points),
		minDistance: spacing,
		buffer:      math.Max(boundaryBuffer, 0),
	}
	if avoidBoundaries && r.buffer > 0 {
		r.cusps = make([]float64, len(boundaries))
		for i, b := range boundaries {
			r.cusps[i] = circle.Normalize(b.Longitude)
		}
	}
	r.before = make([]float64, len(r.ring))

	iterations, converged := r.run(true)
	if !converged {
		r.run(false)
	}
	if r.winding() > circle.Full+windingTolerance {
		r.spreadEvenly()
		converged = false
	}

	return Result{
		Positions:  positions(r.ring, nil),
		Iterations: iterations,
		Converged:  converged && feasible,
	}
}

// relaxer holds the mutable state of one Resolve call.
type relaxer struct {
	ring        []slot
	cusps       []float64
	minDistance float64
	buffer      float64

	// before holds each adjacent gap as it was at the start of the pass.
	before []float64
}

// run applies relaxation passes until one makes no change or the cap is hit.
// It reports the passes used and whether a quiet pass was reached.
func (r *relaxer) run(withBoundaries bool) (int, bool) {
	for iter := 1; iter <= MaxIterations; iter++ {
		r.snapshot()
		moved := r.repel()
		if withBoundaries && len(r.cusps) > 0 {
			moved = r.avoid() || moved
		}
		moved = r.repairOrder() || moved
		if !moved {
			return iter, true
		}
	}
	return MaxIterations, false
}

func (r *relaxer) gap(i int) float64 {
	n := len(r.ring)
	return circle.ClockwiseDistance(r.ring[i].current, r.ring[(i+1)%n].current)
}

func (r *relaxer) snapshot() {
	for i := range r.ring {
		r.before[i] = r.gap(i)
	}
}

// repel pushes apart every adjacent pair closer than minDistance: the first
// of the pair moves counter-clockwise, the second clockwise, each by half the
// shortfall plus pairMargin.
func (r *relaxer) repel() bool {
	n := len(r.ring)
	if n < 2 {
		return false
	}
	moved := false
	for i := 0; i < n; i++ {
		a, b := &r.ring[i], &r.ring[(i+1)%n]
		dist := circle.ClockwiseDistance(a.current, b.current)
		if dist < r.minDistance {
			shift := (r.minDistance-dist)/2 + pairMargin
			a.current = circle.Normalize(a.current - shift)
			b.current = circle.Normalize(b.current + shift)
			moved = true
		}
	}
	return moved
}

// avoid pushes every point found inside a boundary's buffer out of it, on the
// side of the boundary it already occupies. If that side is crowded and the
// mirror position across the boundary has more room between the point's
// neighbours, the point is placed across instead.
func (r *relaxer) avoid() bool {
	n := len(r.ring)
	moved := false
	for i := range r.ring {
		p := &r.ring[i]
		for _, cusp := range r.cusps {
			diff := circle.AngularDifference(p.current, cusp)
			if diff >= r.buffer {
				continue
			}

			clockwiseOfCusp := circle.ClockwiseDistance(cusp, p.current) < circle.Half
			shift := (r.buffer - diff) + boundaryMargin
			target := p.current - shift
			across := cusp + (r.buffer + boundaryMargin)
			if clockwiseOfCusp {
				target = p.current + shift
				across = cusp - (r.buffer + boundaryMargin)
			}

			if n > 1 {
				stay, cross := r.room(i, target), r.room(i, across)
				if stay < r.minDistance && cross > stay {
					target = across
				}
			}

			p.current = circle.Normalize(target)
			moved = true
		}
	}
	return moved
}

// room measures how much clearance point i would have at longitude t from its
// ring neighbours. It returns -1 when t lies outside the arc between them,
// where moving the point would break the circular order.
func (r *relaxer) room(i int, t float64) float64 {
	n := len(r.ring)
	prev, next := r.ring[(i-1+n)%n].current, r.ring[(i+1)%n].current
	t = circle.Normalize(t)

	span := circle.ClockwiseDistance(prev, next)
	if n == 2 {
		span = circle.Full
	}
	back, ahead := circle.ClockwiseDistance(prev, t), circle.ClockwiseDistance(t, next)
	if back+ahead > span+1e-9 {
		return -1
	}
	return math.Min(back, ahead)
}

// repairOrder snaps back any point that jumped over its predecessor.
//
// A gap is a jump when it now exceeds 180 degrees and differs from the same
// gap at the start of the pass by more than 180 degrees. Relaxation moves
// points by a few degrees per pass, so a gap only changes that much when it
// wrapped through zero. A snap can invert the following pair after that pair
// was checked, so sweeps repeat until one makes no snap.
func (r *relaxer) repairOrder() bool {
	n := len(r.ring)
	if n < 2 {
		return false
	}
	moved := false
	for sweep := 0; sweep < n; sweep++ {
		snapped := false
		for i := 0; i < n; i++ {
			g := r.gap(i)
			if g > circle.Half && math.Abs(g-r.before[i]) > circle.Half {
				j := (i + 1) % n
				r.ring[j].current = circle.Normalize(r.ring[i].current + r.minDistance)
				snapped = true
			}
		}
		if !snapped {
			break
		}
		moved = true
	}
	return moved
}

// winding sums the adjacent gaps. A ring in its original circular order sums
// to exactly 360; a chain of snaps that lapped the circle sums to 720.
func (r *relaxer) winding() float64 {
	if len(r.ring) < 2 {
		return 0
	}
	total := 0.0
	for i := range r.ring {
		total += r.gap(i)
	}
	return total
}

// spreadEvenly is the last resort for a lapped ring: equal gaps in the
// original order, anchored at the first body's original longitude.
func (r *relaxer) spreadEvenly() {
	step := circle.Full / float64(len(r.ring))
	anchor := r.ring[0].original
	for i := range r.ring {
		r.ring[i].current = circle.Normalize(anchor + float64(i)*step)
	}
}
