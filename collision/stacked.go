package collision

import (
	"math"

	"github.com/intellecat/AstroCore/circle"
)

// ResolveStacked separates colliding symbols radially instead of angularly.
//
// Clusters are maximal runs of circular neighbours closer than minDistance.
// Inside a cluster, RadialOffset alternates 0, 1, 0, 1 in angular order.
// Bodies outside any cluster keep offset 0 and never move. Clustered bodies
// are then nudged sideways until every pair of circular neighbours on the
// same track, across the whole ring, is minDistance apart. Nobody passes a
// neighbour, so the circular order of the input is kept.
//
// Results come back sorted by original longitude. Inputs are not modified.
func ResolveStacked(points []Body, minDistance float64) []AdjustedPosition {
	return ResolveStackedWithReport(points, minDistance).Positions
}

// ResolveStackedWithReport is ResolveStacked with convergence diagnostics.
// Converged is false when a track holds more bodies than fit around the
// circle at minDistance; that track is then spread evenly instead.
func ResolveStackedWithReport(points []Body, minDistance float64) Result {
	if len(points) == 0 {
		return Result{Positions: []AdjustedPosition{}, Converged: true}
	}

	minDistance = math.Max(minDistance, 0)
	ring := newRing(points)
	offsets := make([]int, len(ring))
	pinned := make([]bool, len(ring))
	for i := range pinned {
		pinned[i] = true
	}
	for _, members := range clusters(ring, minDistance) {
		if len(members) < 2 {
			continue
		}
		for rank, i := range members {
			offsets[i] = rank % StackTracks
			pinned[i] = false
		}
	}

	st := newStack(ring, pinned, minDistance)
	res := st.relax(offsets, minDistance)
	for k, i := range st.order {
		ring[i].current = circle.Normalize(st.x[k])
	}
	res.Positions = positions(ring, offsets)
	return res
}

// clusters groups ring indices into runs of neighbours closer than
// minDistance. The walk begins just after the first wide gap so that a run
// straddling 0 degrees is not split. With no wide gap the whole ring is one
// cluster.
func clusters(ring []slot, minDistance float64) [][]int {
	n := len(ring)
	start := firstWideGap(ring, minDistance)

	var out [][]int
	run := []int{start}
	for k := 1; k < n; k++ {
		i, prev := (start+k)%n, (start+k-1)%n
		if circle.ClockwiseDistance(ring[prev].current, ring[i].current) < minDistance {
			run = append(run, i)
			continue
		}
		out = append(out, run)
		run = []int{i}
	}
	return append(out, run)
}

// firstWideGap returns the first ring index whose gap to its predecessor is
// at least minDistance, or 0.
func firstWideGap(ring []slot, minDistance float64) int {
	n := len(ring)
	for i := 0; i < n && n > 1; i++ {
		prev := ring[(i-1+n)%n].current
		if circle.ClockwiseDistance(prev, ring[i].current) >= minDistance {
			return i
		}
	}
	return 0
}

// stack is the ring cut open into a line. x is nondecreasing and spans at
// most one full turn, so any x that keeps both properties keeps the circular
// order. Pinned entries never move and act as walls for their neighbours.
type stack struct {
	order  []int
	x      []float64
	pinned []bool

	// walled means x[0] is pinned, so x[0]+360 is a fixed upper wall too.
	walled bool
}

func newStack(ring []slot, pinned []bool, minDistance float64) *stack {
	n := len(ring)
	start := -1
	for i, p := range pinned {
		if p {
			start = i
			break
		}
	}
	st := &stack{walled: start >= 0}
	if start < 0 {
		start = firstWideGap(ring, minDistance)
	}

	base := ring[start].original
	for k := 0; k < n; k++ {
		i := (start + k) % n
		st.order = append(st.order, i)
		st.x = append(st.x, base+circle.ClockwiseDistance(base, ring[i].original))
		st.pinned = append(st.pinned, pinned[i])
	}
	return st
}

// relax pushes same-track neighbours apart, each pair by its shortfall, until
// a pass changes nothing or MaxIterations is reached. The last pair of every
// track wraps around to its first member.
func (st *stack) relax(offsets []int, minDistance float64) Result {
	n := len(st.x)
	tracks := make([][]int, StackTracks)
	for k, i := range st.order {
		tracks[offsets[i]] = append(tracks[offsets[i]], k)
	}

	feasible := true
	spacing := make([]float64, StackTracks)
	for t, members := range tracks {
		spacing[t] = minDistance
		if float64(len(members))*minDistance > circle.Full {
			spacing[t] = math.Max(circle.Full/float64(len(members))-2*pairMargin, 0)
			feasible = false
		}
	}

	res := Result{}
	for iter := 1; iter <= MaxIterations; iter++ {
		res.Iterations = iter
		moved := false
		for t, members := range tracks {
			if len(members) < 2 {
				continue
			}
			for q := range members {
				a, b := members[q], members[(q+1)%len(members)]
				short := spacing[t] - st.gap(a, b, q == len(members)-1)
				if short <= 0 || (st.pinned[a] && st.pinned[b]) {
					continue
				}
				switch {
				case st.pinned[a]:
					st.move(b, short+pairMargin)
				case st.pinned[b]:
					st.move(a, -(short + pairMargin))
				default:
					st.move(a, -(short/2 + pairMargin))
					st.move(b, short/2+pairMargin)
				}
				moved = true
			}
		}
		if !st.walled && n > 1 && st.x[n-1] > st.x[0]+circle.Full {
			mid := (st.x[n-1] + st.x[0] + circle.Full) / 2
			st.x[0], st.x[n-1] = mid-circle.Full, mid
			st.forward(0)
			st.backward(n - 1)
		}
		if !moved {
			res.Converged = feasible
			break
		}
	}
	return res
}

func (st *stack) gap(a, b int, wrap bool) float64 {
	if wrap {
		return st.x[b] + circle.Full - st.x[a]
	}
	return st.x[b] - st.x[a]
}

func (st *stack) move(k int, d float64) {
	st.x[k] += d
	if d < 0 {
		st.backward(k)
		return
	}
	st.forward(k)
}

// backward drags the entries before k along after x[k] moved down. A pinned
// entry stops the drag and clamps the moved run onto it.
func (st *stack) backward(k int) {
	for j := k; j > 0 && st.x[j-1] > st.x[j]; j-- {
		if st.pinned[j-1] {
			for i := j; i <= k; i++ {
				st.x[i] = st.x[j-1]
			}
			return
		}
		st.x[j-1] = st.x[j]
	}
}

// forward is backward in the other direction. When walled, the run is also
// clamped below x[0]+360.
func (st *stack) forward(k int) {
	n := len(st.x)
	j := k
	for ; j < n-1 && st.x[j+1] < st.x[j]; j++ {
		if st.pinned[j+1] {
			for i := k; i <= j; i++ {
				st.x[i] = st.x[j+1]
			}
			return
		}
		st.x[j+1] = st.x[j]
	}
	if top := st.x[0] + circle.Full; st.walled && j == n-1 && st.x[n-1] > top {
		for i := k; i < n; i++ {
			st.x[i] = top
		}
	}
}
