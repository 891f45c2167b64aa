package collision_test

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellecat/AstroCore/circle"
	"github.com/intellecat/AstroCore/collision"
)

const eps = 1e-6

// slack tolerates the float noise in relaxed gaps.
const slack = 0.1

func equalHouses(asc float64) []collision.Boundary {
	out := make([]collision.Boundary, 12)
	for i := range out {
		out[i] = collision.Boundary{Index: i + 1, Longitude: circle.Normalize(asc + float64(i)*30)}
	}
	return out
}

func ids(ps []collision.AdjustedPosition) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

// circularOrderKept reports whether sorting by adjusted longitude gives a
// rotation of the output order, which is the input's circular order.
func circularOrderKept(ps []collision.AdjustedPosition) bool {
	if len(ps) < 3 {
		return true
	}
	index := make(map[string]int, len(ps))
	for i, p := range ps {
		index[p.ID] = i
	}
	byAdjusted := append([]collision.AdjustedPosition(nil), ps...)
	sort.SliceStable(byAdjusted, func(i, j int) bool {
		return byAdjusted[i].AdjustedLongitude < byAdjusted[j].AdjustedLongitude
	})
	shift := index[byAdjusted[0].ID]
	for k, p := range byAdjusted {
		if index[p.ID] != (shift+k)%len(ps) {
			return false
		}
	}
	return true
}

func minGap(ps []collision.AdjustedPosition) float64 {
	if len(ps) < 2 {
		return circle.Full
	}
	gap := circle.Full
	for i := range ps {
		next := ps[(i+1)%len(ps)]
		gap = min(gap, circle.ClockwiseDistance(ps[i].AdjustedLongitude, next.AdjustedLongitude))
	}
	return gap
}

func minClearance(ps []collision.AdjustedPosition, cusps []collision.Boundary) float64 {
	clear := circle.Full
	for _, p := range ps {
		for _, c := range cusps {
			clear = min(clear, circle.AngularDifference(p.AdjustedLongitude, c.Longitude))
		}
	}
	return clear
}

func TestResolveEmpty(t *testing.T) {
	got := collision.Resolve(nil, nil, collision.DefaultMinDistance, collision.DefaultBoundaryBuffer, true)
	require.NotNil(t, got)
	assert.Empty(t, got)

	res := collision.ResolveWithReport([]collision.Body{}, equalHouses(0), 6, 4, true)
	assert.True(t, res.Converged)
	assert.Zero(t, res.Iterations)
}

func TestResolveIsolatedPointsUntouched(t *testing.T) {
	tests := []struct {
		name   string
		points []collision.Body
	}{
		{"single", []collision.Body{{ID: "Sun", Longitude: 100}}},
		{"opposite", []collision.Body{{ID: "Sun", Longitude: 100}, {ID: "Moon", Longitude: 200}}},
		{"spread", []collision.Body{
			{ID: "Sun", Longitude: 10}, {ID: "Moon", Longitude: 100},
			{ID: "Mars", Longitude: 190}, {ID: "Venus", Longitude: 280},
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := collision.ResolveWithReport(tc.points, nil, 10, 4, false)
			require.True(t, res.Converged)
			assert.Equal(t, 1, res.Iterations)
			for _, p := range res.Positions {
				assert.InDelta(t, p.OriginalLongitude, p.AdjustedLongitude, eps, p.ID)
				assert.Zero(t, p.RadialOffset)
			}
		})
	}
}

func TestResolveCloseStraddlingZero(t *testing.T) {
	bodies := []collision.Body{{ID: "P1", Longitude: 358}, {ID: "P2", Longitude: 2}}

	for _, cusps := range [][]collision.Boundary{nil, equalHouses(0)} {
		res := collision.ResolveWithReport(bodies, cusps, 10, 4, true)
		require.True(t, res.Converged)
		assert.Equal(t, 2, res.Iterations)
		require.Len(t, res.Positions, 2)

		// Output follows normalized longitude, so P2 (2) comes first.
		assert.Equal(t, []string{"P2", "P1"}, ids(res.Positions))
		assert.InDelta(t, 5.05, res.Positions[0].AdjustedLongitude, eps)
		assert.InDelta(t, 354.95, res.Positions[1].AdjustedLongitude, eps)

		// P1 stays counter-clockwise of P2.
		gap := circle.ClockwiseDistance(res.Positions[1].AdjustedLongitude, res.Positions[0].AdjustedLongitude)
		assert.GreaterOrEqual(t, gap, 10-slack)
	}
}

func TestResolveStellium(t *testing.T) {
	bodies := []collision.Body{
		{ID: "Mars", Longitude: 106.59},
		{ID: "TrueNode", Longitude: 107.38},
		{ID: "MeanNode", Longitude: 108.20},
	}
	cusps := equalHouses(0)

	res := collision.ResolveWithReport(bodies, cusps, 10, 4, true)
	require.True(t, res.Converged)
	assert.Equal(t, 3, res.Iterations)
	assert.Equal(t, []string{"Mars", "TrueNode", "MeanNode"}, ids(res.Positions))

	want := []float64{101.935, 112.035, 124.1}
	for i, p := range res.Positions {
		assert.InDelta(t, want[i], p.AdjustedLongitude, eps, p.ID)
	}
	assert.GreaterOrEqual(t, minGap(res.Positions), 10-slack)
	assert.GreaterOrEqual(t, minClearance(res.Positions, cusps), 4-slack)
}

func TestResolveSuperCluster(t *testing.T) {
	var bodies []collision.Body
	for i := 0; i < 5; i++ {
		bodies = append(bodies, collision.Body{ID: fmt.Sprintf("P%d", i), Longitude: 100 + float64(i)})
	}
	cusps := equalHouses(0)

	res := collision.ResolveWithReport(bodies, cusps, 10, 4, true)
	require.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)

	want := []float64{95.45, 105.55, 115.55, 125.55, 135.55}
	for i, p := range res.Positions {
		assert.Equal(t, fmt.Sprintf("P%d", i), p.ID)
		assert.InDelta(t, want[i], p.AdjustedLongitude, eps, p.ID)
	}
	assert.True(t, circularOrderKept(res.Positions))
	assert.GreaterOrEqual(t, minGap(res.Positions), 10-slack)
	assert.GreaterOrEqual(t, minClearance(res.Positions, cusps), 4-slack)
}

// A chain of pushes can move symbols across a whole sector.
func TestResolveGlobalPropagation(t *testing.T) {
	bodies := []collision.Body{
		{ID: "a", Longitude: 100}, {ID: "b", Longitude: 101},
		{ID: "c", Longitude: 115}, {ID: "d", Longitude: 116},
	}
	res := collision.ResolveWithReport(bodies, equalHouses(0), 10, 4, true)
	require.True(t, res.Converged)
	assert.Equal(t, 5, res.Iterations)

	want := []float64{85.9, 103.711719, 113.811719, 124.1}
	for i, p := range res.Positions {
		assert.InDelta(t, want[i], p.AdjustedLongitude, 1e-5, p.ID)
	}
}

func TestResolvePair(t *testing.T) {
	got := collision.Resolve([]collision.Body{{ID: "a", Longitude: 100}, {ID: "b", Longitude: 102}}, nil, 6, 4, false)
	require.Len(t, got, 2)
	assert.InDelta(t, 97.95, got[0].AdjustedLongitude, eps)
	assert.InDelta(t, 104.05, got[1].AdjustedLongitude, eps)
	assert.InDelta(t, -2.05, got[0].Displacement(), eps)
	assert.InDelta(t, 2.05, got[1].Displacement(), eps)
}

func TestResolveClusterAcrossZero(t *testing.T) {
	bodies := []collision.Body{
		{ID: "a", Longitude: 357}, {ID: "b", Longitude: 359},
		{ID: "c", Longitude: 1}, {ID: "d", Longitude: 3},
	}
	res := collision.ResolveWithReport(bodies, nil, 6, 4, false)
	require.True(t, res.Converged)
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids(res.Positions))

	want := map[string]float64{"a": 354.95, "b": 1.05, "c": 7.05, "d": 13.05}
	for _, p := range res.Positions {
		assert.InDelta(t, want[p.ID], p.AdjustedLongitude, eps, p.ID)
	}
	assert.True(t, circularOrderKept(res.Positions))
	assert.GreaterOrEqual(t, minGap(res.Positions), 6-slack)
}

func TestResolveIdenticalLongitudes(t *testing.T) {
	bodies := []collision.Body{{ID: "a", Longitude: 100}, {ID: "b", Longitude: 100}, {ID: "c", Longitude: 100}}
	res := collision.ResolveWithReport(bodies, nil, 6, 4, false)
	require.True(t, res.Converged)
	assert.Equal(t, []string{"a", "b", "c"}, ids(res.Positions), "ties keep input order")
	assert.True(t, circularOrderKept(res.Positions))
	assert.GreaterOrEqual(t, minGap(res.Positions), 6-slack)
}

func TestResolveBoundaryAvoidance(t *testing.T) {
	cusps := equalHouses(0)

	t.Run("pushed off cusp", func(t *testing.T) {
		got := collision.Resolve([]collision.Body{{ID: "A", Longitude: 30.1}}, cusps, 6, 4, true)
		require.Len(t, got, 1)
		assert.InDelta(t, 34.1, got[0].AdjustedLongitude, eps)
	})

	t.Run("disabled", func(t *testing.T) {
		got := collision.Resolve([]collision.Body{{ID: "A", Longitude: 30.5}}, cusps, 6, 4, false)
		assert.InDelta(t, 30.5, got[0].AdjustedLongitude, eps)
	})

	t.Run("no boundaries", func(t *testing.T) {
		got := collision.Resolve([]collision.Body{{ID: "A", Longitude: 30.5}}, nil, 6, 4, true)
		assert.InDelta(t, 30.5, got[0].AdjustedLongitude, eps)
	})

	t.Run("zero buffer", func(t *testing.T) {
		got := collision.Resolve([]collision.Body{{ID: "A", Longitude: 30.5}}, cusps, 6, 0, true)
		assert.InDelta(t, 30.5, got[0].AdjustedLongitude, eps)
	})
}

func TestResolveNormalizesInput(t *testing.T) {
	got := collision.Resolve([]collision.Body{{ID: "neg", Longitude: -10}, {ID: "big", Longitude: 725}}, nil, 6, 4, false)
	require.Len(t, got, 2)
	assert.Equal(t, "big", got[0].ID)
	assert.InDelta(t, 5, got[0].OriginalLongitude, eps)
	assert.InDelta(t, 5, got[0].AdjustedLongitude, eps)
	assert.Equal(t, "neg", got[1].ID)
	assert.InDelta(t, 350, got[1].OriginalLongitude, eps)
	assert.InDelta(t, 350, got[1].AdjustedLongitude, eps)
}

func TestResolveNegativeDistancesAreClamped(t *testing.T) {
	bodies := []collision.Body{{ID: "a", Longitude: 100}, {ID: "b", Longitude: 100.5}, {ID: "c", Longitude: 30.2}}
	res := collision.ResolveWithReport(bodies, equalHouses(0), -5, -1, true)
	require.True(t, res.Converged)
	for _, p := range res.Positions {
		assert.InDelta(t, p.OriginalLongitude, p.AdjustedLongitude, eps, p.ID)
	}
}

func TestResolveInfeasibleRing(t *testing.T) {
	t.Run("evenly spaced", func(t *testing.T) {
		var bodies []collision.Body
		for i := 0; i < 40; i++ {
			bodies = append(bodies, collision.Body{ID: fmt.Sprintf("p%d", i), Longitude: float64(i) * 9})
		}
		res := collision.ResolveWithReport(bodies, nil, 10, 4, false)
		assert.False(t, res.Converged)
		assert.True(t, circularOrderKept(res.Positions))
		assert.GreaterOrEqual(t, minGap(res.Positions), 9-slack)
	})

	t.Run("all stacked", func(t *testing.T) {
		var bodies []collision.Body
		for i := 0; i < 40; i++ {
			bodies = append(bodies, collision.Body{ID: fmt.Sprintf("p%d", i), Longitude: 50})
		}
		res := collision.ResolveWithReport(bodies, nil, 10, 4, false)
		assert.False(t, res.Converged)
		assert.True(t, circularOrderKept(res.Positions))
		assert.Len(t, res.Positions, 40)
	})
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	bodies := []collision.Body{{ID: "a", Longitude: 100}, {ID: "b", Longitude: 101}, {ID: "c", Longitude: -2}}
	cusps := equalHouses(15)
	bodiesBefore := append([]collision.Body(nil), bodies...)
	cuspsBefore := append([]collision.Boundary(nil), cusps...)

	collision.Resolve(bodies, cusps, 10, 4, true)
	collision.ResolveStacked(bodies, 10)

	assert.Equal(t, bodiesBefore, bodies)
	assert.Equal(t, cuspsBefore, cusps)
}

func TestResolveConcurrentCallsAgree(t *testing.T) {
	bodies := []collision.Body{
		{ID: "Sun", Longitude: 106.59}, {ID: "Moon", Longitude: 107.38},
		{ID: "Mercury", Longitude: 108.2}, {ID: "Venus", Longitude: 359},
		{ID: "Mars", Longitude: 1.5},
	}
	cusps := equalHouses(12)
	want := collision.Resolve(bodies, cusps, 6, 4, true)

	var wg sync.WaitGroup
	results := make([][]collision.AdjustedPosition, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = collision.Resolve(bodies, cusps, 6, 4, true)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

// Random charts at realistic density: a dozen bodies, sometimes with a
// tight stellium, and equal houses from a random Ascendant.
func TestResolveRandomCharts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const minDistance, buffer = 6.0, 4.0

	for run := 0; run < 2000; run++ {
		n := 2 + rng.Intn(13)
		var bodies []collision.Body
		for i := 0; i < n; i++ {
			bodies = append(bodies, collision.Body{ID: fmt.Sprintf("p%d", i), Longitude: rng.Float64() * 360})
		}
		if rng.Float64() < 0.5 {
			center := rng.Float64() * 360
			for i := 0; i < 2+rng.Intn(4); i++ {
				bodies = append(bodies, collision.Body{ID: fmt.Sprintf("s%d", i), Longitude: center + rng.Float64()*8 - 4})
			}
		}
		cusps := equalHouses(rng.Float64() * 360)

		res := collision.ResolveWithReport(bodies, cusps, minDistance, buffer, true)
		require.Len(t, res.Positions, len(bodies))
		require.True(t, circularOrderKept(res.Positions), "run %d: order broken", run)
		require.GreaterOrEqual(t, minGap(res.Positions), minDistance-slack, "run %d", run)
		if res.Converged {
			require.GreaterOrEqual(t, minClearance(res.Positions, cusps), buffer-slack, "run %d", run)
		}
	}
}

func TestPositionsCarryInputIndex(t *testing.T) {
	bodies := []collision.Body{{ID: "Sun", Longitude: 200}, {ID: "Moon", Longitude: 300}, {ID: "Sun", Longitude: 100}}
	for name, got := range map[string][]collision.AdjustedPosition{
		"single ring": collision.Resolve(bodies, nil, 6, 4, false),
		"stacked":     collision.ResolveStacked(bodies, 6),
	} {
		var index []int
		for _, p := range got {
			assert.Equal(t, bodies[p.Index].ID, p.ID, name)
			index = append(index, p.Index)
		}
		assert.Equal(t, []int{2, 0, 1}, index, name)
	}
}
