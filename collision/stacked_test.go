package collision_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellecat/AstroCore/circle"
	"github.com/intellecat/AstroCore/collision"
)

// winding sums the clockwise gaps between consecutive adjusted positions in
// output order. Anything above one full turn means a body passed another.
// Gaps within float noise of a full turn are ties.
func winding(ps []collision.AdjustedPosition) float64 {
	var sum float64
	for i := range ps {
		g := circle.ClockwiseDistance(ps[i].AdjustedLongitude, ps[(i+1)%len(ps)].AdjustedLongitude)
		if g > circle.Full-eps {
			g = 0
		}
		sum += g
	}
	return sum
}

// trackGaps returns the clockwise gaps between circular neighbours that
// share a track, including the pair that wraps past 360.
func trackGaps(ps []collision.AdjustedPosition) []float64 {
	byTrack := map[int][]collision.AdjustedPosition{}
	for _, p := range ps {
		byTrack[p.RadialOffset] = append(byTrack[p.RadialOffset], p)
	}
	var out []float64
	for _, members := range byTrack {
		if len(members) < 2 {
			continue
		}
		for k := range members {
			next := members[(k+1)%len(members)]
			out = append(out, circle.ClockwiseDistance(members[k].AdjustedLongitude, next.AdjustedLongitude))
		}
	}
	return out
}

func assertStackedLayout(t *testing.T, ps []collision.AdjustedPosition, minDistance float64) {
	t.Helper()
	assert.LessOrEqual(t, winding(ps), circle.Full+eps, "circular order broken")
	for _, g := range trackGaps(ps) {
		assert.GreaterOrEqual(t, g, minDistance-eps, "same-track gap")
	}
}

func TestResolveStackedEmpty(t *testing.T) {
	got := collision.ResolveStacked(nil, 6)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResolveStacked(t *testing.T) {
	type want struct {
		id     string
		lon    float64
		offset int
	}
	tests := []struct {
		name   string
		points []collision.Body
		want   []want
	}{
		{
			name:   "exact conjunction",
			points: []collision.Body{{ID: "Sun", Longitude: 100}, {ID: "Moon", Longitude: 100}},
			want:   []want{{"Sun", 100, 0}, {"Moon", 100, 1}},
		},
		{
			name:   "three identical",
			points: []collision.Body{{ID: "P1", Longitude: 100}, {ID: "P2", Longitude: 100}, {ID: "P3", Longitude: 100}},
			want:   []want{{"P1", 96.95, 0}, {"P2", 100, 1}, {"P3", 103.05, 0}},
		},
		{
			name:   "cluster across zero",
			points: []collision.Body{{ID: "a", Longitude: 358}, {ID: "b", Longitude: 1}, {ID: "c", Longitude: 200}},
			want:   []want{{"b", 1, 1}, {"c", 200, 0}, {"a", 358, 0}},
		},
		{
			name: "chain keeps longitudes",
			points: []collision.Body{
				{ID: "a", Longitude: 100}, {ID: "b", Longitude: 105},
				{ID: "c", Longitude: 110}, {ID: "d", Longitude: 115},
			},
			want: []want{{"a", 100, 0}, {"b", 105, 1}, {"c", 110, 0}, {"d", 115, 1}},
		},
		{
			name:   "isolated",
			points: []collision.Body{{ID: "a", Longitude: 10}, {ID: "b", Longitude: 100}},
			want:   []want{{"a", 10, 0}, {"b", 100, 0}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := collision.ResolveStackedWithReport(tc.points, 6)
			require.True(t, res.Converged)
			require.Len(t, res.Positions, len(tc.want))
			for i, w := range tc.want {
				got := res.Positions[i]
				assert.Equal(t, w.id, got.ID)
				assert.InDelta(t, w.lon, got.AdjustedLongitude, eps, w.id)
				assert.Equal(t, w.offset, got.RadialOffset, w.id)
			}
		})
	}
}

func TestResolveStackedFiveIdentical(t *testing.T) {
	var points []collision.Body
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		points = append(points, collision.Body{ID: id, Longitude: 100})
	}
	res := collision.ResolveStackedWithReport(points, 6)
	require.True(t, res.Converged)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(res.Positions))

	var offsets []int
	for _, p := range res.Positions {
		offsets = append(offsets, p.RadialOffset)
	}
	assert.Equal(t, []int{0, 1, 0, 1, 0}, offsets)
	for k := 0; k+1 < len(res.Positions); k++ {
		assert.LessOrEqual(t, res.Positions[k].AdjustedLongitude, res.Positions[k+1].AdjustedLongitude)
	}
	assertStackedLayout(t, res.Positions, 6)
}

func TestResolveStackedKeepsOutsideBodies(t *testing.T) {
	tests := []struct {
		name    string
		points  []collision.Body
		outside []string
	}{
		{
			name: "seven stacked next to an isolated body",
			points: append(repeat("p", 100, 7),
				collision.Body{ID: "N", Longitude: 106.5}),
			outside: []string{"N"},
		},
		{
			name: "stack between two isolated bodies",
			points: append(append([]collision.Body{{ID: "A", Longitude: 80}}, repeat("s", 100, 5)...),
				collision.Body{ID: "B", Longitude: 115}),
			outside: []string{"A", "B"},
		},
		{
			name: "stack across zero",
			points: append(repeat("s", 358, 3),
				collision.Body{ID: "d", Longitude: 1}, collision.Body{ID: "N", Longitude: 10},
				collision.Body{ID: "F", Longitude: 200}),
			outside: []string{"N", "F"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := collision.ResolveStackedWithReport(tc.points, 6)
			require.True(t, res.Converged)
			require.Len(t, res.Positions, len(tc.points))
			assertStackedLayout(t, res.Positions, 6)

			byID := map[string]collision.AdjustedPosition{}
			for _, p := range res.Positions {
				byID[p.ID] = p
			}
			for _, id := range tc.outside {
				assert.InDelta(t, byID[id].OriginalLongitude, byID[id].AdjustedLongitude, eps, id)
				assert.Zero(t, byID[id].RadialOffset, id)
			}
		})
	}
}

func TestResolveStackedAdjacentClusters(t *testing.T) {
	points := append(repeat("a", 100, 3), repeat("b", 107, 3)...)
	res := collision.ResolveStackedWithReport(points, 6)
	require.True(t, res.Converged)
	assert.Equal(t, []string{"a0", "a1", "a2", "b0", "b1", "b2"}, ids(res.Positions))
	assertStackedLayout(t, res.Positions, 6)
}

func TestResolveStackedOvercrowded(t *testing.T) {
	res := collision.ResolveStackedWithReport(repeat("p", 50, 80), 10)
	assert.False(t, res.Converged)
	require.Len(t, res.Positions, 80)
	assert.LessOrEqual(t, winding(res.Positions), circle.Full+eps)
}

func TestResolveStackedDoesNotMutateInput(t *testing.T) {
	bodies := append(repeat("p", 100, 4), collision.Body{ID: "N", Longitude: 104})
	before := append([]collision.Body(nil), bodies...)
	collision.ResolveStacked(bodies, 6)
	assert.Equal(t, before, bodies)
}

func TestResolveStackedConcurrentCallsAgree(t *testing.T) {
	bodies := append(repeat("a", 100, 3), repeat("b", 107, 3)...)
	want := collision.ResolveStacked(bodies, 6)

	var wg sync.WaitGroup
	results := make([][]collision.AdjustedPosition, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = collision.ResolveStacked(bodies, 6)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestResolveStackedRandomCharts(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	const minDistance = 6.0

	for run := 0; run < 2000; run++ {
		centers := make([]float64, 1+rng.Intn(4))
		for i := range centers {
			centers[i] = rng.Float64() * 360
		}
		var bodies []collision.Body
		for i, n := 0, 2+rng.Intn(15); i < n; i++ {
			lon := rng.Float64() * 360
			if rng.Float64() < 0.7 {
				lon = centers[rng.Intn(len(centers))] + rng.Float64()*16 - 8
			}
			bodies = append(bodies, collision.Body{ID: fmt.Sprintf("b%d", i), Longitude: lon})
		}

		res := collision.ResolveStackedWithReport(bodies, minDistance)
		require.Len(t, res.Positions, len(bodies))
		require.LessOrEqual(t, winding(res.Positions), circle.Full+eps, "run %d: order broken", run)

		for i, p := range res.Positions {
			prev := res.Positions[(i-1+len(res.Positions))%len(res.Positions)]
			next := res.Positions[(i+1)%len(res.Positions)]
			if circle.ClockwiseDistance(prev.OriginalLongitude, p.OriginalLongitude) >= minDistance &&
				circle.ClockwiseDistance(p.OriginalLongitude, next.OriginalLongitude) >= minDistance {
				require.InDelta(t, p.OriginalLongitude, p.AdjustedLongitude, eps, "run %d: %s moved", run, p.ID)
			}
		}
		if res.Converged {
			for _, g := range trackGaps(res.Positions) {
				require.GreaterOrEqual(t, g, minDistance-eps, "run %d", run)
			}
		}
	}
}

func repeat(prefix string, lon float64, n int) []collision.Body {
	out := make([]collision.Body, n)
	for i := range out {
		out[i] = collision.Body{ID: fmt.Sprintf("%s%d", prefix, i), Longitude: lon}
	}
	return out
}

func TestResolveStackedSameTrackSeparation(t *testing.T) {
	points := []collision.Body{
		{ID: "a", Longitude: 200}, {ID: "b", Longitude: 200.5}, {ID: "c", Longitude: 201},
		{ID: "d", Longitude: 201.2}, {ID: "e", Longitude: 202},
	}
	got := collision.ResolveStacked(points, 6)

	byTrack := map[int][]collision.AdjustedPosition{}
	for _, p := range got {
		byTrack[p.RadialOffset] = append(byTrack[p.RadialOffset], p)
	}
	require.Len(t, byTrack, collision.StackTracks)
	for track, members := range byTrack {
		for k := 0; k+1 < len(members); k++ {
			gap := members[k+1].AdjustedLongitude - members[k].AdjustedLongitude
			assert.GreaterOrEqual(t, gap, 6.0-eps, "track %d", track)
		}
	}
}

func TestResolveStackedZeroDistance(t *testing.T) {
	got := collision.ResolveStacked([]collision.Body{{ID: "a", Longitude: 5}, {ID: "b", Longitude: 5}}, -1)
	for _, p := range got {
		assert.Zero(t, p.RadialOffset)
		assert.InDelta(t, 5, p.AdjustedLongitude, eps)
	}
}
