// Package collision computes collision-free display positions for symbols
// placed around a chart wheel.
//
// Two resolvers are provided:
//
//   - Resolve spreads symbols along a single ring. Each circularly adjacent
//     pair ends at least minDistance degrees apart, symbols keep clear of
//     sector boundaries (house cusps) when asked to, and the circular order of
//     the input is never changed. It serves natal, transit and noon rings.
//
//   - ResolveStacked separates colliding symbols by depth instead of angle.
//     Members of a cluster alternate between two concentric tracks and are
//     nudged sideways only when a track itself is crowded, never past a
//     neighbour and never onto a body outside the cluster, which stays put.
//     It serves the
//     two-person synastry rings, where an exact conjunction should still look
//     like one.
//
// Both resolvers are pure: they copy their input, keep no package state and
// are safe to call from many goroutines at once. Work is bounded by
// MaxIterations relaxation passes, so the cost is
// O(MaxIterations × N × (N + boundaries)) in the worst case.
//
// The relaxation finds a feasible layout, not an optimal one. When the main
// loop hits the iteration cap, a finishing pass pulls overlapping symbols
// apart while ignoring boundaries. Inputs that cannot fit at all (N ×
// minDistance > 360) are spread as evenly as the ring allows. In both cases
// ResolveWithReport reports Converged as false.
//
// Usage:
//
//	bodies := []collision.Body{{ID: "Sun", Longitude: 106.6}, {ID: "Mars", Longitude: 107.4}}
//	cusps := []collision.Boundary{{Index: 1, Longitude: 90}, {Index: 2, Longitude: 120}}
//	adjusted := collision.Resolve(bodies, cusps,
//		collision.DefaultMinDistance, collision.DefaultBoundaryBuffer, true)
package collision
