// Package chart holds the astrological chart model consumed by the renderers:
// bodies with their longitudes and speeds, house cusps, angles, aspects and
// the lunar phase.
//
// Positions are computed elsewhere. A chart is either loaded from a YAML,
// TOML or JSON file with Load, or built from any ephemeris that satisfies
// Engine with Calculate. Both paths fill the same derived fields (sign,
// degree within sign, house), so renderers never see the difference.
package chart
