// Command astrocore renders astrological chart wheels as SVG.
//
// Usage:
//
//	astrocore render natal chart.yaml --output natal.svg
//	astrocore render transit natal.yaml transit.yaml
//	astrocore render synastry a.yaml b.toml --watch
//	astrocore resolve chart.json --stacked
//	astrocore validate chart.yaml
//
// Configuration is read from --config, or .astrocore.yaml in the working or
// home directory, and can be overridden with ASTROCORE_* environment
// variables such as ASTROCORE_COLLISION_MIN_DISTANCE.
package main

import "github.com/intellecat/AstroCore/cmd"

func main() {
	cmd.Execute()
}
