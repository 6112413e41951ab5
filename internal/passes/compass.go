package passes

import "math"

// 16-point compass rose, clockwise from north.
var directions = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CardinalDirection converts an azimuth in degrees to its 16-point compass
// label. The azimuth is reduced modulo 360 first, then snapped to the
// nearest 22.5° sector; exact sector boundaries round half to even, so
// 11.25° stays N while 348.75° wraps to N.
func CardinalDirection(azimuth float64) string {
	az := math.Mod(azimuth, 360)
	if az < 0 {
		az += 360
	}
	idx := int(math.RoundToEven(az/22.5)) % 16
	return directions[idx]
}
