// Package geo provides great-circle distance math for GPS positions.
package geo

import "math"

const earthRadius = 6371000 // meters

// Haversine returns the great-circle distance in meters between two
// latitude/longitude pairs.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLatRad := (lat2 - lat1) * math.Pi / 180
	deltaLonRad := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLatRad/2)*math.Sin(deltaLatRad/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLonRad/2)*math.Sin(deltaLonRad/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// MaxRunningSpeed is the fastest speed in m/s considered plausible for
// a runner. Position jumps implying more than this are GPS glitches.
const MaxRunningSpeed = 12.5

// PlausibleStep reports whether moving between two positions within
// elapsedSeconds is physically plausible for a runner. A zero elapsed
// time cannot be judged and is treated as plausible.
func PlausibleStep(lat1, lon1, lat2, lon2 float64, elapsedSeconds int) bool {
	if elapsedSeconds <= 0 {
		return true
	}
	dist := Haversine(lat1, lon1, lat2, lon2)
	return dist/float64(elapsedSeconds) <= MaxRunningSpeed
}
