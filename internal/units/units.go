// Package units formats durations, distances, and paces for display.
// All inputs are SI (meters, seconds); the unit system is an explicit
// parameter so callers never depend on ambient state.
package units

import "fmt"

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// System selects the display unit system.
type System int

const (
	Metric System = iota
	Imperial
)

// ParseSystem maps a config string to a System, defaulting to metric.
func ParseSystem(s string) System {
	if s == "imperial" || s == "mi" {
		return Imperial
	}
	return Metric
}

// FormatDuration formats seconds as "H:MM:SS" or "M:SS".
func FormatDuration(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatDistance formats meters in the system's distance unit.
func (sys System) FormatDistance(meters float64) string {
	if sys == Imperial {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

// FormatPace formats the pace over a whole effort as "M:SS" per
// distance unit. Returns "-" when either input is non-positive.
func (sys System) FormatPace(seconds int, meters float64) string {
	if meters <= 0 || seconds <= 0 {
		return "-"
	}

	var paceSeconds float64
	if sys == Imperial {
		paceSeconds = float64(seconds) / (meters / metersPerMile)
	} else {
		paceSeconds = float64(seconds) / (meters / metersPerKm)
	}

	mins := int(paceSeconds) / 60
	secs := int(paceSeconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatPaceWithUnit formats pace with its unit label, e.g. "4:31/km".
func (sys System) FormatPaceWithUnit(seconds int, meters float64) string {
	pace := sys.FormatPace(seconds, meters)
	if pace == "-" {
		return pace
	}
	return pace + "/" + sys.DistanceLabel()
}

// DistanceLabel returns the short unit label.
func (sys System) DistanceLabel() string {
	if sys == Imperial {
		return "mi"
	}
	return "km"
}

// SegmentPace formats the pace of a best-effort segment as "M:SS" per
// kilometer, using the target distance rather than the covered
// distance. Minutes and seconds are floored. Display only; never used
// for comparisons.
func SegmentPace(durationSeconds int, targetMeters float64) string {
	if targetMeters <= 0 || durationSeconds <= 0 {
		return "-"
	}
	paceSeconds := float64(durationSeconds) / targetMeters * 1000
	mins := int(paceSeconds) / 60
	secs := int(paceSeconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
