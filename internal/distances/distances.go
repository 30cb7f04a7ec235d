// Package distances defines the target distances for which best-effort
// times are tracked.
package distances

import (
	"fmt"
	"sort"
)

// Standard distances in meters
const (
	Meters400m     = 400
	Meters1K       = 1000
	Meters1Mile    = 1609.34
	Meters5K       = 5000
	Meters10K      = 10000
	MetersHalfMara = 21097.5
	MetersMarathon = 42195
)

// TargetDistance pairs a display label with a meter value.
type TargetDistance struct {
	Label  string
	Meters float64
}

// Canonical returns the built-in target distances, ordered ascending by
// meter value.
func Canonical() []TargetDistance {
	return []TargetDistance{
		{Label: "400m", Meters: Meters400m},
		{Label: "1K", Meters: Meters1K},
		{Label: "1 Mile", Meters: Meters1Mile},
		{Label: "5K", Meters: Meters5K},
		{Label: "10K", Meters: Meters10K},
		{Label: "Half Marathon", Meters: MetersHalfMara},
		{Label: "Marathon", Meters: MetersMarathon},
	}
}

// Merge combines the canonical distances with user-defined custom
// distances, keeping the ascending-by-meters ordering. Labels must be
// unique across the combined set.
func Merge(custom []TargetDistance) ([]TargetDistance, error) {
	all := Canonical()
	seen := make(map[string]struct{}, len(all)+len(custom))
	for _, d := range all {
		seen[d.Label] = struct{}{}
	}

	for _, d := range custom {
		if d.Label == "" {
			return nil, fmt.Errorf("custom distance with %g meters has no label", d.Meters)
		}
		if d.Meters <= 0 {
			return nil, fmt.Errorf("custom distance %q has non-positive meter value %g", d.Label, d.Meters)
		}
		if _, dup := seen[d.Label]; dup {
			return nil, fmt.Errorf("duplicate distance label %q", d.Label)
		}
		seen[d.Label] = struct{}{}
		all = append(all, d)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Meters < all[j].Meters
	})

	return all, nil
}

// ByLabel finds a target distance by its label.
func ByLabel(targets []TargetDistance, label string) (TargetDistance, bool) {
	for _, d := range targets {
		if d.Label == label {
			return d, true
		}
	}
	return TargetDistance{}, false
}
