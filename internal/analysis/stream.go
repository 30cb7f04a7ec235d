// Package analysis implements the best-segment extraction and
// personal-record progression engine. Everything in this package is
// pure computation over in-memory values: no I/O, no shared state.
package analysis

import (
	"errors"
	"fmt"
	"math"

	"stride/internal/geo"
)

// ErrMissingStreamData is returned when one or more of the time,
// distance, or position sequences is absent for an activity.
var ErrMissingStreamData = errors.New("missing stream data")

// ErrMalformedSampleData is returned when sample values violate the
// stream invariants (non-monotonic distance, negative or NaN values).
var ErrMalformedSampleData = errors.New("malformed sample data")

// Position is a latitude/longitude pair for one sample.
type Position struct {
	Lat float64
	Lng float64
}

// SampleStream holds the aligned raw sequences for one activity.
// Time holds elapsed seconds since activity start, Distance holds
// cumulative meters, and Position holds optional GPS fixes. All three
// slices must have the same length; individual Position entries may be
// nil (e.g. treadmill runs).
type SampleStream struct {
	ActivityID int64
	Time       []int
	Distance   []float64
	Position   []*Position
}

// Len returns the number of samples in the stream.
func (s *SampleStream) Len() int {
	return len(s.Time)
}

// ValidationPolicy controls what happens when a malformed sample is
// found during validation.
type ValidationPolicy int

const (
	// RejectActivity fails validation for the whole stream on the
	// first malformed sample.
	RejectActivity ValidationPolicy = iota
	// DropSamples removes malformed samples and keeps the rest.
	DropSamples
)

// Validate checks the stream invariants and returns a stream that is
// safe to feed to FindBestSegments.
//
// A nil Time, Distance, or Position slice is ErrMissingStreamData.
// Mismatched lengths, NaN or negative distances, decreasing distance,
// or decreasing time are malformed: under RejectActivity the stream is
// rejected with ErrMalformedSampleData, under DropSamples the
// offending samples are removed. Position glitches (a jump implying an
// implausible speed) clear the position fix but never invalidate the
// timing data.
func (s *SampleStream) Validate(policy ValidationPolicy) (*SampleStream, error) {
	if s.Time == nil || s.Distance == nil || s.Position == nil {
		return nil, fmt.Errorf("activity %d: %w", s.ActivityID, ErrMissingStreamData)
	}
	if len(s.Time) != len(s.Distance) || len(s.Time) != len(s.Position) {
		return nil, fmt.Errorf("activity %d: sequence lengths differ (%d/%d/%d): %w",
			s.ActivityID, len(s.Time), len(s.Distance), len(s.Position), ErrMalformedSampleData)
	}

	out := &SampleStream{
		ActivityID: s.ActivityID,
		Time:       make([]int, 0, len(s.Time)),
		Distance:   make([]float64, 0, len(s.Distance)),
		Position:   make([]*Position, 0, len(s.Position)),
	}

	for i := range s.Time {
		if bad := sampleProblem(s, out, i); bad != "" {
			if policy == RejectActivity {
				return nil, fmt.Errorf("activity %d: sample %d: %s: %w",
					s.ActivityID, i, bad, ErrMalformedSampleData)
			}
			continue
		}

		pos := s.Position[i]
		if pos != nil && len(out.Position) > 0 {
			if prev := out.Position[len(out.Position)-1]; prev != nil {
				dt := s.Time[i] - out.Time[len(out.Time)-1]
				if !geo.PlausibleStep(prev.Lat, prev.Lng, pos.Lat, pos.Lng, dt) {
					pos = nil
				}
			}
		}

		out.Time = append(out.Time, s.Time[i])
		out.Distance = append(out.Distance, s.Distance[i])
		out.Position = append(out.Position, pos)
	}

	return out, nil
}

// sampleProblem describes why sample i is malformed relative to the
// samples already accepted, or returns "" if it is fine.
func sampleProblem(in, accepted *SampleStream, i int) string {
	d := in.Distance[i]
	switch {
	case math.IsNaN(d) || math.IsInf(d, 0):
		return "distance is not a number"
	case d < 0:
		return fmt.Sprintf("negative distance %g", d)
	}

	if n := len(accepted.Time); n > 0 {
		if in.Time[i] < accepted.Time[n-1] {
			return fmt.Sprintf("time went backwards (%d < %d)", in.Time[i], accepted.Time[n-1])
		}
		if d < accepted.Distance[n-1] {
			return fmt.Sprintf("distance went backwards (%g < %g)", d, accepted.Distance[n-1])
		}
	}
	return ""
}
