package analysis

import (
	"fmt"

	"stride/internal/distances"
)

// Segment is the fastest contiguous portion of one activity covering
// at least a target distance.
type Segment struct {
	Label        string
	TargetMeters float64

	StartIndex int
	EndIndex   int

	StartTime int // elapsed seconds at segment start
	EndTime   int // elapsed seconds at segment end
	Duration  int // EndTime - StartTime

	StartDistance float64 // cumulative meters at segment start
	EndDistance   float64 // cumulative meters at segment end

	StartPosition *Position
	EndPosition   *Position
}

// Covered returns the meters actually covered by the segment, which is
// at least the target distance.
func (s Segment) Covered() float64 {
	return s.EndDistance - s.StartDistance
}

// FindBestSegments finds, for each target distance, the
// minimum-duration contiguous window of the stream covering at least
// that distance. Target distances the activity never reaches are
// omitted from the result. A stream with fewer than two samples yields
// no segments. The stream must already be validated; a stream with any
// nil sequence is ErrMissingStreamData.
func FindBestSegments(stream *SampleStream, targets []distances.TargetDistance) ([]Segment, error) {
	if stream == nil || stream.Time == nil || stream.Distance == nil || stream.Position == nil {
		return nil, fmt.Errorf("find best segments: %w", ErrMissingStreamData)
	}
	if stream.Len() < 2 {
		return nil, nil
	}

	segments := make([]Segment, 0, len(targets))
	for _, target := range targets {
		if seg, ok := bestWindow(stream, target); ok {
			segments = append(segments, seg)
		}
	}
	return segments, nil
}

// bestWindow scans all start indices for the fastest window covering
// target.Meters. Strict less-than comparison keeps the earliest window
// on equal durations.
//
// Because cumulative distance is non-decreasing, the distance
// remaining after each start index only shrinks as the start advances:
// once a start index cannot reach the target before the stream ends,
// no later one can, and the scan stops. The same condition is how an
// entirely unreachable target is detected.
func bestWindow(stream *SampleStream, target distances.TargetDistance) (Segment, bool) {
	n := stream.Len()
	best := Segment{Label: target.Label, TargetMeters: target.Meters}
	found := false

	for start := 0; start < n; start++ {
		targetEnd := stream.Distance[start] + target.Meters

		end := start + 1
		for end < n && stream.Distance[end] < targetEnd {
			end++
		}
		if end >= n {
			break
		}

		duration := stream.Time[end] - stream.Time[start]
		if !found || duration < best.Duration {
			found = true
			best.StartIndex = start
			best.EndIndex = end
			best.StartTime = stream.Time[start]
			best.EndTime = stream.Time[end]
			best.Duration = duration
			best.StartDistance = stream.Distance[start]
			best.EndDistance = stream.Distance[end]
			best.StartPosition = stream.Position[start]
			best.EndPosition = stream.Position[end]
		}
	}

	return best, found
}
