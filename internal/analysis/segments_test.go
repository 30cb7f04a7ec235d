package analysis

import (
	"errors"
	"testing"

	"stride/internal/distances"
)

// newStream builds a stream with nil positions from parallel slices.
func newStream(times []int, dists []float64) *SampleStream {
	return &SampleStream{
		ActivityID: 1,
		Time:       times,
		Distance:   dists,
		Position:   make([]*Position, len(times)),
	}
}

func targets(labelMeters ...float64) []distances.TargetDistance {
	var out []distances.TargetDistance
	for i, m := range labelMeters {
		out = append(out, distances.TargetDistance{Label: string(rune('A' + i)), Meters: m})
	}
	return out
}

func TestFindBestSegments_PicksFastestWindow(t *testing.T) {
	// From start 1 (400m) the 1000m target is reached at sample 3
	// (1400m) in 130s; from start 0 it takes 190s.
	stream := newStream(
		[]int{0, 60, 130, 190},
		[]float64{0, 400, 900, 1400},
	)

	segs, err := FindBestSegments(stream, targets(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}

	seg := segs[0]
	if seg.StartIndex != 1 || seg.EndIndex != 3 {
		t.Errorf("expected window [1,3], got [%d,%d]", seg.StartIndex, seg.EndIndex)
	}
	if seg.Duration != 130 {
		t.Errorf("expected duration 130s, got %d", seg.Duration)
	}
	if seg.Covered() < 1000 {
		t.Errorf("covered distance %.0f below target", seg.Covered())
	}
}

func TestFindBestSegments_MatchesBruteForce(t *testing.T) {
	// Uneven pacing; cross-check the scan against all (i, j) pairs.
	times := []int{0, 30, 55, 100, 130, 150, 200, 260, 290, 340}
	dists := []float64{0, 110, 250, 390, 540, 700, 820, 1000, 1180, 1300}
	stream := newStream(times, dists)

	for _, target := range []float64{200, 500, 800, 1200} {
		segs, err := FindBestSegments(stream, targets(target))
		if err != nil {
			t.Fatalf("target %.0f: %v", target, err)
		}

		// Brute force minimum over every qualifying pair.
		bestDur := -1
		for i := 0; i < len(times); i++ {
			for j := i + 1; j < len(times); j++ {
				if dists[j]-dists[i] >= target {
					if d := times[j] - times[i]; bestDur < 0 || d < bestDur {
						bestDur = d
					}
					break
				}
			}
		}

		if bestDur < 0 {
			if len(segs) != 0 {
				t.Errorf("target %.0f: expected no segment, got %+v", target, segs[0])
			}
			continue
		}
		if len(segs) != 1 {
			t.Fatalf("target %.0f: expected 1 segment, got %d", target, len(segs))
		}
		if segs[0].Duration != bestDur {
			t.Errorf("target %.0f: scan found %ds, brute force found %ds",
				target, segs[0].Duration, bestDur)
		}
	}
}

func TestFindBestSegments_UnreachableTargetOmitted(t *testing.T) {
	stream := newStream(
		[]int{0, 60, 120},
		[]float64{0, 200, 350},
	)

	segs, err := FindBestSegments(stream, targets(1000, 300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("expected only the reachable target, got %d segments", len(segs))
	}
	if segs[0].TargetMeters != 300 {
		t.Errorf("expected the 300m target, got %.0f", segs[0].TargetMeters)
	}
}

func TestFindBestSegments_EarliestWindowWinsTies(t *testing.T) {
	// Two disjoint 400m stretches both take 60s; the earlier one must win.
	stream := newStream(
		[]int{0, 60, 180, 240},
		[]float64{0, 400, 500, 900},
	)

	segs, err := FindBestSegments(stream, targets(400))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segs))
	}
	if segs[0].StartIndex != 0 {
		t.Errorf("expected earliest window to win the tie, got start %d", segs[0].StartIndex)
	}
}

func TestFindBestSegments_ExtensionNeverWorsens(t *testing.T) {
	times := []int{0, 50, 110, 170, 230}
	dists := []float64{0, 250, 520, 790, 1050}

	segs, err := FindBestSegments(newStream(times, dists), targets(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatal("expected a segment before extension")
	}
	before := segs[0].Duration

	// Append slow trailing samples that only extend the activity.
	extTimes := append(append([]int{}, times...), 400, 600)
	extDists := append(append([]float64{}, dists...), 1100, 1200)

	segs, err = FindBestSegments(newStream(extTimes, extDists), targets(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segs[0].Duration > before {
		t.Errorf("extension worsened best time: %d -> %d", before, segs[0].Duration)
	}
}

func TestFindBestSegments_ShortStreams(t *testing.T) {
	tests := []struct {
		name   string
		stream *SampleStream
	}{
		{"empty", newStream([]int{}, []float64{})},
		{"single sample", newStream([]int{0}, []float64{0})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			segs, err := FindBestSegments(tc.stream, targets(1000))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(segs) != 0 {
				t.Errorf("expected no segments, got %d", len(segs))
			}
		})
	}
}

func TestFindBestSegments_MissingStreams(t *testing.T) {
	tests := []struct {
		name   string
		stream *SampleStream
	}{
		{"nil stream", nil},
		{"nil time", &SampleStream{Distance: []float64{0, 1}, Position: make([]*Position, 2)}},
		{"nil distance", &SampleStream{Time: []int{0, 1}, Position: make([]*Position, 2)}},
		{"nil position", &SampleStream{Time: []int{0, 1}, Distance: []float64{0, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FindBestSegments(tc.stream, targets(1000))
			if !errors.Is(err, ErrMissingStreamData) {
				t.Errorf("expected ErrMissingStreamData, got %v", err)
			}
		})
	}
}

func TestFindBestSegments_CarriesPositions(t *testing.T) {
	stream := newStream([]int{0, 30, 60}, []float64{0, 250, 500})
	stream.Position[0] = &Position{Lat: 45.0, Lng: -122.0}
	stream.Position[2] = &Position{Lat: 45.004, Lng: -122.0}

	segs, err := FindBestSegments(stream, targets(500))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 {
		t.Fatal("expected a segment")
	}
	if segs[0].StartPosition == nil || segs[0].EndPosition == nil {
		t.Error("expected start and end positions to be carried through")
	}
}
