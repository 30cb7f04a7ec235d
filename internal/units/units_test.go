package units

import "testing"

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{90, "1:30"},
		{1234, "20:34"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
		{7322, "2:02:02"},
	}

	for _, tc := range tests {
		if got := FormatDuration(tc.seconds); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	if got := Metric.FormatDistance(5000); got != "5.0 km" {
		t.Errorf("metric: got %q", got)
	}
	if got := Imperial.FormatDistance(1609.34); got != "1.0 mi" {
		t.Errorf("imperial: got %q", got)
	}
}

func TestFormatPace(t *testing.T) {
	// 25:00 for 5 km is 5:00/km; the same effort is ~8:02/mi.
	if got := Metric.FormatPace(1500, 5000); got != "5:00" {
		t.Errorf("metric pace: got %q", got)
	}
	if got := Imperial.FormatPace(1500, 5000); got != "8:02" {
		t.Errorf("imperial pace: got %q", got)
	}
	if got := Metric.FormatPace(0, 5000); got != "-" {
		t.Errorf("zero duration: got %q", got)
	}
	if got := Metric.FormatPace(1500, 0); got != "-" {
		t.Errorf("zero distance: got %q", got)
	}
}

func TestFormatPaceWithUnit(t *testing.T) {
	if got := Metric.FormatPaceWithUnit(1500, 5000); got != "5:00/km" {
		t.Errorf("got %q", got)
	}
	if got := Imperial.FormatPaceWithUnit(0, 0); got != "-" {
		t.Errorf("got %q", got)
	}
}

func TestSegmentPace(t *testing.T) {
	tests := []struct {
		duration int
		target   float64
		want     string
	}{
		{1500, 5000, "5:00"},
		{130, 1000, "2:10"},
		{299, 1000, "4:59"},
		{0, 1000, "-"},
		{300, 0, "-"},
	}

	for _, tc := range tests {
		if got := SegmentPace(tc.duration, tc.target); got != tc.want {
			t.Errorf("SegmentPace(%d, %.0f) = %q, want %q", tc.duration, tc.target, got, tc.want)
		}
	}
}

func TestParseSystem(t *testing.T) {
	if ParseSystem("imperial") != Imperial {
		t.Error("imperial should parse as Imperial")
	}
	if ParseSystem("metric") != Metric || ParseSystem("") != Metric {
		t.Error("metric and empty should parse as Metric")
	}
}
