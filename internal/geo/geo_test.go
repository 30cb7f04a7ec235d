package geo

import "testing"

func TestHaversine_KnownDistance(t *testing.T) {
	// Greenwich Observatory to the Eiffel Tower, roughly 335 km.
	dist := Haversine(51.4769, 0.0005, 48.8584, 2.2945)

	if dist < 330000 || dist > 345000 {
		t.Errorf("expected ~335km, got %.0f m", dist)
	}
}

func TestHaversine_SamePoint(t *testing.T) {
	if d := Haversine(45.0, -122.0, 45.0, -122.0); d != 0 {
		t.Errorf("expected 0 for identical points, got %f", d)
	}
}

func TestHaversine_ShortDistance(t *testing.T) {
	// One arc-second of latitude is about 30.9 meters.
	dist := Haversine(45.0, -122.0, 45.0+1.0/3600.0, -122.0)

	if dist < 29 || dist > 33 {
		t.Errorf("expected ~31 m, got %.2f m", dist)
	}
}

func TestPlausibleStep(t *testing.T) {
	// ~31 m apart
	lat2 := 45.0 + 1.0/3600.0

	if !PlausibleStep(45.0, -122.0, lat2, -122.0, 10) {
		t.Error("3.1 m/s should be plausible")
	}
	if PlausibleStep(45.0, -122.0, lat2, -122.0, 1) {
		t.Error("31 m/s should not be plausible")
	}
	if !PlausibleStep(45.0, -122.0, lat2, -122.0, 0) {
		t.Error("zero elapsed time should be treated as plausible")
	}
}
