package analysis

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func rec(date string, duration int) Record {
	return Record{Label: "5K", Duration: duration, Date: day(date)}
}

func TestProgression_KeepsOnlyImprovements(t *testing.T) {
	records := []Record{
		rec("2024-01-01", 1500),
		rec("2024-03-01", 1400),
		rec("2024-02-01", 1600),
		rec("2024-06-01", 1300),
	}

	prog := Progression(records)

	want := []struct {
		date     string
		duration int
		rank     int
	}{
		{"2024-01-01", 1500, 1},
		{"2024-03-01", 1400, 2},
		{"2024-06-01", 1300, 3},
	}

	if len(prog) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(prog))
	}
	for i, w := range want {
		if prog[i].Duration != w.duration || prog[i].Rank != w.rank || !prog[i].Date.Equal(day(w.date)) {
			t.Errorf("entry %d: got (%s, %d, rank %d), want (%s, %d, rank %d)",
				i, prog[i].Date.Format("2006-01-02"), prog[i].Duration, prog[i].Rank,
				w.date, w.duration, w.rank)
		}
	}
}

func TestProgression_StrictlyDecreasing(t *testing.T) {
	records := []Record{
		rec("2024-05-01", 1250),
		rec("2024-01-01", 1400),
		rec("2024-02-01", 1350),
		rec("2024-03-01", 1350),
		rec("2024-04-01", 1390),
	}

	prog := Progression(records)

	for i := 1; i < len(prog); i++ {
		if prog[i].Duration >= prog[i-1].Duration {
			t.Errorf("progression not strictly decreasing at %d: %d then %d",
				i, prog[i-1].Duration, prog[i].Duration)
		}
		if prog[i].Date.Before(prog[i-1].Date) {
			t.Errorf("progression out of date order at %d", i)
		}
	}
}

func TestProgression_EqualDurationKeepsEarlier(t *testing.T) {
	records := []Record{
		rec("2024-02-01", 1200),
		rec("2024-01-01", 1200),
	}

	prog := Progression(records)

	if len(prog) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(prog))
	}
	if !prog[0].Date.Equal(day("2024-01-01")) {
		t.Errorf("expected the earlier record kept, got %s", prog[0].Date.Format("2006-01-02"))
	}
}

func TestProgression_Idempotent(t *testing.T) {
	records := []Record{
		rec("2024-01-01", 1500),
		rec("2024-02-01", 1450),
		rec("2024-03-01", 1500),
		rec("2024-04-01", 1400),
	}

	once := Progression(records)
	twice := Progression(once)

	if len(once) != len(twice) {
		t.Fatalf("length changed on second pass: %d -> %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].Duration != twice[i].Duration || once[i].Rank != twice[i].Rank {
			t.Errorf("entry %d changed on second pass", i)
		}
	}
}

func TestProgression_EdgeCases(t *testing.T) {
	if prog := Progression(nil); len(prog) != 0 {
		t.Error("expected empty progression for empty input")
	}

	prog := Progression([]Record{rec("2024-01-01", 1500)})
	if len(prog) != 1 || prog[0].Rank != 1 {
		t.Error("single record should appear with rank 1")
	}
}
