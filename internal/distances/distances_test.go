package distances

import "testing"

func TestCanonical_OrderedAscending(t *testing.T) {
	all := Canonical()
	if len(all) == 0 {
		t.Fatal("expected canonical distances")
	}
	for i := 1; i < len(all); i++ {
		if all[i].Meters <= all[i-1].Meters {
			t.Errorf("canonical distances out of order: %q (%g) after %q (%g)",
				all[i].Label, all[i].Meters, all[i-1].Label, all[i-1].Meters)
		}
	}
}

func TestMerge_InsertsCustomInOrder(t *testing.T) {
	merged, err := Merge([]TargetDistance{
		{Label: "3K", Meters: 3000},
		{Label: "15K", Meters: 15000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 1; i < len(merged); i++ {
		if merged[i].Meters < merged[i-1].Meters {
			t.Errorf("merged distances out of order at %d: %g before %g",
				i, merged[i-1].Meters, merged[i].Meters)
		}
	}

	if _, ok := ByLabel(merged, "3K"); !ok {
		t.Error("expected 3K in merged set")
	}
	if _, ok := ByLabel(merged, "15K"); !ok {
		t.Error("expected 15K in merged set")
	}
}

func TestMerge_RejectsDuplicateLabel(t *testing.T) {
	if _, err := Merge([]TargetDistance{{Label: "5K", Meters: 5000}}); err == nil {
		t.Error("expected error for duplicate label")
	}
}

func TestMerge_RejectsInvalidCustom(t *testing.T) {
	if _, err := Merge([]TargetDistance{{Label: "", Meters: 3000}}); err == nil {
		t.Error("expected error for empty label")
	}
	if _, err := Merge([]TargetDistance{{Label: "Bad", Meters: 0}}); err == nil {
		t.Error("expected error for zero meters")
	}
}

func TestByLabel_Missing(t *testing.T) {
	if _, ok := ByLabel(Canonical(), "50K"); ok {
		t.Error("did not expect 50K in canonical set")
	}
}
