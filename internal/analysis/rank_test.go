package analysis

import "testing"

func TestRank_FastestFirst(t *testing.T) {
	records := []Record{
		{ActivityID: 1, Duration: 1500},
		{ActivityID: 2, Duration: 1300},
		{ActivityID: 3, Duration: 1400},
	}

	ranked := Rank(records, 0)

	wantIDs := []int64{2, 3, 1}
	for i, id := range wantIDs {
		if ranked[i].ActivityID != id {
			t.Errorf("position %d: expected activity %d, got %d", i, id, ranked[i].ActivityID)
		}
		if ranked[i].Rank != i+1 {
			t.Errorf("position %d: expected rank %d, got %d", i, i+1, ranked[i].Rank)
		}
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	records := []Record{
		{ActivityID: 1, Duration: 1400},
		{ActivityID: 2, Duration: 1400},
		{ActivityID: 3, Duration: 1400},
	}

	ranked := Rank(records, 0)

	for i := range ranked {
		if ranked[i].ActivityID != int64(i+1) {
			t.Errorf("tie broken out of input order at %d: activity %d", i, ranked[i].ActivityID)
		}
	}
}

func TestRank_Limit(t *testing.T) {
	records := []Record{
		{Duration: 1500},
		{Duration: 1300},
		{Duration: 1400},
		{Duration: 1200},
	}

	if got := Rank(records, 2); len(got) != 2 {
		t.Errorf("expected 2 records with limit 2, got %d", len(got))
	}
	if got := Rank(records, 0); len(got) != 4 {
		t.Errorf("expected all records with limit 0, got %d", len(got))
	}
	if got := Rank(records, 10); len(got) != 4 {
		t.Errorf("limit above length should return all, got %d", len(got))
	}
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	records := []Record{
		{ActivityID: 1, Duration: 1500},
		{ActivityID: 2, Duration: 1300},
	}

	Rank(records, 0)

	if records[0].ActivityID != 1 || records[0].Rank != 0 {
		t.Error("input slice was modified")
	}
}

func TestRank_Empty(t *testing.T) {
	if got := Rank(nil, 5); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}
