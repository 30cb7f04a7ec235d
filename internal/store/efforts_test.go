package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertActivity(t *testing.T, db *DB, id int64, name string, date time.Time) {
	t.Helper()
	hr := 152.0
	err := db.UpsertActivity(&Activity{
		ID:               id,
		AthleteID:        99,
		Name:             name,
		Type:             "Run",
		StartDate:        date,
		Distance:         8000,
		MovingTime:       2400,
		ElapsedTime:      2500,
		AverageHeartrate: &hr,
	})
	require.NoError(t, err)
}

func effortFor(activityID int64, label string, duration int, achievedAt time.Time) *BestEffort {
	return &BestEffort{
		ActivityID:      activityID,
		DistanceLabel:   label,
		TargetMeters:    5000,
		DurationSeconds: duration,
		CoveredMeters:   5004,
		StartIndex:      10,
		EndIndex:        410,
		StartOffset:     60,
		EndOffset:       60 + duration,
		AchievedAt:      achievedAt,
	}
}

func TestInsertBestEffortIfAbsent(t *testing.T) {
	db := NewTestDB(t)
	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	insertActivity(t, db, 1, "Morning Run", date)

	inserted, err := db.InsertBestEffortIfAbsent(effortFor(1, "5K", 1450, date))
	require.NoError(t, err)
	assert.True(t, inserted)

	// Same (activity, label) again: must be a no-op.
	inserted, err = db.InsertBestEffortIfAbsent(effortFor(1, "5K", 1400, date))
	require.NoError(t, err)
	assert.False(t, inserted)

	records, err := db.ListBestEfforts("5K", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1450, records[0].DurationSeconds, "original row must be kept")

	// A different label for the same activity is a separate record.
	inserted, err = db.InsertBestEffortIfAbsent(effortFor(1, "1K", 280, date))
	require.NoError(t, err)
	assert.True(t, inserted)
}

func TestHasBestEfforts(t *testing.T) {
	db := NewTestDB(t)
	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	insertActivity(t, db, 1, "Morning Run", date)

	has, err := db.HasBestEfforts(1)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = db.InsertBestEffortIfAbsent(effortFor(1, "5K", 1450, date))
	require.NoError(t, err)

	has, err = db.HasBestEfforts(1)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestListBestEfforts_WindowFilter(t *testing.T) {
	db := NewTestDB(t)

	dates := []time.Time{
		time.Date(2023, 6, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 8, 1, 8, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		id := int64(i + 1)
		insertActivity(t, db, id, "Run", d)
		_, err := db.InsertBestEffortIfAbsent(effortFor(id, "5K", 1500-i*50, d))
		require.NoError(t, err)
	}

	all, err := db.ListBestEfforts("5K", nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	recent, err := db.ListBestEfforts("5K", &from, nil)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	// Both bounds inclusive.
	to := dates[1]
	exact, err := db.ListBestEfforts("5K", &dates[1], &to)
	require.NoError(t, err)
	require.Len(t, exact, 1)
	assert.Equal(t, int64(2), exact[0].ActivityID)
}

func TestListBestEfforts_OrderedByDateWithActivityMetadata(t *testing.T) {
	db := NewTestDB(t)

	later := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	insertActivity(t, db, 1, "Spring Tempo", later)
	insertActivity(t, db, 2, "Winter Base", earlier)

	_, err := db.InsertBestEffortIfAbsent(effortFor(1, "5K", 1400, later))
	require.NoError(t, err)
	_, err = db.InsertBestEffortIfAbsent(effortFor(2, "5K", 1500, earlier))
	require.NoError(t, err)

	records, err := db.ListBestEfforts("5K", nil, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Winter Base", records[0].ActivityName)
	assert.Equal(t, "Spring Tempo", records[1].ActivityName)
	assert.Equal(t, 8000.0, records[0].RunDistance)
	assert.Equal(t, 2400, records[0].RunDuration)
	require.NotNil(t, records[0].AverageHeartrate)
	assert.Equal(t, 152.0, *records[0].AverageHeartrate)
}

func TestDeleteBestEffortsForActivity(t *testing.T) {
	db := NewTestDB(t)
	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	insertActivity(t, db, 1, "Morning Run", date)

	_, err := db.InsertBestEffortIfAbsent(effortFor(1, "5K", 1450, date))
	require.NoError(t, err)
	_, err = db.InsertBestEffortIfAbsent(effortFor(1, "1K", 280, date))
	require.NoError(t, err)

	require.NoError(t, db.DeleteBestEffortsForActivity(1))

	has, err := db.HasBestEfforts(1)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestListEffortLabels(t *testing.T) {
	db := NewTestDB(t)
	date := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	insertActivity(t, db, 1, "Morning Run", date)

	fiveK := effortFor(1, "5K", 1450, date)
	_, err := db.InsertBestEffortIfAbsent(fiveK)
	require.NoError(t, err)

	oneK := effortFor(1, "1K", 280, date)
	oneK.TargetMeters = 1000
	_, err = db.InsertBestEffortIfAbsent(oneK)
	require.NoError(t, err)

	labels, err := db.ListEffortLabels()
	require.NoError(t, err)
	assert.Equal(t, []string{"1K", "5K"}, labels, "labels come back shortest first")
}
