package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stride/internal/distances"
)

func TestCustomDistances(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, db.AddCustomDistance(distances.TargetDistance{Label: "15K", Meters: 15000}))
	require.NoError(t, db.AddCustomDistance(distances.TargetDistance{Label: "3K", Meters: 3000}))

	list, err := db.ListCustomDistances()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "3K", list[0].Label, "should be ordered by meters")
	assert.Equal(t, "15K", list[1].Label)

	// Replacing a label updates its meters.
	require.NoError(t, db.AddCustomDistance(distances.TargetDistance{Label: "3K", Meters: 3200}))
	list, err = db.ListCustomDistances()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 3200.0, list[0].Meters)

	require.NoError(t, db.RemoveCustomDistance("3K"))
	list, err = db.ListCustomDistances()
	require.NoError(t, err)
	require.Len(t, list, 1)
}
