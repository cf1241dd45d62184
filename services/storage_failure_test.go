package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A failed store read or write must reach the caller unchanged: no retry,
// no swallowing, no substitution with a default.
func TestStoreFailurePropagation(t *testing.T) {
	store := newFakeGoalStore()
	require.NoError(t, store.SaveGoalSet(baseGoalSet()))

	goals := NewGoalService(store)
	ledger := NewAchievementService(store, goals)
	reports := NewReportService(store)

	boom := &StorageError{Op: "query", Err: errors.New("connection reset")}
	store.failWith = boom

	calories := 2000.0
	cases := []struct {
		name string
		call func() error
	}{
		{"GetGoalSet", func() error {
			_, err := goals.GetGoalSet(1)
			return err
		}},
		{"UpsertGoalSet", func() error {
			_, err := goals.UpsertGoalSet(1, baseGoalSet())
			return err
		}},
		{"ResolveGoalsForDate", func() error {
			_, err := goals.ResolveGoalsForDate(1, aSunday)
			return err
		}},
		{"GetOrCreate", func() error {
			_, err := ledger.GetOrCreate(1, aSunday)
			return err
		}},
		{"RecordAchievement", func() error {
			_, err := ledger.RecordAchievement(1, aSunday, AchievedUpdate{Calories: &calories})
			return err
		}},
		{"ListProgress", func() error {
			_, _, err := ledger.ListProgress(1, aSunday, aTuesday)
			return err
		}},
		{"WeeklySummaries", func() error {
			_, err := reports.WeeklySummaries(1, aSunday, aTuesday)
			return err
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			assert.ErrorIs(t, err, boom)
			assert.NotErrorIs(t, err, ErrNotFound)

			var se *StorageError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "query", se.Op)
		})
	}
}
