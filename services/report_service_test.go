package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRecord(t *testing.T, store *fakeGoalStore, date time.Time, rec models.AchievementRecord) {
	t.Helper()
	rec.UserID = 1
	rec.Date = date
	require.NoError(t, store.CreateAchievement(&rec))
}

func TestMondayOf(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"monday maps to itself", day(2024, 1, 1), day(2024, 1, 1)},
		{"wednesday maps back", day(2024, 1, 3), day(2024, 1, 1)},
		{"sunday maps back six days", day(2024, 1, 7), day(2024, 1, 1)},
		{"across month boundary", day(2024, 2, 2), day(2024, 1, 29)},
		{"across year boundary", day(2025, 1, 1), day(2024, 12, 30)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, mondayOf(tc.in))
		})
	}
}

func TestWeeklySummaries_BucketsAndAverages(t *testing.T) {
	store := newFakeGoalStore()
	svc := NewReportService(store)

	// Week of Jan 1: two active days, one rest day.
	seedRecord(t, store, day(2024, 1, 2), models.AchievementRecord{
		CaloriesGoal: 2000, CaloriesAchieved: 2000, // 100%
		ExerciseGoal: 40, ExerciseAchieved: 20, // 50%
		StreakMaintained: true,
	})
	seedRecord(t, store, day(2024, 1, 4), models.AchievementRecord{
		CaloriesGoal: 2000, CaloriesAchieved: 1000, // 50%
		ExerciseGoal: 40, ExerciseAchieved: 40, // 100%
	})
	seedRecord(t, store, day(2024, 1, 7), models.AchievementRecord{
		CaloriesGoal: 1800, CaloriesAchieved: 3600, // capped at 100%
		ExerciseGoal: 12, ExerciseAchieved: 0,
		IsRestDay: true, StreakMaintained: true,
	})

	weeks, err := svc.WeeklySummaries(1, day(2024, 1, 1), day(2024, 1, 14))
	require.NoError(t, err)
	require.Len(t, weeks, 1)

	wk := weeks[0]
	assert.Equal(t, "2024-01-01", wk.WeekStart)
	assert.Equal(t, 2, wk.ActiveDays)
	assert.Equal(t, 1, wk.RestDays)
	assert.Equal(t, 2, wk.StreakDays)
	assert.Equal(t, 83, wk.AvgCaloriesCompletion) // round(mean(100, 50, 100))
	assert.Equal(t, 50, wk.AvgExerciseCompletion) // round(mean(50, 100, 0))
}

// A week with zero records inside the range must be omitted, not emitted
// zero-filled.
func TestWeeklySummaries_EmptyWeekOmitted(t *testing.T) {
	store := newFakeGoalStore()
	svc := NewReportService(store)

	seedRecord(t, store, day(2024, 1, 3), models.AchievementRecord{
		CaloriesGoal: 2000, CaloriesAchieved: 1500,
	})
	// Nothing in the week of Jan 8; one record in the week of Jan 15.
	seedRecord(t, store, day(2024, 1, 16), models.AchievementRecord{
		CaloriesGoal: 2000, CaloriesAchieved: 2000,
	})

	weeks, err := svc.WeeklySummaries(1, day(2024, 1, 1), day(2024, 1, 21))
	require.NoError(t, err)

	require.Len(t, weeks, 2)
	assert.Equal(t, "2024-01-01", weeks[0].WeekStart)
	assert.Equal(t, "2024-01-15", weeks[1].WeekStart)
}

func TestWeeklySummaries_EmptyRange(t *testing.T) {
	svc := NewReportService(newFakeGoalStore())
	weeks, err := svc.WeeklySummaries(1, day(2024, 1, 1), day(2024, 1, 31))
	require.NoError(t, err)
	assert.Empty(t, weeks)
}

func TestWeeklySummaries_OrderedByWeekStart(t *testing.T) {
	store := newFakeGoalStore()
	svc := NewReportService(store)

	for _, d := range []time.Time{
		day(2024, 1, 20), day(2024, 1, 5), day(2024, 1, 10),
	} {
		seedRecord(t, store, d, models.AchievementRecord{CaloriesGoal: 2000, CaloriesAchieved: 1000})
	}

	weeks, err := svc.WeeklySummaries(1, day(2024, 1, 1), day(2024, 1, 31))
	require.NoError(t, err)
	require.Len(t, weeks, 3)
	assert.Equal(t, "2024-01-01", weeks[0].WeekStart)
	assert.Equal(t, "2024-01-08", weeks[1].WeekStart)
	assert.Equal(t, "2024-01-15", weeks[2].WeekStart)
}
