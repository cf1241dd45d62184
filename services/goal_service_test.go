package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// 2024-01-01 was a Monday, so 2024-01-07 is a Sunday and 2024-01-09 a Tuesday.
var (
	aSunday  = time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	aTuesday = time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
)

func baseGoalSet() *models.GoalSet {
	g := &models.GoalSet{
		UserID:               1,
		DailyCalories:        2600,
		DailyProtein:         160,
		DailyCarbs:           290,
		DailyFat:             85,
		DailyExerciseMinutes: 40,
		DailyWaterGlasses:    8,
		WeeklyExerciseDays:   5,
		AutoAdjustRestDays:   true,
	}
	g.SetRestDays([]string{"sunday"})
	return g
}

func TestAdjustForDate_RestDayReduction(t *testing.T) {
	adj := AdjustForDate(baseGoalSet(), aSunday)

	assert.True(t, adj.IsRestDay)
	assert.Equal(t, 2340.0, adj.DailyCalories)       // round(2600 * 0.9)
	assert.Equal(t, 12.0, adj.DailyExerciseMinutes)  // round(40 * 0.3)
	assert.Equal(t, 160.0, adj.DailyProtein)         // untouched
	assert.Equal(t, 290.0, adj.DailyCarbs)
	assert.Equal(t, 85.0, adj.DailyFat)
	assert.Equal(t, 8.0, adj.DailyWaterGlasses)
}

func TestAdjustForDate_NonRestDayPassthrough(t *testing.T) {
	goal := baseGoalSet()
	adj := AdjustForDate(goal, aTuesday)

	assert.False(t, adj.IsRestDay)
	assert.Equal(t, goal.DailyCalories, adj.DailyCalories)
	assert.Equal(t, goal.DailyExerciseMinutes, adj.DailyExerciseMinutes)
	assert.Equal(t, goal.DailyProtein, adj.DailyProtein)
}

func TestAdjustForDate_AutoAdjustDisabled(t *testing.T) {
	goal := baseGoalSet()
	goal.AutoAdjustRestDays = false

	adj := AdjustForDate(goal, aSunday)

	assert.True(t, adj.IsRestDay)
	assert.Equal(t, 2600.0, adj.DailyCalories)
	assert.Equal(t, 40.0, adj.DailyExerciseMinutes)
}

func TestAdjustForDate_Deterministic(t *testing.T) {
	goal := baseGoalSet()
	first := AdjustForDate(goal, aSunday)
	second := AdjustForDate(goal, aSunday)
	assert.Equal(t, first, second)
}

func TestResolveGoalsForDate_NotFoundWithoutGoalSet(t *testing.T) {
	svc := NewGoalService(newFakeGoalStore())
	_, err := svc.ResolveGoalsForDate(42, aSunday)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveGoalsForDate_UsesStoredGoals(t *testing.T) {
	store := newFakeGoalStore()
	require.NoError(t, store.SaveGoalSet(baseGoalSet()))
	svc := NewGoalService(store)

	adj, err := svc.ResolveGoalsForDate(1, aSunday)
	require.NoError(t, err)
	assert.True(t, adj.IsRestDay)
	assert.Equal(t, 2340.0, adj.DailyCalories)
}

func TestUpsertGoalSet_RejectsNegativeTargets(t *testing.T) {
	svc := NewGoalService(newFakeGoalStore())
	goal := baseGoalSet()
	goal.DailyProtein = -1

	_, err := svc.UpsertGoalSet(1, goal)
	assert.True(t, IsValidation(err))
}

func TestUpsertGoalSet_RoundTrips(t *testing.T) {
	store := newFakeGoalStore()
	svc := NewGoalService(store)

	_, err := svc.UpsertGoalSet(9, baseGoalSet())
	require.NoError(t, err)

	got, err := svc.GetGoalSet(9)
	require.NoError(t, err)
	assert.Equal(t, uint(9), got.UserID)
	assert.Equal(t, 2600.0, got.DailyCalories)
	assert.True(t, got.IsRestDay(aSunday))
	assert.False(t, got.IsRestDay(aTuesday))
}
