package services

import (
	"math"
	"time"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// Rest-day scaling factors: on a configured rest day with auto-adjust
// enabled, the calorie target drops 10% and the exercise target drops 70%.
const (
	restDayCalorieFactor  = 0.9
	restDayExerciseFactor = 0.3
)

// GoalService owns the base GoalSet and resolves it into per-date adjusted
// targets.
type GoalService struct {
	store GoalStore
}

func NewGoalService(store GoalStore) *GoalService { return &GoalService{store: store} }

// GetGoalSet returns the user's base goals; ErrNotFound before the first
// profile save.
func (s *GoalService) GetGoalSet(userID uint) (*models.GoalSet, error) {
	return s.store.GetGoalSet(userID)
}

// UpsertGoalSet replaces the user's base goals wholesale. All numeric
// targets must be >= 0.
func (s *GoalService) UpsertGoalSet(userID uint, goal *models.GoalSet) (*models.GoalSet, error) {
	for _, t := range []struct {
		field string
		value float64
	}{
		{"daily_calories", goal.DailyCalories},
		{"daily_protein", goal.DailyProtein},
		{"daily_carbs", goal.DailyCarbs},
		{"daily_fat", goal.DailyFat},
		{"daily_exercise_minutes", goal.DailyExerciseMinutes},
		{"daily_water_glasses", goal.DailyWaterGlasses},
		{"weekly_exercise_days", float64(goal.WeeklyExerciseDays)},
	} {
		if t.value < 0 {
			return nil, &ValidationError{Field: t.field, Reason: "must not be negative"}
		}
	}
	goal.UserID = userID
	if err := s.store.SaveGoalSet(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// ResolveGoalsForDate computes the effective targets for one calendar day.
// Deterministic: no clock, no randomness — only the GoalSet and the
// weekday of date feed the result. Returns ErrNotFound when the user has
// no GoalSet yet; callers seed defaults via DefaultGoalSet first.
func (s *GoalService) ResolveGoalsForDate(userID uint, date time.Time) (*models.AdjustedGoalSet, error) {
	goal, err := s.store.GetGoalSet(userID)
	if err != nil {
		return nil, err
	}
	return AdjustForDate(goal, date), nil
}

// AdjustForDate is the pure core of the resolver, split out so it can be
// exercised without a store.
func AdjustForDate(goal *models.GoalSet, date time.Time) *models.AdjustedGoalSet {
	adj := &models.AdjustedGoalSet{
		DailyCalories:        goal.DailyCalories,
		DailyProtein:         goal.DailyProtein,
		DailyCarbs:           goal.DailyCarbs,
		DailyFat:             goal.DailyFat,
		DailyExerciseMinutes: goal.DailyExerciseMinutes,
		DailyWaterGlasses:    goal.DailyWaterGlasses,
		WeeklyExerciseDays:   goal.WeeklyExerciseDays,
		IsRestDay:            goal.IsRestDay(date),
	}
	if adj.IsRestDay && goal.AutoAdjustRestDays {
		adj.DailyCalories = math.Round(goal.DailyCalories * restDayCalorieFactor)
		adj.DailyExerciseMinutes = math.Round(goal.DailyExerciseMinutes * restDayExerciseFactor)
	}
	return adj
}
