package services

import (
	"errors"
	"math"
	"time"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// AchievementService is the ledger of per-day goal-vs-achieved records.
type AchievementService struct {
	store GoalStore
	goals *GoalService
}

func NewAchievementService(store GoalStore, goals *GoalService) *AchievementService {
	return &AchievementService{store: store, goals: goals}
}

// GetOrCreate returns the day's record, seeding it from the resolved
// adjusted goals when absent. Idempotent: an existing record is returned
// as-is, its goal snapshot untouched even if the base GoalSet has changed
// since it was created.
func (s *AchievementService) GetOrCreate(userID uint, date time.Time) (*models.AchievementRecord, error) {
	day := models.DayKey(date)
	rec, err := s.store.GetAchievement(userID, day)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	adj, err := s.goals.ResolveGoalsForDate(userID, day)
	if err != nil {
		return nil, err
	}
	seed := &models.AchievementRecord{
		UserID:       userID,
		Date:         day,
		CaloriesGoal: adj.DailyCalories,
		ProteinGoal:  adj.DailyProtein,
		CarbsGoal:    adj.DailyCarbs,
		FatGoal:      adj.DailyFat,
		ExerciseGoal: adj.DailyExerciseMinutes,
		WaterGoal:    adj.DailyWaterGlasses,
		IsRestDay:    adj.IsRestDay,
	}
	if err := s.store.CreateAchievement(seed); err != nil {
		return nil, err
	}
	// Re-read rather than returning seed: a concurrent seeder may have won
	// the insert.
	return s.store.GetAchievement(userID, day)
}

// RecordAchievement upserts the day's achieved values and streak flag.
// Goal and rest-day columns are never written. Calling it twice with the
// same payload leaves the same stored state as calling it once.
func (s *AchievementService) RecordAchievement(userID uint, date time.Time, upd AchievedUpdate) (*models.AchievementRecord, error) {
	for _, v := range []*float64{upd.Calories, upd.Protein, upd.Carbs, upd.Fat, upd.Exercise, upd.Water} {
		if v != nil && *v < 0 {
			return nil, &ValidationError{Field: "achieved", Reason: "must not be negative"}
		}
	}
	return s.store.UpdateAchieved(userID, models.DayKey(date), upd)
}

// Adherence is the capped completion percentage for one metric:
// min(achieved/goal*100, 100) when the goal is positive, else 0. Capping
// keeps one huge day from skewing weekly averages.
func Adherence(achieved, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := achieved / goal * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// ProgressStats summarizes a list of achievement records for the progress
// endpoint.
type ProgressStats struct {
	Days                  int     `json:"days"`
	RestDays              int     `json:"rest_days"`
	StreakDays            int     `json:"streak_days"`
	AvgCaloriesCompletion float64 `json:"avg_calories_completion"` // 0-100
	AvgExerciseCompletion float64 `json:"avg_exercise_completion"` // 0-100
}

// ListProgress returns the records in [from, to] plus summary stats.
// Days without a record are absent, not zero-filled — missing data must
// read as "no data", not 0% adherence.
func (s *AchievementService) ListProgress(userID uint, from, to time.Time) ([]models.AchievementRecord, *ProgressStats, error) {
	recs, err := s.store.ListAchievements(userID, from, to)
	if err != nil {
		return nil, nil, err
	}
	if recs == nil {
		// Keep the JSON shape stable: an empty range serializes as [].
		recs = []models.AchievementRecord{}
	}
	stats := &ProgressStats{Days: len(recs)}
	var calSum, exSum float64
	for _, r := range recs {
		if r.IsRestDay {
			stats.RestDays++
		}
		if r.StreakMaintained {
			stats.StreakDays++
		}
		calSum += Adherence(r.CaloriesAchieved, r.CaloriesGoal)
		exSum += Adherence(r.ExerciseAchieved, r.ExerciseGoal)
	}
	if len(recs) > 0 {
		stats.AvgCaloriesCompletion = math.Round(calSum / float64(len(recs)))
		stats.AvgExerciseCompletion = math.Round(exSum / float64(len(recs)))
	}
	return recs, stats, nil
}
