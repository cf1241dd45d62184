package services

import (
	"math"
	"time"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// WeekSummary aggregates one Monday-aligned week of achievement records.
type WeekSummary struct {
	WeekStart             string `json:"week_start"` // Monday, YYYY-MM-DD
	ActiveDays            int    `json:"active_days"`
	RestDays              int    `json:"rest_days"`
	StreakDays            int    `json:"streak_days"`
	AvgCaloriesCompletion int    `json:"avg_calories_completion"` // 0-100
	AvgExerciseCompletion int    `json:"avg_exercise_completion"` // 0-100
}

// ReportService computes range reports over the achievement ledger.
type ReportService struct {
	store GoalStore
}

func NewReportService(store GoalStore) *ReportService { return &ReportService{store: store} }

// mondayOf returns the Monday on or before t at UTC midnight. AddDate is
// used so month/year boundaries stay well-formed.
func mondayOf(t time.Time) time.Time {
	day := models.DayKey(t)
	weekday := int(day.Weekday()) // 0=Sun
	if weekday == 0 {
		weekday = 7 // treat Sunday as day 7 so Mon=1..Sun=7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// WeeklySummaries buckets the user's records in [from, to] into
// Monday-aligned weeks, ordered by week start. Weeks with zero records in
// range are omitted rather than emitted zero-filled.
func (s *ReportService) WeeklySummaries(userID uint, from, to time.Time) ([]WeekSummary, error) {
	recs, err := s.store.ListAchievements(userID, from, to)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		days          int
		active, rest  int
		streak        int
		calSum, exSum float64
	}
	buckets := map[time.Time]*bucket{}
	var order []time.Time
	for _, r := range recs {
		wk := mondayOf(r.Date)
		b := buckets[wk]
		if b == nil {
			b = &bucket{}
			buckets[wk] = b
			order = append(order, wk)
		}
		b.days++
		if r.IsRestDay {
			b.rest++
		} else {
			b.active++
		}
		if r.StreakMaintained {
			b.streak++
		}
		b.calSum += Adherence(r.CaloriesAchieved, r.CaloriesGoal)
		b.exSum += Adherence(r.ExerciseAchieved, r.ExerciseGoal)
	}

	// Records arrive date-ascending from the store, so week starts were
	// appended in order already.
	out := make([]WeekSummary, 0, len(order))
	for _, wk := range order {
		b := buckets[wk]
		out = append(out, WeekSummary{
			WeekStart:             wk.Format("2006-01-02"),
			ActiveDays:            b.active,
			RestDays:              b.rest,
			StreakDays:            b.streak,
			AvgCaloriesCompletion: int(math.Round(b.calSum / float64(b.days))),
			AvgExerciseCompletion: int(math.Round(b.exSum / float64(b.days))),
		})
	}
	return out, nil
}
