package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// GoalSet holds each user's base daily targets, one row per user.
// RestDays is persisted as a comma-separated list of lowercase weekday
// names ("sunday,wednesday"); use RestDaySet/SetRestDays rather than
// touching the column directly.
type GoalSet struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`

	DailyCalories        float64 `json:"daily_calories"`         // kcal
	DailyProtein         float64 `json:"daily_protein"`          // g
	DailyCarbs           float64 `json:"daily_carbs"`            // g
	DailyFat             float64 `json:"daily_fat"`              // g
	DailyExerciseMinutes float64 `json:"daily_exercise_minutes"` // minutes
	DailyWaterGlasses    float64 `json:"daily_water_glasses"`    // glasses
	WeeklyExerciseDays   int     `json:"weekly_exercise_days"`

	RestDays           string `json:"rest_days"` // CSV of weekday names
	AutoAdjustRestDays bool   `json:"auto_adjust_rest_days"`
}

// weekdayNames is the single source of truth for the persisted weekday
// spelling, indexed by time.Weekday (Sunday = 0).
var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName returns the persisted name for d, e.g. "sunday".
func WeekdayName(d time.Weekday) string { return weekdayNames[d] }

// ValidWeekdayName reports whether s is one of the seven persisted names.
func ValidWeekdayName(s string) bool {
	for _, n := range weekdayNames {
		if n == s {
			return true
		}
	}
	return false
}

// RestDaySet parses the RestDays column into a weekday set. Unknown or
// empty entries are skipped, so a malformed column degrades to "fewer rest
// days" rather than an error.
func (g *GoalSet) RestDaySet() map[time.Weekday]bool {
	set := make(map[time.Weekday]bool)
	for _, part := range strings.Split(g.RestDays, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		for d, n := range weekdayNames {
			if n == name {
				set[time.Weekday(d)] = true
			}
		}
	}
	return set
}

// SetRestDays stores the given weekday names, normalized to lowercase with
// duplicates removed, preserving caller order.
func (g *GoalSet) SetRestDays(names []string) {
	seen := make(map[string]bool)
	var kept []string
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" || seen[n] || !ValidWeekdayName(n) {
			continue
		}
		seen[n] = true
		kept = append(kept, n)
	}
	g.RestDays = strings.Join(kept, ",")
}

// IsRestDay reports whether the weekday of date is configured as a rest day.
func (g *GoalSet) IsRestDay(date time.Time) bool {
	return g.RestDaySet()[date.Weekday()]
}

// AdjustedGoalSet is the per-date view of a GoalSet. It is derived on every
// request and never persisted; resolving the same GoalSet and date twice
// must produce identical values.
type AdjustedGoalSet struct {
	DailyCalories        float64 `json:"daily_calories"`
	DailyProtein         float64 `json:"daily_protein"`
	DailyCarbs           float64 `json:"daily_carbs"`
	DailyFat             float64 `json:"daily_fat"`
	DailyExerciseMinutes float64 `json:"daily_exercise_minutes"`
	DailyWaterGlasses    float64 `json:"daily_water_glasses"`
	WeeklyExerciseDays   int     `json:"weekly_exercise_days"`
	IsRestDay            bool    `json:"is_rest_day"`
}
