package models

import (
	"time"

	"gorm.io/gorm"
)

// AchievementRecord reconciles one user's adjusted goals against what they
// actually logged on one calendar day. The *Goal and IsRestDay columns are a
// snapshot taken when the row is created and are never rewritten — changing
// the base GoalSet later must not rewrite history. Only the *Achieved
// columns and StreakMaintained are updatable.
type AchievementRecord struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_achievement_user_date;not null" json:"user_id"`
	Date   time.Time `gorm:"uniqueIndex:idx_achievement_user_date;not null" json:"date"`

	CaloriesGoal float64 `json:"calories_goal"`
	ProteinGoal  float64 `json:"protein_goal"`
	CarbsGoal    float64 `json:"carbs_goal"`
	FatGoal      float64 `json:"fat_goal"`
	ExerciseGoal float64 `json:"exercise_goal"` // minutes
	WaterGoal    float64 `json:"water_goal"`    // glasses

	CaloriesAchieved float64 `json:"calories_achieved"`
	ProteinAchieved  float64 `json:"protein_achieved"`
	CarbsAchieved    float64 `json:"carbs_achieved"`
	FatAchieved      float64 `json:"fat_achieved"`
	ExerciseAchieved float64 `json:"exercise_achieved"`
	WaterAchieved    float64 `json:"water_achieved"`

	IsRestDay        bool `json:"is_rest_day"`
	StreakMaintained bool `json:"streak_maintained"`
}

// DayKey truncates t to its calendar day in UTC. Dates arrive from the
// client as YYYY-MM-DD and are treated as opaque calendar days; the server
// never converts between timezones.
func DayKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
