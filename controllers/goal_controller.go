package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IvanPareja1/profitness-app-sub003/models"
	"github.com/IvanPareja1/profitness-app-sub003/services"
)

type GoalController struct {
	goals        *services.GoalService
	achievements *services.AchievementService
	reports      *services.ReportService
	hub          *services.RealtimeHub
}

func NewGoalController(
	goals *services.GoalService,
	achievements *services.AchievementService,
	reports *services.ReportService,
	hub *services.RealtimeHub,
) *GoalController {
	return &GoalController{goals: goals, achievements: achievements, reports: reports, hub: hub}
}

// GetTodayGoals returns the adjusted goals for the requested day (default:
// today), the day's achievement record (seeded on first request) and the
// unadjusted base goals for reference.
func (ctl *GoalController) GetTodayGoals(c *gin.Context) {
	userID := currentUserID(c)
	date, ok := parseDateParam(c, "date")
	if !ok {
		return
	}

	adjusted, err := ctl.goals.ResolveGoalsForDate(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	achievement, err := ctl.achievements.GetOrCreate(userID, date)
	if err != nil {
		respondError(c, err)
		return
	}
	original, err := ctl.goals.GetGoalSet(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":           date.Format(dateLayout),
		"goals":          adjusted,
		"achievement":    achievement,
		"original_goals": original,
	})
}

type GoalsInput struct {
	DailyCalories        float64  `json:"daily_calories"`
	DailyProtein         float64  `json:"daily_protein"`
	DailyCarbs           float64  `json:"daily_carbs"`
	DailyFat             float64  `json:"daily_fat"`
	DailyExerciseMinutes float64  `json:"daily_exercise_minutes"`
	DailyWaterGlasses    float64  `json:"daily_water_glasses"`
	WeeklyExerciseDays   int      `json:"weekly_exercise_days"`
	RestDays             []string `json:"rest_days"`
	AutoAdjustRestDays   bool     `json:"auto_adjust_rest_days"`
}

// UpdateGoals replaces the base goal set wholesale. Existing achievement
// records keep the goal snapshot they were created with.
func (ctl *GoalController) UpdateGoals(c *gin.Context) {
	var input GoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, name := range input.RestDays {
		if !models.ValidWeekdayName(name) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown weekday: " + name})
			return
		}
	}

	goal := &models.GoalSet{
		DailyCalories:        input.DailyCalories,
		DailyProtein:         input.DailyProtein,
		DailyCarbs:           input.DailyCarbs,
		DailyFat:             input.DailyFat,
		DailyExerciseMinutes: input.DailyExerciseMinutes,
		DailyWaterGlasses:    input.DailyWaterGlasses,
		WeeklyExerciseDays:   input.WeeklyExerciseDays,
		AutoAdjustRestDays:   input.AutoAdjustRestDays,
	}
	goal.SetRestDays(input.RestDays)

	updated, err := ctl.goals.UpsertGoalSet(currentUserID(c), goal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": updated})
}

type AchievementInput struct {
	Date             string   `json:"date"`
	CaloriesAchieved *float64 `json:"calories_achieved"`
	ProteinAchieved  *float64 `json:"protein_achieved"`
	CarbsAchieved    *float64 `json:"carbs_achieved"`
	FatAchieved      *float64 `json:"fat_achieved"`
	ExerciseAchieved *float64 `json:"exercise_achieved"`
	WaterAchieved    *float64 `json:"water_achieved"`
	StreakMaintained *bool    `json:"streak_maintained"`
}

// UpdateAchievement upserts the day's achieved values. Omitted fields are
// left untouched so independent loggers can write their own columns
// without clobbering each other.
func (ctl *GoalController) UpdateAchievement(c *gin.Context) {
	var input AchievementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := currentUserID(c)
	date := models.DayKey(timeNowUTC())
	if input.Date != "" {
		parsed, err := parseDateString(input.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: use YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	// Seed the record first so its goal snapshot reflects the adjusted
	// goals; without a GoalSet the upsert still lands with zero goals.
	if _, err := ctl.achievements.GetOrCreate(userID, date); err != nil {
		if !isNotFound(err) {
			respondError(c, err)
			return
		}
	}

	rec, err := ctl.achievements.RecordAchievement(userID, date, services.AchievedUpdate{
		Calories: input.CaloriesAchieved,
		Protein:  input.ProteinAchieved,
		Carbs:    input.CarbsAchieved,
		Fat:      input.FatAchieved,
		Exercise: input.ExerciseAchieved,
		Water:    input.WaterAchieved,
		Streak:   input.StreakMaintained,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.hub.BroadcastAchievement(userID, rec)
	c.JSON(http.StatusOK, gin.H{"achievement": rec})
}

// GetProgress lists achievement records in a date range with summary stats.
func (ctl *GoalController) GetProgress(c *gin.Context) {
	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	recs, stats, err := ctl.achievements.ListProgress(currentUserID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"achievements": recs, "stats": stats})
}

// GetWeeklyStats returns Monday-aligned week summaries for a date range.
func (ctl *GoalController) GetWeeklyStats(c *gin.Context) {
	from, to, ok := parseRangeParams(c)
	if !ok {
		return
	}

	weeks, err := ctl.reports.WeeklySummaries(currentUserID(c), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}
