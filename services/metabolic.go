package services

import (
	"math"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used
// for input validation in the profile controller.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// ValidActivityLevel reports whether level has a known TDEE multiplier.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// MacroTargets is the calculator output: a daily calorie target and its
// macro split, all rounded to whole units.
type MacroTargets struct {
	Calories float64 `json:"calories"` // kcal
	Protein  float64 `json:"protein"`  // g
	Carbs    float64 `json:"carbs"`    // g
	Fat      float64 `json:"fat"`      // g
}

// ComputeBMR estimates basal metabolic rate from weight (kg), height (cm),
// age (years) and sex. Non-positive inputs yield 0 rather than a negative
// or NaN estimate; callers are expected to validate before persisting.
func ComputeBMR(weightKG, heightCM float64, age int, sex string) float64 {
	if weightKG <= 0 || heightCM <= 0 || age <= 0 {
		return 0
	}
	if sex == "female" {
		return 447.593 + 9.247*weightKG + 3.098*heightCM - 4.330*float64(age)
	}
	return 88.362 + 13.397*weightKG + 4.799*heightCM - 5.677*float64(age)
}

// ComputeTDEE scales a BMR by the activity multiplier. Unrecognized levels
// fall back to sedentary (1.2).
func ComputeTDEE(bmr float64, activityLevel string) float64 {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		mult = 1.2
	}
	return bmr * mult
}

// ComputeMacros derives the daily calorie target and macro split for a
// profile. Pure: same inputs always give the same output. Floats are
// carried unrounded through BMR → TDEE → target → split; math.Round is
// applied once per output field.
//
// Calorie target: TDEE, minus 500 for a cutting goal, plus 300 for a
// gaining goal. Split: protein 25% of calories at 4 kcal/g, carbs 45% at
// 4 kcal/g, fat 30% at 9 kcal/g.
func ComputeMacros(weightKG, heightCM float64, age int, sex, activityLevel, goalIntent string) MacroTargets {
	bmr := ComputeBMR(weightKG, heightCM, age, sex)
	if bmr == 0 {
		return MacroTargets{}
	}
	calories := ComputeTDEE(bmr, activityLevel)
	switch goalIntent {
	case models.IntentLose:
		calories -= 500
	case models.IntentGain:
		calories += 300
	}
	if calories < 0 {
		calories = 0
	}
	return MacroTargets{
		Calories: math.Round(calories),
		Protein:  math.Round(calories * 0.25 / 4),
		Carbs:    math.Round(calories * 0.45 / 4),
		Fat:      math.Round(calories * 0.30 / 9),
	}
}

// DefaultGoalSet builds the GoalSet created on a user's first complete
// profile save: calculator-derived macro targets plus fixed starter values
// for exercise, water and rest days.
func DefaultGoalSet(user *models.User) *models.GoalSet {
	g := &models.GoalSet{
		UserID:               user.ID,
		DailyExerciseMinutes: 30,
		DailyWaterGlasses:    8,
		WeeklyExerciseDays:   5,
		AutoAdjustRestDays:   true,
	}
	g.SetRestDays([]string{"sunday"})
	if user.ProfileComplete() {
		t := ComputeMacros(*user.WeightKG, *user.HeightCM, *user.Age,
			*user.Sex, *user.ActivityLevel, *user.GoalIntent)
		g.DailyCalories = t.Calories
		g.DailyProtein = t.Protein
		g.DailyCarbs = t.Carbs
		g.DailyFat = t.Fat
	}
	return g
}
