package models

import (
	"gorm.io/gorm"
)

// Activity level and goal intent use the string values the mobile client
// sends; validation happens in the profile controller.
const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very_active"

	IntentMaintain = "maintain"
	IntentLose     = "lose"
	IntentGain     = "gain"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `json:"full_name"`

	// Metabolic profile. Pointers so an unfinished profile is representable;
	// goal defaults are only computed once all of these are set.
	WeightKG      *float64 `json:"weight_kg"`
	HeightCM      *float64 `json:"height_cm"`
	Age           *int     `json:"age"`
	Sex           *string  `json:"sex"`            // "male" | "female"
	ActivityLevel *string  `json:"activity_level"` // sedentary..very_active
	GoalIntent    *string  `json:"goal_intent"`    // maintain | lose | gain
}

// ProfileComplete reports whether every field the metabolic calculator
// needs has been provided.
func (u *User) ProfileComplete() bool {
	return u.WeightKG != nil && u.HeightCM != nil && u.Age != nil &&
		u.Sex != nil && u.ActivityLevel != nil && u.GoalIntent != nil
}
