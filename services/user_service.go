package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// UserService handles the metabolic profile. Saving a complete profile for
// the first time seeds the user's GoalSet from the calculator defaults.
type UserService struct {
	db    *gorm.DB
	goals *GoalService
}

func NewUserService(db *gorm.DB, goals *GoalService) *UserService {
	return &UserService{db: db, goals: goals}
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get user", Err: err}
	}
	return &user, nil
}

// ProfileUpdate carries the mutable profile fields; nil means "leave as is".
type ProfileUpdate struct {
	FullName      *string
	WeightKG      *float64
	HeightCM      *float64
	Age           *int
	Sex           *string
	ActivityLevel *string
	GoalIntent    *string
}

// UpdateProfile applies the update and, when the profile has just become
// complete and no GoalSet exists yet, creates one from the calculator.
// Existing goal sets are left alone: editing your weight later must not
// silently rewrite targets the user may have customized.
func (s *UserService) UpdateProfile(userID uint, upd ProfileUpdate) (*models.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if upd.WeightKG != nil && *upd.WeightKG <= 0 {
		return nil, &ValidationError{Field: "weight_kg", Reason: "must be positive"}
	}
	if upd.HeightCM != nil && *upd.HeightCM <= 0 {
		return nil, &ValidationError{Field: "height_cm", Reason: "must be positive"}
	}
	if upd.Age != nil && (*upd.Age <= 0 || *upd.Age > 130) {
		return nil, &ValidationError{Field: "age", Reason: "must be between 1 and 130"}
	}
	if upd.Sex != nil && *upd.Sex != "male" && *upd.Sex != "female" {
		return nil, &ValidationError{Field: "sex", Reason: "must be male or female"}
	}
	if upd.ActivityLevel != nil && !ValidActivityLevel(*upd.ActivityLevel) {
		return nil, &ValidationError{Field: "activity_level", Reason: "unknown activity level"}
	}
	if upd.GoalIntent != nil {
		switch *upd.GoalIntent {
		case models.IntentMaintain, models.IntentLose, models.IntentGain:
		default:
			return nil, &ValidationError{Field: "goal_intent", Reason: "must be maintain, lose or gain"}
		}
	}

	if upd.FullName != nil {
		user.FullName = *upd.FullName
	}
	if upd.WeightKG != nil {
		user.WeightKG = upd.WeightKG
	}
	if upd.HeightCM != nil {
		user.HeightCM = upd.HeightCM
	}
	if upd.Age != nil {
		user.Age = upd.Age
	}
	if upd.Sex != nil {
		user.Sex = upd.Sex
	}
	if upd.ActivityLevel != nil {
		user.ActivityLevel = upd.ActivityLevel
	}
	if upd.GoalIntent != nil {
		user.GoalIntent = upd.GoalIntent
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, &StorageError{Op: "save user", Err: err}
	}

	if user.ProfileComplete() {
		if _, err := s.goals.GetGoalSet(user.ID); errors.Is(err, ErrNotFound) {
			if _, err := s.goals.UpsertGoalSet(user.ID, DefaultGoalSet(user)); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
	}
	return user, nil
}
