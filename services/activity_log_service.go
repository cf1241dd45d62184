package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// ActivityLogService maintains the hydration/exercise running totals and
// mirrors them into the achievement ledger. It writes only the water and
// exercise achieved columns, so a nutrition logger updating calories on
// the same day can never be clobbered.
type ActivityLogService struct {
	db           *gorm.DB
	achievements *AchievementService
}

func NewActivityLogService(db *gorm.DB, achievements *AchievementService) *ActivityLogService {
	return &ActivityLogService{db: db, achievements: achievements}
}

// UpsertDailyActivity records the day's hydration (glasses) and exercise
// (minutes) totals, then pushes them into the day's AchievementRecord.
func (s *ActivityLogService) UpsertDailyActivity(userID uint, date time.Time, hydration, exercise float64) (*models.AchievementRecord, error) {
	if hydration < 0 {
		return nil, &ValidationError{Field: "hydration", Reason: "must not be negative"}
	}
	if exercise < 0 {
		return nil, &ValidationError{Field: "exercise", Reason: "must not be negative"}
	}

	day := models.DayKey(date)
	entry := models.DailyActivityLog{
		UserID:    userID,
		Date:      day,
		Hydration: hydration,
		Exercise:  exercise,
	}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day).
		Assign(entry).
		FirstOrCreate(&entry).Error
	if err != nil {
		return nil, &StorageError{Op: "upsert activity log", Err: err}
	}

	// Seed the day's record first so the goal snapshot is taken before the
	// achieved columns land.
	if _, err := s.achievements.GetOrCreate(userID, day); err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return s.achievements.RecordAchievement(userID, day, AchievedUpdate{
		Water:    &hydration,
		Exercise: &exercise,
	})
}

// GetDailyActivity returns the logged totals for the given day; zeros when
// nothing was logged.
func (s *ActivityLogService) GetDailyActivity(userID uint, date time.Time) (hydration, exercise float64, err error) {
	var entry models.DailyActivityLog
	err = s.db.
		Where("user_id = ? AND date = ?", userID, models.DayKey(date)).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, 0, nil
		}
		return 0, 0, &StorageError{Op: "get activity log", Err: err}
	}
	return entry.Hydration, entry.Exercise, nil
}
