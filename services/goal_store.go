package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// AchievedUpdate carries the updatable fields of an AchievementRecord.
// Everything else on the row (the goal snapshot, is_rest_day) is immutable
// after creation and deliberately absent here.
type AchievedUpdate struct {
	Calories *float64
	Protein  *float64
	Carbs    *float64
	Fat      *float64
	Exercise *float64
	Water    *float64
	Streak   *bool
}

// GoalStore is the storage port the goal engine works against. The gorm
// implementation below backs production; tests substitute an in-memory
// fake. Implementations map "row absent" to ErrNotFound and wrap other
// failures in StorageError.
type GoalStore interface {
	GetGoalSet(userID uint) (*models.GoalSet, error)
	SaveGoalSet(goal *models.GoalSet) error

	GetAchievement(userID uint, date time.Time) (*models.AchievementRecord, error)
	// CreateAchievement inserts a new row; if another writer got there
	// first the existing row wins and is returned via GetAchievement.
	CreateAchievement(rec *models.AchievementRecord) error
	// UpdateAchieved upserts only the supplied achieved/streak columns for
	// (userID, date) in a single statement, never touching goal columns.
	UpdateAchieved(userID uint, date time.Time, upd AchievedUpdate) (*models.AchievementRecord, error)
	ListAchievements(userID uint, from, to time.Time) ([]models.AchievementRecord, error)
}

// GormGoalStore implements GoalStore on a gorm DB handle.
type GormGoalStore struct {
	db *gorm.DB
}

func NewGormGoalStore(db *gorm.DB) *GormGoalStore { return &GormGoalStore{db: db} }

func (s *GormGoalStore) GetGoalSet(userID uint) (*models.GoalSet, error) {
	var goal models.GoalSet
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get goal set", Err: err}
	}
	return &goal, nil
}

func (s *GormGoalStore) SaveGoalSet(goal *models.GoalSet) error {
	var existing models.GoalSet
	err := s.db.Where("user_id = ?", goal.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := s.db.Create(goal).Error; err != nil {
			return &StorageError{Op: "create goal set", Err: err}
		}
		return nil
	}
	if err != nil {
		return &StorageError{Op: "save goal set", Err: err}
	}
	goal.ID = existing.ID
	goal.CreatedAt = existing.CreatedAt
	if err := s.db.Save(goal).Error; err != nil {
		return &StorageError{Op: "save goal set", Err: err}
	}
	return nil
}

func (s *GormGoalStore) GetAchievement(userID uint, date time.Time) (*models.AchievementRecord, error) {
	var rec models.AchievementRecord
	err := s.db.Where("user_id = ? AND date = ?", userID, models.DayKey(date)).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Op: "get achievement", Err: err}
	}
	return &rec, nil
}

func (s *GormGoalStore) CreateAchievement(rec *models.AchievementRecord) error {
	rec.Date = models.DayKey(rec.Date)
	// DoNothing on the (user_id, date) unique index: a concurrent seeder
	// keeps the first row instead of failing.
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoNothing: true,
	}).Create(rec).Error
	if err != nil {
		return &StorageError{Op: "create achievement", Err: err}
	}
	return nil
}

func (s *GormGoalStore) UpdateAchieved(userID uint, date time.Time, upd AchievedUpdate) (*models.AchievementRecord, error) {
	day := models.DayKey(date)
	cols := map[string]interface{}{}
	if upd.Calories != nil {
		cols["calories_achieved"] = *upd.Calories
	}
	if upd.Protein != nil {
		cols["protein_achieved"] = *upd.Protein
	}
	if upd.Carbs != nil {
		cols["carbs_achieved"] = *upd.Carbs
	}
	if upd.Fat != nil {
		cols["fat_achieved"] = *upd.Fat
	}
	if upd.Exercise != nil {
		cols["exercise_achieved"] = *upd.Exercise
	}
	if upd.Water != nil {
		cols["water_achieved"] = *upd.Water
	}
	if upd.Streak != nil {
		cols["streak_maintained"] = *upd.Streak
	}
	if len(cols) > 0 {
		// Column-scoped update in a single statement: one logger writing
		// water must not clobber another logger's concurrently written
		// exercise column.
		res := s.db.Model(&models.AchievementRecord{}).
			Where("user_id = ? AND date = ?", userID, day).
			Updates(cols)
		if res.Error != nil {
			return nil, &StorageError{Op: "update achievement", Err: res.Error}
		}
		if res.RowsAffected == 0 {
			// No row yet: insert one carrying just the achieved values.
			// Goal columns stay zero until (or unless) a getOrCreate ran.
			rec := &models.AchievementRecord{UserID: userID, Date: day}
			applyAchieved(rec, upd)
			if err := s.CreateAchievement(rec); err != nil {
				return nil, err
			}
			// Lost the race to a concurrent insert? Apply the columns to
			// whichever row won.
			if err := s.db.Model(&models.AchievementRecord{}).
				Where("user_id = ? AND date = ?", userID, day).
				Updates(cols).Error; err != nil {
				return nil, &StorageError{Op: "update achievement", Err: err}
			}
		}
	}
	return s.GetAchievement(userID, day)
}

func (s *GormGoalStore) ListAchievements(userID uint, from, to time.Time) ([]models.AchievementRecord, error) {
	var recs []models.AchievementRecord
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, models.DayKey(from), models.DayKey(to)).
		Order("date ASC").
		Find(&recs).Error
	if err != nil {
		return nil, &StorageError{Op: "list achievements", Err: err}
	}
	return recs, nil
}

func applyAchieved(rec *models.AchievementRecord, upd AchievedUpdate) {
	if upd.Calories != nil {
		rec.CaloriesAchieved = *upd.Calories
	}
	if upd.Protein != nil {
		rec.ProteinAchieved = *upd.Protein
	}
	if upd.Carbs != nil {
		rec.CarbsAchieved = *upd.Carbs
	}
	if upd.Fat != nil {
		rec.FatAchieved = *upd.Fat
	}
	if upd.Exercise != nil {
		rec.ExerciseAchieved = *upd.Exercise
	}
	if upd.Water != nil {
		rec.WaterAchieved = *upd.Water
	}
	if upd.Streak != nil {
		rec.StreakMaintained = *upd.Streak
	}
}
