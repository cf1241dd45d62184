package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/IvanPareja1/profitness-app-sub003/models"
)

// fakeGoalStore is an in-memory GoalStore with the same observable
// semantics as the gorm implementation: ErrNotFound on absent rows,
// first-writer-wins inserts, column-scoped achieved updates.
type fakeGoalStore struct {
	mu           sync.Mutex
	goals        map[uint]models.GoalSet
	achievements map[string]models.AchievementRecord
	failWith     error // when set, every call fails with this error
}

func newFakeGoalStore() *fakeGoalStore {
	return &fakeGoalStore{
		goals:        make(map[uint]models.GoalSet),
		achievements: make(map[string]models.AchievementRecord),
	}
}

func achievementKey(userID uint, date time.Time) string {
	return fmt.Sprintf("%d|%s", userID, models.DayKey(date).Format("2006-01-02"))
}

func achievedEmpty(upd AchievedUpdate) bool {
	return upd.Calories == nil && upd.Protein == nil && upd.Carbs == nil &&
		upd.Fat == nil && upd.Exercise == nil && upd.Water == nil && upd.Streak == nil
}

func (f *fakeGoalStore) GetGoalSet(userID uint) (*models.GoalSet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	g, ok := f.goals[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := g
	return &out, nil
}

func (f *fakeGoalStore) SaveGoalSet(goal *models.GoalSet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.goals[goal.UserID] = *goal
	return nil
}

func (f *fakeGoalStore) GetAchievement(userID uint, date time.Time) (*models.AchievementRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	rec, ok := f.achievements[achievementKey(userID, date)]
	if !ok {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}

func (f *fakeGoalStore) CreateAchievement(rec *models.AchievementRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	key := achievementKey(rec.UserID, rec.Date)
	if _, exists := f.achievements[key]; exists {
		return nil // conflict: keep the first row
	}
	rec.Date = models.DayKey(rec.Date)
	f.achievements[key] = *rec
	return nil
}

func (f *fakeGoalStore) UpdateAchieved(userID uint, date time.Time, upd AchievedUpdate) (*models.AchievementRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	key := achievementKey(userID, date)
	rec, ok := f.achievements[key]
	if !ok {
		// Mirror the gorm store: an empty update writes nothing, so the
		// final read reports the row as absent.
		if achievedEmpty(upd) {
			return nil, ErrNotFound
		}
		rec = models.AchievementRecord{UserID: userID, Date: models.DayKey(date)}
	}
	applyAchieved(&rec, upd)
	f.achievements[key] = rec
	out := rec
	return &out, nil
}

func (f *fakeGoalStore) ListAchievements(userID uint, from, to time.Time) ([]models.AchievementRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	fromDay, toDay := models.DayKey(from), models.DayKey(to)
	var out []models.AchievementRecord
	for _, rec := range f.achievements {
		if rec.UserID != userID || rec.Date.Before(fromDay) || rec.Date.After(toDay) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
