package services

import (
	"errors"
	"strings"
	"time"

	"github.com/embersapp/embers/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrHabitNotFound         = errors.New("habit not found")
	ErrAlreadyCompletedToday = errors.New("already completed today")
	ErrCompletionFailed      = errors.New("credit completion failed")
)

type CompletionHabitRepository interface {
	FindByIDForUser(habitID string, userID uint) (models.Habit, bool, error)
	CreditCompletion(habit *models.Habit, entry *models.CompletionLog) error
}

type CompletionLogReader interface {
	ExistsForHabitInRange(habitID string, userID uint, rangeStart time.Time, rangeEnd time.Time) (bool, error)
}

type CompletionService struct {
	habits   CompletionHabitRepository
	logs     CompletionLogReader
	location *time.Location
}

func NewCompletionService(habits CompletionHabitRepository, logs CompletionLogReader, location *time.Location) *CompletionService {
	if location == nil {
		location = time.UTC
	}
	return &CompletionService{
		habits:   habits,
		logs:     logs,
		location: location,
	}
}

// Complete credits at most one completion per habit per calendar day. The
// existence check is advisory; the unique index on (habit_id, day) is what
// holds under two racing sessions, and its violation maps to the same
// benign error.
func (service *CompletionService) Complete(habitID string, userID uint, now time.Time) (models.Habit, error) {
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}

	dayStart, dayEnd := DayRange(now, service.location)
	completedToday, err := service.logs.ExistsForHabitInRange(habit.ID, userID, dayStart, dayEnd)
	if err != nil {
		return models.Habit{}, err
	}
	if completedToday {
		return models.Habit{}, ErrAlreadyCompletedToday
	}

	habit.StreakCount++
	habit.LastCompleted = DayKey(now, service.location)

	entry := models.CompletionLog{
		ID:          uuid.NewString(),
		UserID:      userID,
		HabitID:     habit.ID,
		HabitTitle:  habit.Title,
		CompletedAt: now,
		Day:         habit.LastCompleted,
	}
	if err := service.habits.CreditCompletion(&habit, &entry); err != nil {
		if isDuplicateDayError(err) {
			return models.Habit{}, ErrAlreadyCompletedToday
		}
		return models.Habit{}, ErrCompletionFailed
	}

	return habit, nil
}

func isDuplicateDayError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
