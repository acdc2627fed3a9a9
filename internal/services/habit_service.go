package services

import (
	"time"

	"github.com/embersapp/embers/internal/models"
	"github.com/google/uuid"
)

type HabitRepository interface {
	ListByUser(userID uint) ([]models.Habit, error)
	FindByIDForUser(habitID string, userID uint) (models.Habit, bool, error)
	Create(habit *models.Habit) error
	DeleteCascade(habitID string, userID uint) error
}

type HabitService struct {
	habits HabitRepository
}

func NewHabitService(habits HabitRepository) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) ListForUser(userID uint) ([]models.Habit, error) {
	return service.habits.ListByUser(userID)
}

func (service *HabitService) FindForUser(habitID string, userID uint) (models.Habit, error) {
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

// CreateHabit persists a new habit with a zero streak and no completion
// date, matching the record shape a fresh habit must start from.
func (service *HabitService) CreateHabit(userID uint, raw HabitInput, now time.Time) (models.Habit, error) {
	input, err := NormalizeHabitInput(raw)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		Frequency:     input.Frequency,
		StreakCount:   0,
		LastCompleted: "",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// DeleteHabit removes the habit and its completion logs together.
func (service *HabitService) DeleteHabit(habitID string, userID uint) error {
	if _, err := service.FindForUser(habitID, userID); err != nil {
		return err
	}
	return service.habits.DeleteCascade(habitID, userID)
}
