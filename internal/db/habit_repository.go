package db

import (
	"github.com/embersapp/embers/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

func (repo *HabitRepository) FindByIDForUser(habitID string, userID uint) (models.Habit, bool, error) {
	habit := models.Habit{}
	result := repo.database.
		Where("id = ? AND user_id = ?", habitID, userID).
		Limit(1).
		Find(&habit)
	if result.Error != nil {
		return models.Habit{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (repo *HabitRepository) Create(habit *models.Habit) error {
	return repo.database.Create(habit).Error
}

// CreditCompletion writes the counter update and the log entry as one unit,
// so a crash between the two cannot leave the counter unbacked by a log row.
func (repo *HabitRepository) CreditCompletion(habit *models.Habit, entry *models.CompletionLog) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Habit{}).Where("id = ? AND user_id = ?", habit.ID, habit.UserID).Updates(map[string]any{
			"streak_count":   habit.StreakCount,
			"last_completed": habit.LastCompleted,
		}).Error; err != nil {
			return err
		}
		return tx.Create(entry).Error
	})
}

// DeleteCascade removes the habit together with its completion logs.
func (repo *HabitRepository) DeleteCascade(habitID string, userID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ? AND user_id = ?", habitID, userID).Delete(&models.CompletionLog{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&models.Habit{}).Error
	})
}
