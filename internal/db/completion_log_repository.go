package db

import (
	"time"

	"github.com/embersapp/embers/internal/models"
	"gorm.io/gorm"
)

type CompletionLogRepository struct {
	database *gorm.DB
}

func NewCompletionLogRepository(database *gorm.DB) *CompletionLogRepository {
	return &CompletionLogRepository{database: database}
}

func (repo *CompletionLogRepository) ListByUser(userID uint) ([]models.CompletionLog, error) {
	logs := make([]models.CompletionLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("completed_at DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *CompletionLogRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.CompletionLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *CompletionLogRepository) ExistsForHabitInRange(habitID string, userID uint, rangeStart time.Time, rangeEnd time.Time) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.CompletionLog{}).
		Where("habit_id = ? AND user_id = ? AND completed_at >= ? AND completed_at < ?", habitID, userID, rangeStart, rangeEnd).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *CompletionLogRepository) ListByUserRange(userID uint, rangeStart time.Time, rangeEnd time.Time) ([]models.CompletionLog, error) {
	logs := make([]models.CompletionLog, 0)
	if err := repo.database.
		Where("user_id = ? AND completed_at >= ? AND completed_at < ?", userID, rangeStart, rangeEnd).
		Order("completed_at ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
