package models

import "time"

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

func ValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

type Habit struct {
	ID          string `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Frequency   string `gorm:"not null;default:daily"`
	// StreakCount and LastCompleted are denormalized for list display;
	// derived statistics always recompute from completion logs.
	StreakCount   int    `gorm:"not null;default:0"`
	LastCompleted string `gorm:"not null;default:''"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
