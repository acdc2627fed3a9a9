package models

import "time"

// CompletionLog is an immutable record of one credited habit completion.
// Day repeats the calendar date of CompletedAt; the unique index on
// (habit_id, day) is what makes "once per day" hold under concurrent writes.
type CompletionLog struct {
	ID          string    `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	HabitID     string    `gorm:"not null;uniqueIndex:uidx_habit_day"`
	HabitTitle  string    `gorm:"not null"`
	CompletedAt time.Time `gorm:"not null;index"`
	Day         string    `gorm:"not null;uniqueIndex:uidx_habit_day"`
	CreatedAt   time.Time
}
