package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	Habits      *HabitRepository
	Completions *CompletionLogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		Habits:      NewHabitRepository(database),
		Completions: NewCompletionLogRepository(database),
	}
}
