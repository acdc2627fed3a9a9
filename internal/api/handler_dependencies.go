package api

import (
	"github.com/embersapp/embers/internal/db"
	"github.com/embersapp/embers/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.habitService = services.NewHabitService(handler.repositories.Habits)
	handler.completionService = services.NewCompletionService(handler.repositories.Habits, handler.repositories.Completions, handler.location)
	handler.statsService = services.NewStatsService(handler.repositories.Habits, handler.repositories.Completions, handler.location)
	return handler
}
