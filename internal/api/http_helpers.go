package api

import (
	"time"

	"github.com/embersapp/embers/internal/models"
	"github.com/embersapp/embers/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

type userResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type habitResponse struct {
	ID            string    `json:"id"`
	UserID        uint      `json:"user_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Frequency     string    `json:"frequency"`
	StreakCount   int       `json:"streak_count"`
	LastCompleted string    `json:"last_completed"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type habitStreakResponse struct {
	HabitID          string `json:"habit_id"`
	Title            string `json:"title"`
	CurrentStreak    int    `json:"current_streak"`
	TotalCompletions int    `json:"total_completions"`
}

type globalStatsResponse struct {
	Total      int64 `json:"total"`
	BestStreak int   `json:"best_streak"`
}

func toUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func toHabitResponse(habit models.Habit) habitResponse {
	return habitResponse{
		ID:            habit.ID,
		UserID:        habit.UserID,
		Title:         habit.Title,
		Description:   habit.Description,
		Frequency:     habit.Frequency,
		StreakCount:   habit.StreakCount,
		LastCompleted: habit.LastCompleted,
		CreatedAt:     habit.CreatedAt,
		UpdatedAt:     habit.UpdatedAt,
	}
}

func toHabitResponses(habits []models.Habit) []habitResponse {
	responses := make([]habitResponse, 0, len(habits))
	for _, habit := range habits {
		responses = append(responses, toHabitResponse(habit))
	}
	return responses
}

func toHabitStreakResponses(streaks []services.HabitStreak) []habitStreakResponse {
	responses := make([]habitStreakResponse, 0, len(streaks))
	for _, streak := range streaks {
		responses = append(responses, habitStreakResponse{
			HabitID:          streak.HabitID,
			Title:            streak.Title,
			CurrentStreak:    streak.CurrentStreak,
			TotalCompletions: streak.TotalCompletions,
		})
	}
	return responses
}
