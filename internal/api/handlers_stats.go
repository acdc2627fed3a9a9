package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) StatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.statsService.BuildOverview(user.ID, time.Now().In(handler.location))
	if err != nil {
		log.Printf("stats overview: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load stats")
	}

	return c.JSON(fiber.Map{
		"habit_streaks": toHabitStreakResponses(overview.HabitStreaks),
		"global": globalStatsResponse{
			Total:      overview.Global.Total,
			BestStreak: overview.Global.BestStreak,
		},
		"weekly_activity": overview.WeeklyActivity,
	})
}
