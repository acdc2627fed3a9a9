package api

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/embersapp/embers/internal/events"
	"github.com/embersapp/embers/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CompleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID := strings.TrimSpace(c.Params("id"))
	if habitID == "" {
		return apiError(c, fiber.StatusBadRequest, "habit id required")
	}

	habit, err := handler.completionService.Complete(habitID, user.ID, time.Now().In(handler.location))
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, "habit not found")
	case errors.Is(err, services.ErrAlreadyCompletedToday):
		return apiError(c, fiber.StatusConflict, "already completed today")
	case err != nil:
		log.Printf("complete habit %s: %v", habitID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to complete habit")
	}

	handler.hub.Publish(user.ID, events.Change{
		Collection: events.CollectionHabits,
		Event:      events.EventUpdate,
		RecordID:   habit.ID,
	})

	return c.JSON(fiber.Map{"habit": toHabitResponse(habit)})
}
