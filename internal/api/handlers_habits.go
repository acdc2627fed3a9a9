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

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habits, err := handler.habitService.ListForUser(user.ID)
	if err != nil {
		log.Printf("list habits: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to load habits")
	}
	return c.JSON(fiber.Map{"habits": toHabitResponses(habits)})
}

func (handler *Handler) CreateHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := habitInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	habit, err := handler.habitService.CreateHabit(user.ID, services.HabitInput{
		Title:       input.Title,
		Description: input.Description,
		Frequency:   input.Frequency,
	}, time.Now().In(handler.location))
	switch {
	case errors.Is(err, services.ErrHabitTitleRequired):
		return apiError(c, fiber.StatusBadRequest, "habit title required")
	case errors.Is(err, services.ErrHabitFrequencyInvalid):
		return apiError(c, fiber.StatusBadRequest, "habit frequency invalid")
	case err != nil:
		log.Printf("create habit: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to create habit")
	}

	handler.hub.Publish(user.ID, events.Change{
		Collection: events.CollectionHabits,
		Event:      events.EventCreate,
		RecordID:   habit.ID,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"habit": toHabitResponse(habit)})
}

func (handler *Handler) DeleteHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	habitID := strings.TrimSpace(c.Params("id"))
	if habitID == "" {
		return apiError(c, fiber.StatusBadRequest, "habit id required")
	}

	err := handler.habitService.DeleteHabit(habitID, user.ID)
	switch {
	case errors.Is(err, services.ErrHabitNotFound):
		return apiError(c, fiber.StatusNotFound, "habit not found")
	case err != nil:
		log.Printf("delete habit %s: %v", habitID, err)
		return apiError(c, fiber.StatusInternalServerError, "failed to delete habit")
	}

	handler.hub.Publish(user.ID, events.Change{
		Collection: events.CollectionHabits,
		Event:      events.EventDelete,
		RecordID:   habitID,
	})

	return c.JSON(fiber.Map{"ok": true})
}
