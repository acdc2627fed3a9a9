package api

import (
	"github.com/embersapp/embers/internal/models"
	"github.com/gofiber/fiber/v2"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}
