package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Post("/:id/complete", handler.CompleteHabit)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.StatsOverview)

	api.Get("/events", handler.AuthRequired, handler.EventStream)
}
