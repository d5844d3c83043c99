package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
)

func SetupTagRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	tags := api.Group("/tags", protected)

	tags.Get("/", h.TagHandler.List)
	tags.Post("/", h.TagHandler.Create)
	tags.Put("/:id", h.TagHandler.Update)
	tags.Delete("/:id", h.TagHandler.Delete)
	tags.Post("/:id/assign", h.TagHandler.Assign)
	tags.Post("/:id/unassign", h.TagHandler.Unassign)
}
