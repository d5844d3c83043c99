package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
)

func SetupCategoryRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	categories := api.Group("/categories", protected)

	categories.Get("/", h.CategoryHandler.List)
	categories.Post("/", h.CategoryHandler.Create)
	// reorder ต้องมาก่อน /:id ไม่งั้น fiber จับเป็น id
	categories.Put("/reorder", h.CategoryHandler.Reorder)
	categories.Put("/:id", h.CategoryHandler.Update)
	categories.Delete("/:id", h.CategoryHandler.Delete)
}
