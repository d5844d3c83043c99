package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
)

func SetupOptionRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	options := api.Group("/options", protected)

	options.Get("/:id", h.OptionHandler.Get)
	options.Put("/:id", h.OptionHandler.Update)
	options.Delete("/:id", h.OptionHandler.Delete)

	options.Post("/items/:id/image", h.OptionHandler.UploadItemImage)
}
