package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
)

func SetupProductRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	products := api.Group("/products", protected)

	products.Get("/", h.ProductHandler.List)
	products.Post("/", h.ProductHandler.Create)
	products.Get("/:id", h.ProductHandler.Get)
	products.Put("/:id", h.ProductHandler.Update)
	products.Delete("/:id", h.ProductHandler.Delete)
	products.Post("/:id/image", h.ProductHandler.UploadImage)

	// option เกิดใต้ product เสมอ
	products.Post("/:id/options", h.OptionHandler.Create)
}
