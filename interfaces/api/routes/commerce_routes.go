package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
	"menu-api/interfaces/api/middleware"
)

func SetupCommerceRoutes(api fiber.Router, h *handlers.Handlers, protected fiber.Handler) {
	commerces := api.Group("/commerces", protected)

	// provisioning เป็นงานของ superuser
	commerces.Post("/", middleware.SuperuserOnly(), h.CommerceHandler.Create)
	commerces.Get("/", middleware.SuperuserOnly(), h.CommerceHandler.List)

	commerces.Get("/:id", h.CommerceHandler.Get)
	commerces.Put("/:id", h.CommerceHandler.Update)
	commerces.Delete("/:id", h.CommerceHandler.Delete)
	commerces.Post("/:id/logo", h.CommerceHandler.UploadLogo)
	commerces.Post("/:id/banner", h.CommerceHandler.UploadBanner)
}
