package routes

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/interfaces/api/handlers"
	"menu-api/interfaces/api/middleware"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers, jwtSecret string) {
	SetupHealthRoutes(app)

	// menu ลูกค้าเป็น public — อยู่นอก /api/v1
	app.Get("/menu/:subdomain", h.MenuHandler.GetMenu)

	api := app.Group("/api/v1")
	protected := middleware.Protected(jwtSecret)

	SetupAuthRoutes(api, h, protected)
	SetupCommerceRoutes(api, h, protected)
	SetupCategoryRoutes(api, h, protected)
	SetupProductRoutes(api, h, protected)
	SetupOptionRoutes(api, h, protected)
	SetupTagRoutes(api, h, protected)
}
