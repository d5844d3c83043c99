package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/services"
	"menu-api/pkg/utils"
)

type MenuHandler struct {
	menuService services.MenuService
}

func NewMenuHandler(menuService services.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// GetMenu endpoint public สำหรับหน้าเมนูลูกค้า — ไม่ต้อง auth
func (h *MenuHandler) GetMenu(c *fiber.Ctx) error {
	subdomain := c.Params("subdomain")
	if subdomain == "" {
		return utils.BadRequestResponse(c, "Subdomain is required")
	}

	menu, err := h.menuService.Compose(c.UserContext(), subdomain)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, menu)
}
