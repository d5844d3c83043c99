package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Login แลก email/password เป็น bearer token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.userService.Login(ctx, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, resp)
}

// Me คืน profile ของ user ที่ login อยู่ พร้อม commerce (ถ้ามี)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	ctx := c.UserContext()

	actor, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "User not authenticated")
	}

	user, err := h.userService.GetProfile(ctx, actor.ID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	resp := dto.MeResponse{
		User:     dto.UserToUserResponse(user),
		Commerce: dto.CommerceToCommerceResponse(user.Commerce),
	}
	return utils.SuccessResponse(c, resp)
}
