package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type OptionHandler struct {
	optionService services.OptionService
	maxUploadSize int64
}

func NewOptionHandler(optionService services.OptionService, maxUploadSize int64) *OptionHandler {
	return &OptionHandler{
		optionService: optionService,
		maxUploadSize: maxUploadSize,
	}
}

// Create สร้าง option พร้อม items ใต้ product
func (h *OptionHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	productID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	option, err := h.optionService.Create(ctx, actor, productID, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.OptionToOptionResponse(option))
}

func (h *OptionHandler) Get(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	option, err := h.optionService.Get(c.UserContext(), actor, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.OptionToOptionResponse(option))
}

// Update แก้ option + reconcile items ทั้งชุดใน request เดียว
func (h *OptionHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	option, err := h.optionService.Update(ctx, actor, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.OptionToOptionResponse(option))
}

func (h *OptionHandler) Delete(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.optionService.Delete(c.UserContext(), actor, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MessageResponse(c, "Option deleted")
}

func (h *OptionHandler) UploadItemImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	itemID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	file, header, err := openUpload(c, "image", h.maxUploadSize)
	if err != nil {
		return err
	}
	defer file.Close()

	item, err := h.optionService.UploadItemImage(ctx, actor, itemID, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.OptionItemToResponse(item))
}
