package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type CommerceHandler struct {
	commerceService services.CommerceService
	maxUploadSize   int64
}

func NewCommerceHandler(commerceService services.CommerceService, maxUploadSize int64) *CommerceHandler {
	return &CommerceHandler{
		commerceService: commerceService,
		maxUploadSize:   maxUploadSize,
	}
}

// Create สร้าง commerce พร้อม owner (superuser เท่านั้น — คุมที่ route)
func (h *CommerceHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateCommerceRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	commerce, owner, err := h.commerceService.Create(ctx, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.CreateCommerceResponse{
		Commerce: *dto.CommerceToCommerceResponse(commerce),
		Owner:    dto.UserToUserResponse(owner),
	})
}

func (h *CommerceHandler) List(c *fiber.Ctx) error {
	commerces, err := h.commerceService.List(c.UserContext())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CommercesToCommerceResponses(commerces))
}

func (h *CommerceHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	actor, _ := utils.GetUserFromContext(c)

	commerce, err := h.commerceService.Get(c.UserContext(), actor, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CommerceToCommerceResponse(commerce))
}

func (h *CommerceHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	actor, _ := utils.GetUserFromContext(c)

	var req dto.UpdateCommerceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	commerce, err := h.commerceService.Update(ctx, actor, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CommerceToCommerceResponse(commerce))
}

func (h *CommerceHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	actor, _ := utils.GetUserFromContext(c)

	if err := h.commerceService.Delete(c.UserContext(), actor, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MessageResponse(c, "Commerce deleted")
}

func (h *CommerceHandler) UploadLogo(c *fiber.Ctx) error {
	return h.upload(c, "logo")
}

func (h *CommerceHandler) UploadBanner(c *fiber.Ctx) error {
	return h.upload(c, "banner")
}

func (h *CommerceHandler) upload(c *fiber.Ctx, kind string) error {
	ctx := c.UserContext()

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	actor, _ := utils.GetUserFromContext(c)

	file, header, err := openUpload(c, "image", h.maxUploadSize)
	if err != nil {
		return err
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	upload := h.commerceService.UploadLogo
	if kind == "banner" {
		upload = h.commerceService.UploadBanner
	}
	commerce, err := upload(ctx, actor, id, file, header.Filename, contentType)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CommerceToCommerceResponse(commerce))
}
