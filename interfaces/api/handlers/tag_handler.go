package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type TagHandler struct {
	tagService services.TagService
}

func NewTagHandler(tagService services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

func (h *TagHandler) List(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	tags, err := h.tagService.List(c.UserContext(), actor, queryUint(c, "commerce_id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.TagPointersToTagResponses(tags))
}

func (h *TagHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	var req dto.CreateTagRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tag, err := h.tagService.Create(ctx, actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	tag, err := h.tagService.Update(ctx, actor, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.TagToTagResponse(tag))
}

func (h *TagHandler) Delete(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.tagService.Delete(c.UserContext(), actor, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MessageResponse(c, "Tag deleted")
}

// Assign แปะ tag กับ target ตามชนิดของ tag — แปะซ้ำเป็น no-op
func (h *TagHandler) Assign(c *fiber.Ctx) error {
	return h.link(c, true)
}

func (h *TagHandler) Unassign(c *fiber.Ctx) error {
	return h.link(c, false)
}

func (h *TagHandler) link(c *fiber.Ctx, assign bool) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	tagID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.AssignTagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if assign {
		err = h.tagService.Assign(ctx, actor, tagID, req.TargetID)
	} else {
		err = h.tagService.Unassign(ctx, actor, tagID, req.TargetID)
	}
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	if assign {
		return utils.MessageResponse(c, "Tag assigned")
	}
	return utils.MessageResponse(c, "Tag unassigned")
}
