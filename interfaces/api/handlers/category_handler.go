package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List ดึง categories เรียงตาม position
// superuser ระบุ ?commerce_id= เอง
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	categories, err := h.categoryService.List(c.UserContext(), actor, queryUint(c, "commerce_id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoriesToCategoryResponses(categories))
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Create(ctx, actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	category, err := h.categoryService.Update(ctx, actor, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.CategoryToCategoryResponse(category))
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.UserContext(), actor, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MessageResponse(c, "Category deleted")
}

// Reorder อัปเดต position ทั้ง batch ใน request เดียว
func (h *CategoryHandler) Reorder(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	var req dto.ReorderCategoriesRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.categoryService.Reorder(ctx, actor, &req); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MessageResponse(c, "Categories reordered")
}
