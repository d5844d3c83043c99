package handlers

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/domain/dto"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type ProductHandler struct {
	productService services.ProductService
	maxUploadSize  int64
}

func NewProductHandler(productService services.ProductService, maxUploadSize int64) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		maxUploadSize:  maxUploadSize,
	}
}

// List ดึง products — กรองตาม ?category_id= ได้
func (h *ProductHandler) List(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	products, err := h.productService.List(c.UserContext(), actor, queryUint(c, "commerce_id"), queryUint(c, "category_id"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductsToProductResponses(products))
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productService.Get(c.UserContext(), actor, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	var req dto.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Create(ctx, actor, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.CreatedResponse(c, dto.ProductToProductResponse(product))
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	product, err := h.productService.Update(ctx, actor, id, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.UserContext(), actor, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.MessageResponse(c, "Product deleted")
}

func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	ctx := c.UserContext()
	actor, _ := utils.GetUserFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	file, header, err := openUpload(c, "image", h.maxUploadSize)
	if err != nil {
		return err
	}
	defer file.Close()

	product, err := h.productService.UploadImage(ctx, actor, id, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, dto.ProductToProductResponse(product))
}
