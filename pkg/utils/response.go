package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"menu-api/pkg/apperr"
)

// ========== Success Responses ==========

func SuccessResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

func CreatedResponse(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

func MessageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// ========== Error Responses ==========
// ทุก error body เป็น JSON ที่มี field "error" เสมอ

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}

func ValidationErrorResponse(c *fiber.Ctx, details any) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Validation failed",
		"details": details,
	})
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message)
}

func UnauthorizedResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponse(c, fiber.StatusUnauthorized, message)
}

func ForbiddenResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Forbidden"
	}
	return ErrorResponse(c, fiber.StatusForbidden, message)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
}

// DomainErrorResponse แปลง apperr เป็น HTTP response ตาม taxonomy
// error ที่ไม่รู้จัก map เป็น 500 โดยไม่ leak รายละเอียด
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	var e *apperr.Error
	if !errors.As(err, &e) {
		return InternalServerErrorResponse(c)
	}

	switch e.Kind {
	case apperr.KindValidation:
		return BadRequestResponse(c, e.Message)
	case apperr.KindNotFound:
		return NotFoundResponse(c, e.Message)
	case apperr.KindForbidden:
		return ForbiddenResponse(c, e.Message)
	case apperr.KindAlreadyExists:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": e.Message,
			"field": e.Field,
		})
	case apperr.KindUnauthenticated:
		return UnauthorizedResponse(c, e.Message)
	default:
		return InternalServerErrorResponse(c)
	}
}
