package middleware

import (
	"github.com/gofiber/fiber/v2"

	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

// ErrorHandler แปลง error ที่หลุดจาก handler เป็น {"error": ...}
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		if code >= 500 {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
		}

		return utils.ErrorResponse(c, code, message)
	}
}
