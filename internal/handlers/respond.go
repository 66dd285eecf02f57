package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"chocolatudo/internal/services"
)

// successResponse wraps service output in the API envelope.
func successResponse(data interface{}) fiber.Map {
	return fiber.Map{
		"success": true,
		"data":    data,
	}
}

// errorResponse builds the API error envelope.
func errorResponse(code services.ErrorCode, message string, details []services.FieldError) fiber.Map {
	errBody := fiber.Map{
		"code":    code,
		"message": message,
	}
	if len(details) > 0 {
		errBody["details"] = details
	}
	return fiber.Map{
		"success": false,
		"error":   errBody,
	}
}

// respondError maps a service error onto its HTTP status; anything that
// is not a ServiceError surfaces as a generic server fault.
func respondError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	if svcErr, ok := services.AsServiceError(err); ok {
		return c.Status(svcErr.Status).JSON(errorResponse(svcErr.Code, svcErr.Message, svcErr.Details))
	}

	logger.Error("unexpected error handling request",
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error": fiber.Map{
			"code":    "INTERNAL_ERROR",
			"message": "An unexpected error occurred",
		},
	})
}
