package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"chocolatudo/internal/services"
)

// ContactHandler handles HTTP requests for contact-form submissions.
type ContactHandler struct {
	service *services.ContactService
	logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmit)
}

// HandleSubmit processes a contact-form submission.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var req services.ContactCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse(services.CodeValidationError, "Invalid request body", nil))
	}

	ipAddress := strings.TrimPrefix(c.IP(), "::ffff:")
	userAgent := c.Get(fiber.HeaderUserAgent, "unknown")

	resp, err := h.service.Create(c.UserContext(), req, ipAddress, userAgent)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(successResponse(resp))
}
