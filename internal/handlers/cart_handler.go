package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"chocolatudo/internal/services"
)

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service *services.CartService
	logger  *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Post("/add", h.HandleAddItem)
}

// HandleAddItem adds a product to the active cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req services.AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(
			errorResponse(services.CodeValidationError, "Invalid request body", nil))
	}

	cart, err := h.service.AddItem(req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(successResponse(cart))
}
