package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"chocolatudo/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service *services.ProductService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/product")
	productRoutes.Get("/", h.HandleGetPrimary)
	productRoutes.Get("/:id", h.HandleGetByID)
}

// HandleGetPrimary returns the primary product shown on the landing page.
func (h *ProductHandler) HandleGetPrimary(c *fiber.Ctx) error {
	product, err := h.service.GetPrimary()
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(successResponse(product))
}

// HandleGetByID returns a single product by its id parameter.
func (h *ProductHandler) HandleGetByID(c *fiber.Ctx) error {
	product, err := h.service.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(successResponse(product))
}
