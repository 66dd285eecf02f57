package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"chocolatudo/internal/models"
	"chocolatudo/internal/repositories"
)

// AddToCartRequest is the deserialized-but-unvalidated add-to-cart payload.
type AddToCartRequest struct {
	ProductID int `json:"productId" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,min=1,max=99"`
}

// CartResponse is the cart reshaped for the storefront, with the total
// amount formatted as Brazilian Real.
type CartResponse struct {
	ID          string            `json:"id"`
	Items       []models.CartItem `json:"items"`
	TotalItems  int               `json:"totalItems"`
	TotalAmount string            `json:"totalAmount"`
	Message     string            `json:"message"`
}

// CartService handles business logic related to the shopping cart.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
	sessions    repositories.SessionResolver
	validate    *validator.Validate
}

// NewCartService creates a new CartService.
func NewCartService(
	cartRepo repositories.CartRepository,
	productRepo repositories.ProductRepository,
	sessions repositories.SessionResolver,
	validate *validator.Validate,
) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		sessions:    sessions,
		validate:    validate,
	}
}

// AddItem adds a product to the active cart, creating the cart lazily on
// first use. Failure conditions are checked in a fixed order and the
// first match short-circuits: validation, product lookup, distinct-item
// limit (new lines only), cumulative quantity limit (existing lines
// only). No failure path mutates the cart.
func (s *CartService) AddItem(req AddToCartRequest) (*CartResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, newValidationError(fieldErrors(err))
	}

	product, err := s.productRepo.GetByID(req.ProductID)
	if err != nil {
		return nil, newNotFound("Product not found")
	}

	cart, err := s.cartRepo.GetBySession(s.sessions.SessionKey())
	if err != nil {
		if !errors.Is(err, repositories.ErrCartNotFound) {
			return nil, fmt.Errorf("failed to resolve active cart: %w", err)
		}
		cart, err = s.cartRepo.Create(s.sessions.SessionKey())
		if err != nil {
			return nil, fmt.Errorf("failed to create cart: %w", err)
		}
	}

	existing := cart.FindItem(req.ProductID)
	if existing == nil && len(cart.Items) >= models.CartMaxItems {
		return nil, newCartLimitExceeded(
			fmt.Sprintf("Maximum %d different items allowed in cart", models.CartMaxItems))
	}

	if existing != nil {
		newQuantity := existing.Quantity + req.Quantity
		if newQuantity > models.CartMaxQuantity {
			return nil, newQuantityLimitExceeded(
				fmt.Sprintf("Maximum quantity per item is %d", models.CartMaxQuantity))
		}
		// Subtotal keeps the unit price captured when the line was first
		// added, not a live catalog price.
		existing.Quantity = newQuantity
		existing.Subtotal = existing.Price.Mul(decimal.NewFromInt(int64(newQuantity)))
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    req.Quantity,
			Subtotal:    product.Price.Mul(decimal.NewFromInt(int64(req.Quantity))),
		})
	}

	cart.Recalculate()
	cart.DateModified = time.Now().UTC()

	if err := s.cartRepo.Update(cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart: %w", err)
	}

	return &CartResponse{
		ID:          cart.ID,
		Items:       cart.Items,
		TotalItems:  cart.TotalItems,
		TotalAmount: models.FormatBRL(cart.TotalAmount),
		Message:     "Item added to cart",
	}, nil
}
