package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart business rules.
const (
	CartMinQuantity = 1
	CartMaxQuantity = 99
	CartMaxItems    = 10
)

// CartItem is a single line in a cart. Price is the unit price captured
// when the line was first added; quantity increases never reprice it.
type CartItem struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Cart represents a shopping cart. Items are ordered by insertion and
// unique by product id.
type Cart struct {
	ID           string          `json:"id"`
	Items        []CartItem      `json:"items"`
	TotalItems   int             `json:"totalItems"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	DateCreated  time.Time       `json:"dateCreated"`
	DateModified time.Time       `json:"dateModified"`
}

// FindItem returns a pointer into the cart's item list for the given
// product, or nil if the product is not in the cart.
func (c *Cart) FindItem(productID int) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Recalculate recomputes TotalItems and TotalAmount from the item lines.
// Totals are always derived, never mutated independently.
func (c *Cart) Recalculate() {
	total := 0
	amount := decimal.Zero
	for _, item := range c.Items {
		total += item.Quantity
		amount = amount.Add(item.Subtotal)
	}
	c.TotalItems = total
	c.TotalAmount = amount
}
