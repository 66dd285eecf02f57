package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"chocolatudo/internal/models"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		name     string
		amount   decimal.Decimal
		expected string
	}{
		{"whole value", decimal.NewFromFloat(45.0), "R$ 45,00"},
		{"thousands separator", decimal.NewFromFloat(1234.5), "R$ 1.234,50"},
		{"zero", decimal.Zero, "R$ 0,00"},
		{"cents only", decimal.NewFromFloat(0.99), "R$ 0,99"},
		{"large amount", decimal.NewFromFloat(1234567.89), "R$ 1.234.567,89"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, models.FormatBRL(tc.amount))
		})
	}
}

func TestCartRecalculate(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartItem{
			{ProductID: 1, Quantity: 2, Subtotal: decimal.NewFromFloat(90.0)},
			{ProductID: 2, Quantity: 3, Subtotal: decimal.NewFromFloat(30.0)},
		},
	}

	cart.Recalculate()

	assert.Equal(t, 5, cart.TotalItems)
	assert.True(t, cart.TotalAmount.Equal(decimal.NewFromFloat(120.0)))
}

func TestCartFindItem(t *testing.T) {
	cart := models.Cart{
		Items: []models.CartItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 7, Quantity: 1},
		},
	}

	item := cart.FindItem(7)
	assert.NotNil(t, item)
	assert.Equal(t, 1, item.Quantity)

	// Returned pointer aliases the list, so callers can mutate in place.
	item.Quantity = 5
	assert.Equal(t, 5, cart.Items[1].Quantity)

	assert.Nil(t, cart.FindItem(99))
}
