package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPreparing, StatusDelivered, true},
		{StatusPending, StatusCancelled, true},
		{StatusPreparing, StatusCancelled, true},

		{StatusPending, StatusDelivered, false}, // no skipping ahead
		{StatusDelivered, StatusPreparing, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPreparing, false},
		{StatusCancelled, StatusPending, false},
		{StatusPreparing, StatusPending, false},
		{StatusPending, StatusPending, false},
		{"unknown", StatusPreparing, false},
		{StatusPending, "unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusPreparing, StatusDelivered, StatusCancelled} {
		assert.True(t, ValidStatus(status), status)
	}
	assert.False(t, ValidStatus("ready"))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("Pending")) // statuses are lowercase
}

func TestBuildOrderItems(t *testing.T) {
	available := []CheckoutLine{
		{Food_id: "food-1", Food_name: "Club Sandwich", Quantity: 2, Unit_price: 450.00, Instructions: "no mayo", Available: true},
		{Food_id: "food-2", Food_name: "Cappuccino", Quantity: 1, Unit_price: 250.00, Available: true},
	}

	t.Run("empty cart never produces an order", func(t *testing.T) {
		items, err := BuildOrderItems(nil)
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Nil(t, items)

		items, err = BuildOrderItems([]CheckoutLine{})
		assert.ErrorIs(t, err, ErrEmptyCart)
		assert.Nil(t, items)
	})

	t.Run("unavailable line rejects the whole cart", func(t *testing.T) {
		lines := append(available, CheckoutLine{Food_id: "food-3", Quantity: 1, Available: false})
		items, err := BuildOrderItems(lines)
		assert.ErrorIs(t, err, ErrItemUnavailable)
		assert.Nil(t, items)
	})

	t.Run("non-positive quantity rejects the whole cart", func(t *testing.T) {
		lines := []CheckoutLine{{Food_id: "food-1", Quantity: 0, Available: true}}
		items, err := BuildOrderItems(lines)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Nil(t, items)
	})

	t.Run("snapshots name, price, and instructions per line", func(t *testing.T) {
		items, err := BuildOrderItems(available)
		assert.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, OrderItem{
			Food_id:      "food-1",
			Food_name:    "Club Sandwich",
			Quantity:     2,
			Unit_price:   450.00,
			Instructions: "no mayo",
		}, items[0])
		assert.Equal(t, "Cappuccino", items[1].Food_name)
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD\d{18}$`)

	number := GenerateOrderNumber()
	assert.Regexp(t, pattern, number)

	other := GenerateOrderNumber()
	assert.Regexp(t, pattern, other)
}
