package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleLines() []PricedLine {
	// 2 x 10.00 + 1 x 5.00 = 25.00
	return []PricedLine{
		{Quantity: 2, Unit_price: 10.00},
		{Quantity: 1, Unit_price: 5.00},
	}
}

func TestCartTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []PricedLine
		coupon       *Coupon
		wantSubtotal float64
		wantDiscount float64
		wantTotal    float64
	}{
		{
			name:         "no coupon",
			lines:        sampleLines(),
			wantSubtotal: 25.00,
			wantDiscount: 0,
			wantTotal:    25.00,
		},
		{
			name:         "fixed coupon",
			lines:        sampleLines(),
			coupon:       &Coupon{Discount_type: DiscountFixed, Value: 3.00},
			wantSubtotal: 25.00,
			wantDiscount: 3.00,
			wantTotal:    22.00,
		},
		{
			name:         "percentage coupon",
			lines:        sampleLines(),
			coupon:       &Coupon{Discount_type: DiscountPercentage, Value: 10},
			wantSubtotal: 25.00,
			wantDiscount: 2.50,
			wantTotal:    22.50,
		},
		{
			name:         "fixed coupon larger than subtotal is clamped",
			lines:        []PricedLine{{Quantity: 1, Unit_price: 5.00}},
			coupon:       &Coupon{Discount_type: DiscountFixed, Value: 50.00},
			wantSubtotal: 5.00,
			wantDiscount: 5.00,
			wantTotal:    0,
		},
		{
			name:         "full percentage discount",
			lines:        sampleLines(),
			coupon:       &Coupon{Discount_type: DiscountPercentage, Value: 100},
			wantSubtotal: 25.00,
			wantDiscount: 25.00,
			wantTotal:    0,
		},
		{
			name:         "percentage discount rounds half up",
			lines:        []PricedLine{{Quantity: 1, Unit_price: 24.99}},
			coupon:       &Coupon{Discount_type: DiscountPercentage, Value: 10},
			wantSubtotal: 24.99,
			wantDiscount: 2.50,
			wantTotal:    22.49,
		},
		{
			name:         "empty cart",
			lines:        nil,
			wantSubtotal: 0,
			wantDiscount: 0,
			wantTotal:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, discount, total := CartTotals(tt.lines, tt.coupon)
			assert.InDelta(t, tt.wantSubtotal, subtotal, 1e-9)
			assert.InDelta(t, tt.wantDiscount, discount, 1e-9)
			assert.InDelta(t, tt.wantTotal, total, 1e-9)
		})
	}
}

func TestCartTotalsIsRepeatable(t *testing.T) {
	lines := sampleLines()
	coupon := &Coupon{Discount_type: DiscountPercentage, Value: 15}

	s1, d1, t1 := CartTotals(lines, coupon)
	s2, d2, t2 := CartTotals(lines, coupon)

	assert.Equal(t, s1, s2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, t1, t2)
}

func TestMergeCartItem(t *testing.T) {
	now := time.Now()
	items := []CartItem{
		{Item_id: "a", Food_id: "food-1", Quantity: 2, Instructions: "no onions", Added_at: now},
	}

	t.Run("merges same food and latest instructions win", func(t *testing.T) {
		merged := MergeCartItem(items, CartItem{Food_id: "food-1", Quantity: 3, Instructions: "extra spicy"})
		assert.Len(t, merged, 1)
		assert.Equal(t, 5, merged[0].Quantity)
		assert.Equal(t, "extra spicy", merged[0].Instructions)
		assert.Equal(t, "a", merged[0].Item_id)
	})

	t.Run("appends new food", func(t *testing.T) {
		merged := MergeCartItem(items, CartItem{Item_id: "b", Food_id: "food-2", Quantity: 1})
		assert.Len(t, merged, 2)
		assert.Equal(t, "food-2", merged[1].Food_id)
	})
}

func TestToFixed(t *testing.T) {
	assert.Equal(t, 2.50, ToFixed(2.499, 2))
	assert.Equal(t, 2.49, ToFixed(2.494, 2))
	assert.Equal(t, 22.50, ToFixed(22.5, 2))
	assert.Equal(t, 0.13, ToFixed(0.125, 2))
}
