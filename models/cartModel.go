package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is one in-progress selection per guest. Lines are embedded so the whole
// cart is read and written as a single document.
type Cart struct {
	ID          primitive.ObjectID `bson:"_id"`
	Cart_id     string             `json:"cart_id"`
	User_id     string             `json:"user_id" validate:"required"`
	Items       []CartItem         `json:"items"`
	Coupon_code string             `json:"coupon_code"`
	Created_at  time.Time          `json:"created_at"`
	Updated_at  time.Time          `json:"updated_at"`
}

type CartItem struct {
	Item_id      string    `json:"item_id"`
	Food_id      string    `json:"food_id" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required,min=1"`
	Instructions string    `json:"instructions"`
	Added_at     time.Time `json:"added_at"`
}

// MergeCartItem adds item to items, folding it into an existing line for the
// same food. Quantities are summed; the instructions from the latest call win.
func MergeCartItem(items []CartItem, item CartItem) []CartItem {
	for i := range items {
		if items[i].Food_id == item.Food_id {
			items[i].Quantity += item.Quantity
			items[i].Instructions = item.Instructions
			return items
		}
	}
	return append(items, item)
}

// PricedLine is a cart line joined with the current catalog price.
type PricedLine struct {
	Quantity   int
	Unit_price float64
}

// CartTotals computes (subtotal, discount, total) for a priced cart. The
// discount comes from the applied coupon, if any: percentage coupons take
// value% off the subtotal, fixed coupons take min(value, subtotal). The total
// never goes below zero. Amounts are rounded to two decimal places, half up.
// Calling it twice with the same inputs returns the same results.
func CartTotals(lines []PricedLine, coupon *Coupon) (subtotal float64, discount float64, total float64) {
	for _, line := range lines {
		subtotal += float64(line.Quantity) * line.Unit_price
	}
	subtotal = ToFixed(subtotal, 2)

	if coupon != nil {
		switch coupon.Discount_type {
		case DiscountPercentage:
			discount = subtotal * coupon.Value / 100
		case DiscountFixed:
			discount = math.Min(coupon.Value, subtotal)
		}
	}
	discount = ToFixed(discount, 2)

	total = ToFixed(subtotal-discount, 2)
	if total < 0 {
		total = 0
	}
	return subtotal, discount, total
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

// ToFixed rounds num to the given number of decimal places, half up.
func ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}
