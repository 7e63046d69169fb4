package models

import (
	"fmt"
	"math/rand"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// orderTransitions is the allowed status graph: a strict forward chain
// pending -> preparing -> delivered, with cancelled reachable from pending or
// preparing. Delivered and cancelled are terminal.
var orderTransitions = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

func ValidStatus(status string) bool {
	_, ok := orderTransitions[status]
	return ok
}

func CanTransition(from string, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID                   primitive.ObjectID `bson:"_id"`
	Order_id             string             `json:"order_id"`
	Order_number         string             `json:"order_number"`
	User_id              string             `json:"user_id" validate:"required"`
	Items                []OrderItem        `json:"items" validate:"required,min=1"`
	Subtotal             float64            `json:"subtotal"`
	Discount             float64            `json:"discount"`
	Total                float64            `json:"total"`
	Coupon_code          string             `json:"coupon_code"`
	Payment_method       string             `json:"payment_method" validate:"required,eq=cash|eq=card|eq=room-charge"`
	Status               string             `json:"status" validate:"required,eq=pending|eq=preparing|eq=delivered|eq=cancelled"`
	Location             string             `json:"location" validate:"required"`
	Phone                string             `json:"phone"`
	Special_instructions string             `json:"special_instructions"`
	Created_at           time.Time          `json:"created_at"`
	Updated_at           time.Time          `json:"updated_at"`
}

// OrderItem snapshots the food name and unit price at order time, so later
// catalog edits never change a placed order.
type OrderItem struct {
	Food_id      string  `json:"food_id"`
	Food_name    string  `json:"food_name"`
	Quantity     int     `json:"quantity" validate:"required,min=1"`
	Unit_price   float64 `json:"unit_price"`
	Instructions string  `json:"instructions"`
}

// CheckoutLine is a cart line joined with the current catalog state, the
// input to order assembly.
type CheckoutLine struct {
	Food_id      string
	Food_name    string
	Quantity     int
	Unit_price   float64
	Instructions string
	Available    bool
}

// BuildOrderItems turns priced cart lines into order line snapshots. An empty
// cart fails with ErrEmptyCart, any unavailable line fails with
// ErrItemUnavailable, and a non-positive quantity fails with
// ErrInvalidQuantity. On failure no items are returned, so no order can be
// assembled from a rejected cart.
func BuildOrderItems(lines []CheckoutLine) ([]OrderItem, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		if !line.Available {
			return nil, ErrItemUnavailable
		}
		if line.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		items = append(items, OrderItem{
			Food_id:      line.Food_id,
			Food_name:    line.Food_name,
			Quantity:     line.Quantity,
			Unit_price:   line.Unit_price,
			Instructions: line.Instructions,
		})
	}
	return items, nil
}

// GenerateOrderNumber builds a human-readable order number like
// ORD202608301455021234: a UTC timestamp plus four random digits.
func GenerateOrderNumber() string {
	timestamp := time.Now().UTC().Format("20060102150405")
	return fmt.Sprintf("ORD%s%04d", timestamp, rand.Intn(9000)+1000)
}
