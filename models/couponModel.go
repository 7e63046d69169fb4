package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon codes are stored uppercase and matched case-insensitively.
// Usage_limit of 0 means unlimited; Valid_to zero value means no expiry.
type Coupon struct {
	ID            primitive.ObjectID `bson:"_id"`
	Coupon_id     string             `json:"coupon_id"`
	Code          string             `json:"code" validate:"required,min=3,max=20"`
	Discount_type string             `json:"discount_type" validate:"required,eq=percentage|eq=fixed"`
	Value         float64            `json:"value" validate:"required,gt=0"`
	Valid_to      time.Time          `json:"valid_to"`
	Usage_limit   int                `json:"usage_limit" validate:"gte=0"`
	Used_count    int                `json:"used_count"`
	Active        bool               `json:"active"`
	Created_at    time.Time          `json:"created_at"`
}

// Validate checks whether the coupon can be applied at the given time.
// Inactive coupons are reported as not found.
func (coupon *Coupon) Validate(now time.Time) error {
	if !coupon.Active {
		return ErrCouponNotFound
	}
	if !coupon.Valid_to.IsZero() && now.After(coupon.Valid_to) {
		return ErrCouponExpired
	}
	if coupon.Usage_limit > 0 && coupon.Used_count >= coupon.Usage_limit {
		return ErrCouponExhausted
	}
	return nil
}
