package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponValidate(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		coupon  Coupon
		wantErr error
	}{
		{
			name:   "active coupon with headroom",
			coupon: Coupon{Active: true, Valid_to: now.Add(24 * time.Hour), Usage_limit: 10, Used_count: 3},
		},
		{
			name:   "no expiry and unlimited usage",
			coupon: Coupon{Active: true},
		},
		{
			name:    "inactive coupon is not found",
			coupon:  Coupon{Active: false, Valid_to: now.Add(24 * time.Hour)},
			wantErr: ErrCouponNotFound,
		},
		{
			name:    "expired coupon",
			coupon:  Coupon{Active: true, Valid_to: now.Add(-time.Minute)},
			wantErr: ErrCouponExpired,
		},
		{
			name:    "exhausted coupon",
			coupon:  Coupon{Active: true, Usage_limit: 5, Used_count: 5},
			wantErr: ErrCouponExhausted,
		},
		{
			name:   "last use still available",
			coupon: Coupon{Active: true, Usage_limit: 5, Used_count: 4},
		},
		{
			name:   "used count ignored when limit is unlimited",
			coupon: Coupon{Active: true, Usage_limit: 0, Used_count: 999},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coupon.Validate(now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
