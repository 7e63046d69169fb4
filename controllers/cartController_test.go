package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/parshwa12367556/Patilwada-Hotel/models"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrInvalidQuantity, http.StatusBadRequest},
		{models.ErrEmptyCart, http.StatusBadRequest},
		{models.ErrInvalidTransition, http.StatusBadRequest},
		{models.ErrCouponNotFound, http.StatusNotFound},
		{models.ErrOrderNotFound, http.StatusNotFound},
		{models.ErrItemUnavailable, http.StatusConflict},
		{models.ErrCouponExpired, http.StatusConflict},
		{models.ErrCouponExhausted, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, domainErrorStatus(tt.err))
		})
	}

	assert.Equal(t, http.StatusInternalServerError, domainErrorStatus(assert.AnError))
}

func TestPricedLinesSkipsUnavailable(t *testing.T) {
	lines := []CartLineView{
		{Food_id: "food-1", Quantity: 2, Unit_price: 10.00, Available: true},
		{Food_id: "food-2", Quantity: 1, Unit_price: 5.00, Available: false},
		{Food_id: "food-3", Quantity: 3, Unit_price: 2.50, Available: true},
	}

	priced := pricedLines(lines)

	assert.Len(t, priced, 2)
	assert.Equal(t, models.PricedLine{Quantity: 2, Unit_price: 10.00}, priced[0])
	assert.Equal(t, models.PricedLine{Quantity: 3, Unit_price: 2.50}, priced[1])
}

func TestEffectiveCoupon(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("no coupon", func(t *testing.T) {
		coupon, reason := effectiveCoupon(nil, now)
		assert.Nil(t, coupon)
		assert.Empty(t, reason)
	})

	t.Run("valid coupon passes through", func(t *testing.T) {
		valid := &models.Coupon{Active: true, Valid_to: now.Add(24 * time.Hour)}
		coupon, reason := effectiveCoupon(valid, now)
		assert.Same(t, valid, coupon)
		assert.Empty(t, reason)
	})

	t.Run("expired coupon is dropped with a reason", func(t *testing.T) {
		expired := &models.Coupon{Active: true, Valid_to: now.Add(-time.Minute)}
		coupon, reason := effectiveCoupon(expired, now)
		assert.Nil(t, coupon)
		assert.Equal(t, models.ErrCouponExpired.Error(), reason)
	})

	t.Run("exhausted coupon is dropped with a reason", func(t *testing.T) {
		exhausted := &models.Coupon{Active: true, Usage_limit: 5, Used_count: 5}
		coupon, reason := effectiveCoupon(exhausted, now)
		assert.Nil(t, coupon)
		assert.Equal(t, models.ErrCouponExhausted.Error(), reason)
	})
}
