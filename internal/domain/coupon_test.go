package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoupon_Discount(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		total  float64
		want   float64
	}{
		{
			name:   "fixed",
			coupon: Coupon{DiscountType: DiscountFixed, DiscountValue: 5},
			total:  25,
			want:   5,
		},
		{
			name:   "percentage",
			coupon: Coupon{DiscountType: DiscountPercentage, DiscountValue: 10},
			total:  50,
			want:   5,
		},
		{
			name:   "fixed capped at total",
			coupon: Coupon{DiscountType: DiscountFixed, DiscountValue: 100},
			total:  25,
			want:   25,
		},
		{
			name:   "never negative",
			coupon: Coupon{DiscountType: DiscountFixed, DiscountValue: -5},
			total:  25,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.Discount(tt.total))
		})
	}
}

func TestCoupon_UsesExhausted(t *testing.T) {
	limit := 3

	assert.False(t, Coupon{MaxUses: nil, CurrentUses: 100}.UsesExhausted())
	assert.False(t, Coupon{MaxUses: &limit, CurrentUses: 2}.UsesExhausted())
	assert.True(t, Coupon{MaxUses: &limit, CurrentUses: 3}.UsesExhausted())
}

func TestCoupon_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, Coupon{ExpiresAt: nil}.Expired(now))
	assert.False(t, Coupon{ExpiresAt: &future}.Expired(now))
	assert.True(t, Coupon{ExpiresAt: &past}.Expired(now))
}

func TestOrder_Reference(t *testing.T) {
	order := Order{ID: "a1b2c3d4-e5f6-7890-abcd-ef1234567890"}

	assert.Equal(t, "A1B2C3D4", order.Reference())
}
