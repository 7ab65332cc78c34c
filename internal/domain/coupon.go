package domain

import "time"

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// Coupon is a discount code. Codes are stored upper-cased and matched
// case-insensitively.
type Coupon struct {
	ID            uint         `json:"id"`
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	MaxUses       *int         `json:"max_uses,omitempty"`
	CurrentUses   int          `json:"current_uses"`
	IsActive      bool         `json:"is_active"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// UsesExhausted reports whether the coupon has reached its usage cap.
func (c Coupon) UsesExhausted() bool {
	return c.MaxUses != nil && c.CurrentUses >= *c.MaxUses
}

// Expired reports whether the coupon's expiry, if any, has passed.
func (c Coupon) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// Discount computes the amount deducted from total, never exceeding
// the total itself.
func (c Coupon) Discount(total float64) float64 {
	var d float64
	switch c.DiscountType {
	case DiscountPercentage:
		d = total * c.DiscountValue / 100
	default:
		d = c.DiscountValue
	}
	if d > total {
		d = total
	}
	if d < 0 {
		d = 0
	}
	return d
}
