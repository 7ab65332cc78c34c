package domain

import (
	"strings"
	"time"
)

// PaymentStatus is the order state. Pending is the only non-terminal
// state; paid, cancelled and expired are terminal.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentExpired   PaymentStatus = "expired"
)

// Order is one purchase transaction for one or more tickets in a
// single session. Payment itself happens out of band (Bizum or bank
// transfer); an admin confirms receipt manually.
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaymentProvider string        `json:"payment_provider"`
	CouponID        *uint         `json:"coupon_id,omitempty"`
	DiscountApplied float64       `json:"discount_applied"`
	CreatedAt       time.Time     `json:"created_at"`
	Tickets         []Ticket      `json:"tickets,omitempty"`
}

// Reference is the short code customers quote on their Bizum or bank
// transfer: the first group of the order UUID, upper-cased.
func (o Order) Reference() string {
	ref, _, _ := strings.Cut(o.ID, "-")
	return strings.ToUpper(ref)
}
