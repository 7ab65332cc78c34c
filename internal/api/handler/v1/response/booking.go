package response

import (
	"github.com/danceinaction/booking-api/internal/domain"
)

// SeatMapResponse is the full seat map of one session.
type SeatMapResponse struct {
	SessionID string                    `json:"session_id"`
	Seats     []domain.SeatAvailability `json:"seats"`
}

// PurchaseResponse returns the pending order together with the short
// reference customers quote on their bank transfer or Bizum.
type PurchaseResponse struct {
	Order     domain.Order `json:"order"`
	Reference string       `json:"reference"`
}

// SeatConflictResponse names the seats that were taken between the
// seat map render and the purchase attempt.
type SeatConflictResponse struct {
	Msg   string   `json:"error"`
	Seats []string `json:"seats"`
}

type CleanupResponse struct {
	ExpiredOrders int `json:"expired_orders"`
}

type SeedResponse struct {
	SeatsSeeded int `json:"seats_seeded"`
}
