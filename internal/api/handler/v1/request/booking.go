package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// maxSeatsPerOrder caps one purchase; larger blocks go through the
// admin assignment flow instead.
const maxSeatsPerOrder = 10

var errDuplicateSeats = validation.NewError("validation_duplicate_seats", "seat ids must be unique")

// uniqueSeatIDs rejects repeated ids. A doubled seat would otherwise
// be priced twice and then conflict against itself downstream.
func uniqueSeatIDs(value interface{}) error {
	ids, _ := value.([]string)
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return errDuplicateSeats
		}
		seen[id] = struct{}{}
	}
	return nil
}

type PurchaseRequest struct {
	SeatIDs       []string `json:"seat_ids"`
	CustomerName  string   `json:"customer_name"`
	CustomerEmail string   `json:"customer_email"`
	CustomerPhone string   `json:"customer_phone"`
	CouponCode    string   `json:"coupon_code"`
}

func (req *PurchaseRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SeatIDs, validation.Required, validation.Length(1, maxSeatsPerOrder), validation.By(uniqueSeatIDs)),
		validation.Field(&req.CustomerName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.CustomerEmail, validation.Required, is.Email),
		validation.Field(&req.CustomerPhone, validation.Required, validation.Length(6, 20)),
		validation.Field(&req.CouponCode, validation.Length(0, 50)),
	)
}

type ValidateCouponRequest struct {
	Code string `json:"code"`
}

func (req *ValidateCouponRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(1, 50)),
	)
}
