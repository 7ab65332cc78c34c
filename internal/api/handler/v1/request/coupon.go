package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/danceinaction/booking-api/internal/domain"
)

type CreateCouponRequest struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	MaxUses       *int       `json:"max_uses"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (req *CreateCouponRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Code, validation.Required, validation.Length(1, 50)),
		validation.Field(&req.DiscountType, validation.Required,
			validation.In(string(domain.DiscountFixed), string(domain.DiscountPercentage))),
		validation.Field(&req.DiscountValue, validation.Required, validation.Min(0.01)),
	)
	if err != nil {
		return err
	}
	if req.DiscountType == string(domain.DiscountPercentage) && req.DiscountValue > 100 {
		return validation.Errors{"discount_value": validation.NewError("discount_value", "percentage cannot exceed 100")}
	}
	if req.MaxUses != nil && *req.MaxUses < 1 {
		return validation.Errors{"max_uses": validation.NewError("max_uses", "must be at least 1")}
	}
	return nil
}

type SetCouponActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (req *SetCouponActiveRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.IsActive, validation.NotNil),
	)
}
