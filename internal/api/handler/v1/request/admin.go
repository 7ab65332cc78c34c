package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type AdminLoginRequest struct {
	PIN string `json:"pin"`
}

func (req *AdminLoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.PIN, validation.Required, validation.Length(4, 64)),
	)
}

// ConfirmRequest guards destructive admin operations; the body must
// carry an explicit confirm flag.
type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

func (req *ConfirmRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Confirm, validation.Required),
	)
}
