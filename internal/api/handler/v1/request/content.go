package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type SaveJudgeRequest struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

func (req *SaveJudgeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Title, validation.Length(0, 150)),
		validation.Field(&req.ImageURL, is.URL),
		validation.Field(&req.Position, validation.Min(0)),
	)
}

type SaveFAQRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Position int    `json:"position"`
}

func (req *SaveFAQRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Question, validation.Required, validation.Length(2, 300)),
		validation.Field(&req.Answer, validation.Required, validation.Length(1, 2000)),
		validation.Field(&req.Position, validation.Min(0)),
	)
}

type SaveSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (req *SaveSettingRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Key, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.Value, validation.Required, validation.Length(1, 500)),
	)
}
