package request

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/danceinaction/booking-api/internal/domain"
)

type ResponsibleRow struct {
	RowKey   string `json:"row_key"`
	Name     string `json:"name"`
	Surnames string `json:"surnames"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	DNIURL   string `json:"dni_url"`
}

func (r ResponsibleRow) Validate() error {
	return validation.ValidateStruct(
		&r,
		validation.Field(&r.RowKey, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Surnames, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Phone, validation.Required, validation.Length(6, 20)),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

type ParticipantRow struct {
	RowKey           string `json:"row_key"`
	Name             string `json:"name"`
	Surnames         string `json:"surnames"`
	DOB              string `json:"dob"`
	NumTickets       int    `json:"num_tickets"`
	AuthorizationURL string `json:"authorization_url"`
	DNIURL           string `json:"dni_url"`
}

func (p ParticipantRow) Validate() error {
	return validation.ValidateStruct(
		&p,
		validation.Field(&p.RowKey, validation.Required),
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Surnames, validation.Required, validation.Length(1, 150)),
		validation.Field(&p.DOB, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&p.NumTickets, validation.Min(0)),
	)
}

type SaveRegistrationRequest struct {
	GroupName        string           `json:"group_name"`
	Category         string           `json:"category"`
	SchoolName       string           `json:"school_name"`
	Notes            string           `json:"notes"`
	PaymentProofURLs []string         `json:"payment_proof_urls"`
	MusicFileURL     string           `json:"music_file_url"`
	Responsibles     []ResponsibleRow `json:"responsibles"`
	Participants     []ParticipantRow `json:"participants"`
}

func (req *SaveRegistrationRequest) Validate() error {
	categories := make([]interface{}, 0, len(domain.DanceCategories))
	for _, c := range domain.DanceCategories {
		categories = append(categories, string(c))
	}

	return validation.ValidateStruct(
		req,
		validation.Field(&req.GroupName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Category, validation.Required, validation.In(categories...)),
		validation.Field(&req.SchoolName, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Notes, validation.Length(0, 1000)),
		validation.Field(&req.Responsibles, validation.Required, validation.Length(1, 5)),
		validation.Field(&req.Participants, validation.Required, validation.Length(1, 50)),
	)
}

// ToDomain maps the request body onto a registration. Ownership,
// status and ids are set by the service, never trusted from clients.
func (req *SaveRegistrationRequest) ToDomain() domain.Registration {
	reg := domain.Registration{
		GroupName:        req.GroupName,
		Category:         domain.DanceCategory(req.Category),
		SchoolName:       req.SchoolName,
		Notes:            req.Notes,
		PaymentProofURLs: req.PaymentProofURLs,
		MusicFileURL:     req.MusicFileURL,
	}
	for _, r := range req.Responsibles {
		reg.Responsibles = append(reg.Responsibles, domain.Responsible{
			RowKey:   r.RowKey,
			Name:     r.Name,
			Surnames: r.Surnames,
			Phone:    r.Phone,
			Email:    r.Email,
			DNIURL:   r.DNIURL,
		})
	}
	for _, p := range req.Participants {
		reg.Participants = append(reg.Participants, domain.Participant{
			RowKey:           p.RowKey,
			Name:             p.Name,
			Surnames:         p.Surnames,
			DOB:              p.DOB,
			NumTickets:       p.NumTickets,
			AuthorizationURL: p.AuthorizationURL,
			DNIURL:           p.DNIURL,
		})
	}
	return reg
}

type AssignSeatsRequest struct {
	SessionID string   `json:"session_id"`
	SeatIDs   []string `json:"seat_ids"`
}

func (req *AssignSeatsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SessionID, validation.Required),
		validation.Field(&req.SeatIDs, validation.Required, validation.Length(1, 100), validation.By(uniqueSeatIDs)),
	)
}

type UnassignSeatsRequest struct {
	SessionID string `json:"session_id"`
}

func (req *UnassignSeatsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SessionID, validation.Required),
	)
}
