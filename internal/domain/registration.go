package domain

import "time"

// DanceCategory is the competition category a group enters.
type DanceCategory string

const (
	CategoryBaby        DanceCategory = "Baby"
	CategoryInfantil    DanceCategory = "Infantil"
	CategoryJunior      DanceCategory = "Junior"
	CategoryMiniParejas DanceCategory = "Mini-parejas"
	CategoryJuvenil     DanceCategory = "Juvenil"
	CategoryAbsoluta    DanceCategory = "Absoluta"
	CategoryParejas     DanceCategory = "Parejas"
	CategoryPremium     DanceCategory = "Premium"
)

// DanceCategories lists every valid category, for request validation.
var DanceCategories = []DanceCategory{
	CategoryBaby, CategoryInfantil, CategoryJunior, CategoryMiniParejas,
	CategoryJuvenil, CategoryAbsoluta, CategoryParejas, CategoryPremium,
}

type RegistrationStatus string

const (
	RegistrationDraft     RegistrationStatus = "draft"
	RegistrationSubmitted RegistrationStatus = "submitted"
)

// Registration is a dance group's competition entry, owned by a school
// account. It is separate from ticket purchase, but an organizer may
// assign seats to it directly.
//
// All document fields hold URLs returned by the external storage
// provider; the API never touches file contents.
type Registration struct {
	ID               uint               `json:"id"`
	UserID           string             `json:"user_id"`
	GroupName        string             `json:"group_name"`
	Category         DanceCategory      `json:"category"`
	SchoolName       string             `json:"school_name"`
	Notes            string             `json:"notes"`
	Status           RegistrationStatus `json:"status"`
	PaymentProofURLs []string           `json:"payment_proof_urls"`
	MusicFileURL     string             `json:"music_file_url"`
	CreatedAt        time.Time          `json:"created_at"`
	Responsibles     []Responsible      `json:"responsibles"`
	Participants     []Participant      `json:"participants"`
}

// Responsible is an adult contact for a registration. RowKey is the
// stable client-generated identifier of the form row, so uploads stay
// attached to the right person when a middle row is removed.
type Responsible struct {
	ID             uint   `json:"id"`
	RegistrationID uint   `json:"registration_id"`
	RowKey         string `json:"row_key"`
	Name           string `json:"name"`
	Surnames       string `json:"surnames"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	DNIURL         string `json:"dni_url"`
}

// Participant is one dancer in a registration.
type Participant struct {
	ID               uint   `json:"id"`
	RegistrationID   uint   `json:"registration_id"`
	RowKey           string `json:"row_key"`
	Name             string `json:"name"`
	Surnames         string `json:"surnames"`
	DOB              string `json:"dob"` // YYYY-MM-DD
	NumTickets       int    `json:"num_tickets"`
	AuthorizationURL string `json:"authorization_url"`
	DNIURL           string `json:"dni_url"`
}
