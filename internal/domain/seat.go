package domain

// Zone is the seating category a seat belongs to. It determines the
// assignment price and, for PMR, accessibility.
type Zone string

const (
	ZonePreferente Zone = "Preferente"
	ZoneSegunda    Zone = "Zona 2"
	ZoneTercera    Zone = "Zona 3"
	ZonePMR        Zone = "PMR"
)

type SeatType string

const (
	SeatStandard SeatType = "standard"
	SeatPMR      SeatType = "pmr"
)

// Seat is a static venue position. Seats are generated once from the
// row configuration and never mutated afterwards.
type Seat struct {
	ID     string   `json:"id"`
	Zone   Zone     `json:"zone"`
	Row    int      `json:"row"`
	Number int      `json:"number"`
	Type   SeatType `json:"type"`
}

// PublicPrice is the flat per-seat price of the public booking flow.
// The venue sells every zone at the same price this season.
const PublicPrice = 5.0

var assignmentPrices = map[Zone]float64{
	ZonePreferente: 12,
	ZoneSegunda:    10,
	ZoneTercera:    8,
	ZonePMR:        12,
}

// AssignmentPrice returns the per-zone price applied when an organizer
// assigns seats to a registration group directly.
func AssignmentPrice(z Zone) float64 {
	return assignmentPrices[z]
}
