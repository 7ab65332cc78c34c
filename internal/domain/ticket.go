package domain

import "time"

// TicketStatus is the availability state of one seat in one session.
// Reserved and blocked are administrative states: they are not
// purchasable but do not reference an order.
type TicketStatus string

const (
	TicketAvailable TicketStatus = "available"
	TicketSold      TicketStatus = "sold"
	TicketReserved  TicketStatus = "reserved"
	TicketBlocked   TicketStatus = "blocked"
)

// Ticket is the mutable join between a Seat and a sale. Exactly one
// row exists per (session, seat) pair once seeding has run.
type Ticket struct {
	ID             uint         `json:"id"`
	SessionID      string       `json:"session_id"`
	SeatID         string       `json:"seat_id"`
	Status         TicketStatus `json:"status"`
	OrderID        *string      `json:"order_id,omitempty"`
	RegistrationID *uint        `json:"registration_id,omitempty"`
	Price          *float64     `json:"price,omitempty"`
	HolderName     *string      `json:"holder_name,omitempty"`
	SoldAt         *time.Time   `json:"sold_at,omitempty"`
}

// Session is one of the two fixed show times.
type Session struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Date       time.Time `json:"date"`
	TotalSeats int       `json:"total_seats"`
	SoldCount  int       `json:"sold_count"`
}

const (
	SessionMorning   = "morning"
	SessionAfternoon = "afternoon"
)
