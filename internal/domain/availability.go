package domain

// SeatAvailability is one seat of the canonical layout joined with its
// live ticket state for a session.
type SeatAvailability struct {
	Seat
	Status TicketStatus `json:"status"`
	Price  float64      `json:"price"`
}

// MergeAvailability joins the canonical seat list with a session's
// ticket rows. Every canonical seat appears exactly once in the
// result; seats with no ticket row default to available. The second
// return value counts those defaults so the caller can flag incomplete
// seeding.
func MergeAvailability(seats []Seat, tickets []Ticket) ([]SeatAvailability, int) {
	byseat := make(map[string]Ticket, len(tickets))
	for _, t := range tickets {
		byseat[t.SeatID] = t
	}

	merged := make([]SeatAvailability, 0, len(seats))
	missing := 0
	for _, s := range seats {
		sa := SeatAvailability{Seat: s, Status: TicketAvailable, Price: PublicPrice}
		if t, ok := byseat[s.ID]; ok {
			sa.Status = t.Status
			if t.Price != nil {
				sa.Price = *t.Price
			}
		} else {
			missing++
		}
		merged = append(merged, sa)
	}

	return merged, missing
}
