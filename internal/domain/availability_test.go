package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAvailability_EverySeatAppearsOnce(t *testing.T) {
	seats, err := GenerateSeats()
	require.NoError(t, err)

	merged, missing := MergeAvailability(seats, nil)

	assert.Len(t, merged, len(seats))
	assert.Equal(t, len(seats), missing)
	for i, sa := range merged {
		assert.Equal(t, seats[i].ID, sa.ID)
		assert.Equal(t, TicketAvailable, sa.Status)
		assert.Equal(t, PublicPrice, sa.Price)
	}
}

func TestMergeAvailability_TicketStateWins(t *testing.T) {
	seats := []Seat{
		{ID: "R1-1", Zone: ZonePreferente, Row: 1, Number: 1, Type: SeatStandard},
		{ID: "R1-3", Zone: ZonePreferente, Row: 1, Number: 3, Type: SeatStandard},
		{ID: "R1-2", Zone: ZonePreferente, Row: 1, Number: 2, Type: SeatStandard},
	}
	price := 12.0
	tickets := []Ticket{
		{SeatID: "R1-1", Status: TicketSold, Price: &price},
		{SeatID: "R1-3", Status: TicketReserved},
	}

	merged, missing := MergeAvailability(seats, tickets)

	require.Len(t, merged, 3)
	assert.Equal(t, 1, missing)

	assert.Equal(t, TicketSold, merged[0].Status)
	assert.Equal(t, 12.0, merged[0].Price)
	assert.Equal(t, TicketReserved, merged[1].Status)
	assert.Equal(t, PublicPrice, merged[1].Price)
	assert.Equal(t, TicketAvailable, merged[2].Status)
}

func TestMergeAvailability_IgnoresOrphanTickets(t *testing.T) {
	seats := []Seat{{ID: "R1-1"}}
	tickets := []Ticket{
		{SeatID: "R1-1", Status: TicketSold},
		{SeatID: "R99-99", Status: TicketSold},
	}

	merged, missing := MergeAvailability(seats, tickets)

	assert.Len(t, merged, 1)
	assert.Zero(t, missing)
}
