package domain

import (
	"errors"
	"fmt"
)

// RowDefinition describes one physical row of the venue: odd seat
// numbers run 1..MaxLeft on the left half, even numbers 2..MaxRight on
// the right half, diverging outward from the center aisle.
type RowDefinition struct {
	Row      int
	MaxLeft  int
	MaxRight int
	Zone     Zone
}

// rowDefinitions is the exact layout of the reference venue.
var rowDefinitions = []RowDefinition{
	// Preferente (rows 1-9)
	{Row: 1, MaxLeft: 27, MaxRight: 28, Zone: ZonePreferente},
	{Row: 2, MaxLeft: 29, MaxRight: 30, Zone: ZonePreferente},
	{Row: 3, MaxLeft: 31, MaxRight: 32, Zone: ZonePreferente},
	{Row: 4, MaxLeft: 31, MaxRight: 32, Zone: ZonePreferente},
	{Row: 5, MaxLeft: 31, MaxRight: 32, Zone: ZonePreferente},
	{Row: 6, MaxLeft: 31, MaxRight: 32, Zone: ZonePreferente},
	{Row: 7, MaxLeft: 31, MaxRight: 32, Zone: ZonePreferente},
	{Row: 8, MaxLeft: 33, MaxRight: 34, Zone: ZonePreferente},
	{Row: 9, MaxLeft: 33, MaxRight: 34, Zone: ZonePreferente},

	// Zona 2 (rows 10-18). Row 15 really does have a shorter right side.
	{Row: 10, MaxLeft: 35, MaxRight: 36, Zone: ZoneSegunda},
	{Row: 11, MaxLeft: 35, MaxRight: 36, Zone: ZoneSegunda},
	{Row: 12, MaxLeft: 37, MaxRight: 38, Zone: ZoneSegunda},
	{Row: 13, MaxLeft: 37, MaxRight: 38, Zone: ZoneSegunda},
	{Row: 14, MaxLeft: 37, MaxRight: 38, Zone: ZoneSegunda},
	{Row: 15, MaxLeft: 39, MaxRight: 38, Zone: ZoneSegunda},
	{Row: 16, MaxLeft: 39, MaxRight: 40, Zone: ZoneSegunda},
	{Row: 17, MaxLeft: 39, MaxRight: 40, Zone: ZoneSegunda},
	{Row: 18, MaxLeft: 39, MaxRight: 40, Zone: ZoneSegunda},

	// Zona 3 (rows 19-27)
	{Row: 19, MaxLeft: 43, MaxRight: 44, Zone: ZoneTercera},
	{Row: 20, MaxLeft: 43, MaxRight: 44, Zone: ZoneTercera},
	{Row: 21, MaxLeft: 43, MaxRight: 44, Zone: ZoneTercera},
	{Row: 22, MaxLeft: 43, MaxRight: 44, Zone: ZoneTercera},
	{Row: 23, MaxLeft: 43, MaxRight: 44, Zone: ZoneTercera},
	{Row: 24, MaxLeft: 43, MaxRight: 44, Zone: ZoneTercera},
	{Row: 25, MaxLeft: 21, MaxRight: 22, Zone: ZoneTercera},
	{Row: 26, MaxLeft: 21, MaxRight: 22, Zone: ZoneTercera},
	{Row: 27, MaxLeft: 21, MaxRight: 22, Zone: ZoneTercera},
}

// pmrSeats are the accessibility seats embedded in the Preferente
// block. They override the row's nominal zone.
var pmrSeats = map[[2]int]bool{
	{9, 31}: true,
	{9, 33}: true,
	{9, 32}: true,
	{9, 34}: true,
}

// SeatID derives the stable seat identifier from row and number.
// Ticket rows reference these ids persistently, so the format must
// never change.
func SeatID(row, number int) string {
	return fmt.Sprintf("R%d-%d", row, number)
}

// GenerateSeats expands the row configuration into the full seat list.
// It is a pure function: the same configuration always yields the same
// seats in the same order.
func GenerateSeats() ([]Seat, error) {
	return generate(rowDefinitions)
}

func generate(rows []RowDefinition) ([]Seat, error) {
	if err := validateRows(rows); err != nil {
		return nil, err
	}

	var seats []Seat
	for _, def := range rows {
		for n := 1; n <= def.MaxLeft; n += 2 {
			seats = append(seats, newSeat(def, n))
		}
		for n := 2; n <= def.MaxRight; n += 2 {
			seats = append(seats, newSeat(def, n))
		}
	}

	return seats, nil
}

func newSeat(def RowDefinition, number int) Seat {
	zone := def.Zone
	typ := SeatStandard
	if pmrSeats[[2]int{def.Row, number}] {
		zone = ZonePMR
		typ = SeatPMR
	}

	return Seat{
		ID:     SeatID(def.Row, number),
		Zone:   zone,
		Row:    def.Row,
		Number: number,
		Type:   typ,
	}
}

func validateRows(rows []RowDefinition) error {
	if len(rows) == 0 {
		return errors.New("layout: no row definitions")
	}

	seen := make(map[int]bool, len(rows))
	for _, def := range rows {
		if def.Row <= 0 {
			return fmt.Errorf("layout: row %d is not positive", def.Row)
		}
		if seen[def.Row] {
			return fmt.Errorf("layout: row %d defined twice", def.Row)
		}
		seen[def.Row] = true

		if def.MaxLeft < 0 || def.MaxRight < 0 {
			return fmt.Errorf("layout: row %d has negative seat caps", def.Row)
		}
		if def.MaxLeft > 0 && def.MaxLeft%2 == 0 {
			return fmt.Errorf("layout: row %d maxLeft %d must be odd", def.Row, def.MaxLeft)
		}
		if def.MaxRight > 0 && def.MaxRight%2 != 0 {
			return fmt.Errorf("layout: row %d maxRight %d must be even", def.Row, def.MaxRight)
		}
		if def.MaxLeft == 0 && def.MaxRight == 0 {
			return fmt.Errorf("layout: row %d has no seats", def.Row)
		}
	}

	return nil
}
