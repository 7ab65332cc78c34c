package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSeats_Deterministic(t *testing.T) {
	first, err := GenerateSeats()
	require.NoError(t, err)
	second, err := GenerateSeats()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateSeats_UniqueIDs(t *testing.T) {
	seats, err := GenerateSeats()
	require.NoError(t, err)

	seen := make(map[string]bool, len(seats))
	for _, s := range seats {
		assert.Falsef(t, seen[s.ID], "seat id %v generated twice", s.ID)
		seen[s.ID] = true
	}
}

func TestGenerate_RowOrdering(t *testing.T) {
	seats, err := generate([]RowDefinition{
		{Row: 1, MaxLeft: 5, MaxRight: 6, Zone: ZonePreferente},
	})
	require.NoError(t, err)

	ids := make([]string, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, s.ID)
	}

	// Odd numbers ascending, then even numbers ascending.
	assert.Equal(t, []string{"R1-1", "R1-3", "R1-5", "R1-2", "R1-4", "R1-6"}, ids)
}

func TestGenerateSeats_Row15Asymmetry(t *testing.T) {
	seats, err := GenerateSeats()
	require.NoError(t, err)

	var maxOdd, maxEven int
	for _, s := range seats {
		if s.Row != 15 {
			continue
		}
		if s.Number%2 == 1 && s.Number > maxOdd {
			maxOdd = s.Number
		}
		if s.Number%2 == 0 && s.Number > maxEven {
			maxEven = s.Number
		}
	}

	assert.Equal(t, 39, maxOdd)
	assert.Equal(t, 38, maxEven)
}

func TestGenerateSeats_PMROverrides(t *testing.T) {
	seats, err := GenerateSeats()
	require.NoError(t, err)

	byID := make(map[string]Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	for _, id := range []string{"R9-31", "R9-32", "R9-33", "R9-34"} {
		seat, ok := byID[id]
		require.Truef(t, ok, "seat %v missing", id)
		assert.Equal(t, ZonePMR, seat.Zone)
		assert.Equal(t, SeatPMR, seat.Type)
	}

	// The rest of row 9 keeps the row's zone.
	assert.Equal(t, ZonePreferente, byID["R9-1"].Zone)
	assert.Equal(t, SeatStandard, byID["R9-1"].Type)
}

func TestGenerateSeats_ZoneBoundaries(t *testing.T) {
	seats, err := GenerateSeats()
	require.NoError(t, err)

	byID := make(map[string]Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}

	assert.Equal(t, ZonePreferente, byID["R1-1"].Zone)
	assert.Equal(t, ZonePreferente, byID["R8-33"].Zone)
	assert.Equal(t, ZoneSegunda, byID["R10-1"].Zone)
	assert.Equal(t, ZoneSegunda, byID["R18-40"].Zone)
	assert.Equal(t, ZoneTercera, byID["R19-1"].Zone)
	assert.Equal(t, ZoneTercera, byID["R27-21"].Zone)
}

func TestGenerate_InvalidRows(t *testing.T) {
	tests := []struct {
		name string
		rows []RowDefinition
	}{
		{
			name: "empty",
			rows: nil,
		},
		{
			name: "non-positive row",
			rows: []RowDefinition{{Row: 0, MaxLeft: 1, MaxRight: 2}},
		},
		{
			name: "duplicate row",
			rows: []RowDefinition{
				{Row: 1, MaxLeft: 1, MaxRight: 2},
				{Row: 1, MaxLeft: 3, MaxRight: 4},
			},
		},
		{
			name: "negative cap",
			rows: []RowDefinition{{Row: 1, MaxLeft: -1, MaxRight: 2}},
		},
		{
			name: "even maxLeft",
			rows: []RowDefinition{{Row: 1, MaxLeft: 4, MaxRight: 2}},
		},
		{
			name: "odd maxRight",
			rows: []RowDefinition{{Row: 1, MaxLeft: 3, MaxRight: 5}},
		},
		{
			name: "zero seats",
			rows: []RowDefinition{{Row: 1, MaxLeft: 0, MaxRight: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generate(tt.rows)

			assert.Error(t, err)
		})
	}
}

func TestSeatID(t *testing.T) {
	assert.Equal(t, "R1-1", SeatID(1, 1))
	assert.Equal(t, "R15-39", SeatID(15, 39))
}
