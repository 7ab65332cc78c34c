package domain

import "time"

// DefaultSessions returns the two fixed show times of the event. These
// are seeded once and treated as static reference data afterwards.
func DefaultSessions() []Session {
	return []Session{
		{
			ID:   SessionMorning,
			Name: "Sesión Mañana",
			Date: time.Date(2026, time.June, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:   SessionAfternoon,
			Name: "Sesión Tarde",
			Date: time.Date(2026, time.June, 20, 15, 30, 0, 0, time.UTC),
		},
	}
}
