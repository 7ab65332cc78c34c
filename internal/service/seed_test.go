package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceinaction/booking-api/internal/domain"
)

type fakeSeedRepo struct {
	sessions []domain.Session
	seats    []domain.Seat
	tickets  int64
}

func (r *fakeSeedRepo) Seed(_ context.Context, sessions []domain.Session, seats []domain.Seat) error {
	r.sessions = sessions
	r.seats = seats
	r.tickets = int64(len(sessions) * len(seats))
	return nil
}

func (r *fakeSeedRepo) CountTickets(_ context.Context) (int64, error) {
	return r.tickets, nil
}

func TestSeedService_Seed(t *testing.T) {
	repo := &fakeSeedRepo{}
	svc := NewSeedService(repo, testSeats(t))

	count, err := svc.Seed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(repo.seats), count)
	require.Len(t, repo.sessions, 2)
	assert.Equal(t, domain.SessionMorning, repo.sessions[0].ID)
	assert.Equal(t, domain.SessionAfternoon, repo.sessions[1].ID)

	// Seeded and verified.
	assert.NoError(t, svc.VerifySeeded(context.Background()))
}

func TestSeedService_VerifySeeded_Incomplete(t *testing.T) {
	repo := &fakeSeedRepo{tickets: 10}
	svc := NewSeedService(repo, testSeats(t))

	assert.Error(t, svc.VerifySeeded(context.Background()))
}
