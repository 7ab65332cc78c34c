package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository"
)

type fakeAssignmentRepo struct {
	sessions map[string]domain.Session
	taken    map[string]bool
	assigned map[uint][]string
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		sessions: map[string]domain.Session{
			domain.SessionMorning: {ID: domain.SessionMorning},
		},
		taken:    make(map[string]bool),
		assigned: make(map[uint][]string),
	}
}

func (r *fakeAssignmentRepo) FindSession(_ context.Context, sessionID string) (domain.Session, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, repository.ErrSessionNotFound
	}
	return s, nil
}

func (r *fakeAssignmentRepo) AssignSeats(_ context.Context, sessionID string, registrationID uint, _ string, seats []domain.SeatAvailability) error {
	var conflicts []string
	for _, s := range seats {
		if r.taken[sessionID+"|"+s.ID] {
			conflicts = append(conflicts, s.ID)
		}
	}
	if len(conflicts) > 0 {
		return &repository.SeatConflictError{SeatIDs: conflicts}
	}
	for _, s := range seats {
		r.taken[sessionID+"|"+s.ID] = true
		r.assigned[registrationID] = append(r.assigned[registrationID], s.ID)
	}
	return nil
}

func (r *fakeAssignmentRepo) UnassignSeats(_ context.Context, sessionID string, registrationID uint) error {
	for _, id := range r.assigned[registrationID] {
		delete(r.taken, sessionID+"|"+id)
	}
	delete(r.assigned, registrationID)
	return nil
}

type fakeRegistrationFinder struct {
	regs map[uint]domain.Registration
}

func (f *fakeRegistrationFinder) FindByID(_ context.Context, id uint) (domain.Registration, error) {
	reg, ok := f.regs[id]
	if !ok {
		return domain.Registration{}, repository.ErrRegistrationNotFound
	}
	return reg, nil
}

func newTestAssignmentService(t *testing.T) (*AssignmentService, *fakeAssignmentRepo) {
	t.Helper()

	repo := newFakeAssignmentRepo()
	regs := &fakeRegistrationFinder{regs: map[uint]domain.Registration{
		1: {ID: 1, GroupName: "Las Estrellas"},
	}}
	return NewAssignmentService(repo, regs, testSeats(t)), repo
}

func TestAssignmentService_AssignSeats(t *testing.T) {
	svc, repo := newTestAssignmentService(t)

	err := svc.AssignSeats(context.Background(), 1, domain.SessionMorning, []string{"R1-1", "R1-3"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"R1-1", "R1-3"}, repo.assigned[1])
}

func TestAssignmentService_AssignSeats_UnknownRegistration(t *testing.T) {
	svc, _ := newTestAssignmentService(t)

	err := svc.AssignSeats(context.Background(), 42, domain.SessionMorning, []string{"R1-1"})

	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestAssignmentService_AssignSeats_UnknownSession(t *testing.T) {
	svc, _ := newTestAssignmentService(t)

	err := svc.AssignSeats(context.Background(), 1, "evening", []string{"R1-1"})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestAssignmentService_AssignSeats_UnknownSeat(t *testing.T) {
	svc, _ := newTestAssignmentService(t)

	err := svc.AssignSeats(context.Background(), 1, domain.SessionMorning, []string{"R99-1"})

	assert.ErrorIs(t, err, ErrUnknownSeat)
}

func TestAssignmentService_AssignSeats_ConflictRejectsWholeBatch(t *testing.T) {
	svc, repo := newTestAssignmentService(t)

	require.NoError(t, svc.AssignSeats(context.Background(), 1, domain.SessionMorning, []string{"R1-1"}))

	err := svc.AssignSeats(context.Background(), 1, domain.SessionMorning, []string{"R1-1", "R1-3"})

	assert.ErrorIs(t, err, ErrSeatsUnavailable)
	var conflict *SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"R1-1"}, conflict.SeatIDs)
	assert.False(t, repo.taken[domain.SessionMorning+"|R1-3"])
}

func TestAssignmentService_UnassignSeats(t *testing.T) {
	svc, repo := newTestAssignmentService(t)

	require.NoError(t, svc.AssignSeats(context.Background(), 1, domain.SessionMorning, []string{"R1-1"}))
	require.NoError(t, svc.UnassignSeats(context.Background(), 1, domain.SessionMorning))

	assert.False(t, repo.taken[domain.SessionMorning+"|R1-1"])

	// A registration holding nothing unassigns without error.
	assert.NoError(t, svc.UnassignSeats(context.Background(), 1, domain.SessionMorning))
}
