package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository"
)

// AssignmentRepository is the write path for organizer seat grants,
// sharing the ticket table (and its invariants) with the public flow.
type AssignmentRepository interface {
	FindSession(ctx context.Context, sessionID string) (domain.Session, error)
	AssignSeats(ctx context.Context, sessionID string, registrationID uint, holderName string, seats []domain.SeatAvailability) error
	UnassignSeats(ctx context.Context, sessionID string, registrationID uint) error
}

type RegistrationFinder interface {
	FindByID(ctx context.Context, id uint) (domain.Registration, error)
}

// AssignmentService lets an organizer grant seats to a registration
// group outside the money-taking flow. The batch is all-or-nothing: a
// single conflicting seat rejects the whole assignment and the error
// names the conflicts.
type AssignmentService struct {
	repo      AssignmentRepository
	regs      RegistrationFinder
	seatsByID map[string]domain.Seat
}

func NewAssignmentService(repo AssignmentRepository, regs RegistrationFinder, seats []domain.Seat) *AssignmentService {
	byID := make(map[string]domain.Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}
	return &AssignmentService{repo: repo, regs: regs, seatsByID: byID}
}

func (s *AssignmentService) AssignSeats(ctx context.Context, registrationID uint, sessionID string, seatIDs []string) error {
	reg, err := s.regs.FindByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}
		return fmt.Errorf("s.regs.FindByID -> %w", err)
	}
	if _, err := s.repo.FindSession(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("s.repo.FindSession -> %w", err)
	}

	seats := make([]domain.SeatAvailability, 0, len(seatIDs))
	for _, id := range dedupeSeatIDs(seatIDs) {
		seat, ok := s.seatsByID[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSeat, id)
		}
		seats = append(seats, domain.SeatAvailability{Seat: seat})
	}

	err = s.repo.AssignSeats(ctx, sessionID, registrationID, reg.GroupName, seats)
	if err != nil {
		if errors.Is(err, repository.ErrSeatsUnavailable) {
			return err
		}
		return fmt.Errorf("s.repo.AssignSeats -> %w", err)
	}

	zap.L().Info("seats assigned to registration",
		zap.Uint("registration_id", registrationID),
		zap.String("session_id", sessionID),
		zap.Int("seats", len(seatIDs)))
	return nil
}

// UnassignSeats releases every seat the registration holds in the
// session. Releasing a registration with no seats is a no-op.
func (s *AssignmentService) UnassignSeats(ctx context.Context, registrationID uint, sessionID string) error {
	if _, err := s.regs.FindByID(ctx, registrationID); err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}
		return fmt.Errorf("s.regs.FindByID -> %w", err)
	}

	if err := s.repo.UnassignSeats(ctx, sessionID, registrationID); err != nil {
		return fmt.Errorf("s.repo.UnassignSeats -> %w", err)
	}
	return nil
}
