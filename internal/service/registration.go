package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository"
)

var (
	ErrRegistrationNotFound  = repository.ErrRegistrationNotFound
	ErrRegistrationSubmitted = repository.ErrRegistrationSubmitted
	ErrNotRegistrationOwner  = errors.New("registration belongs to another account")
)

type RegistrationRepository interface {
	Create(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	FindByID(ctx context.Context, id uint) (domain.Registration, error)
	FindByUserID(ctx context.Context, userID string) ([]domain.Registration, error)
	List(ctx context.Context) ([]domain.Registration, error)
	Update(ctx context.Context, reg domain.Registration) (domain.Registration, error)
	Submit(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// Notifier delivers the organizer notification when a registration is
// submitted. Delivery is fire-and-forget: failures are logged, never
// surfaced to the school.
type Notifier interface {
	RegistrationSubmitted(ctx context.Context, reg domain.Registration) error
}

type RegistrationService struct {
	repo     RegistrationRepository
	notifier Notifier
}

func NewRegistrationService(repo RegistrationRepository, notifier Notifier) *RegistrationService {
	return &RegistrationService{repo: repo, notifier: notifier}
}

func (s *RegistrationService) Create(ctx context.Context, userID string, reg domain.Registration) (domain.Registration, error) {
	reg.UserID = userID
	reg.Status = domain.RegistrationDraft

	created, err := s.repo.Create(ctx, reg)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	return created, nil
}

func (s *RegistrationService) Get(ctx context.Context, userID string, id uint) (domain.Registration, error) {
	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return domain.Registration{}, ErrRegistrationNotFound
		}
		return domain.Registration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if reg.UserID != userID {
		return domain.Registration{}, ErrNotRegistrationOwner
	}
	return reg, nil
}

func (s *RegistrationService) ListByUser(ctx context.Context, userID string) ([]domain.Registration, error) {
	regs, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByUserID -> %w", err)
	}
	return regs, nil
}

// Update replaces a draft registration. Submitted registrations are
// frozen.
func (s *RegistrationService) Update(ctx context.Context, userID string, reg domain.Registration) (domain.Registration, error) {
	current, err := s.Get(ctx, userID, reg.ID)
	if err != nil {
		return domain.Registration{}, err
	}
	reg.UserID = current.UserID
	reg.Status = current.Status

	updated, err := s.repo.Update(ctx, reg)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationSubmitted) {
			return domain.Registration{}, ErrRegistrationSubmitted
		}
		return domain.Registration{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	return updated, nil
}

// Submit flips a draft to submitted and notifies the organizers by
// email. Submitting twice is a no-op and does not re-send the email.
func (s *RegistrationService) Submit(ctx context.Context, userID string, id uint) (domain.Registration, error) {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return domain.Registration{}, err
	}

	flipped, err := s.repo.Submit(ctx, id)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.Submit -> %w", err)
	}

	reg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Registration{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if flipped && s.notifier != nil {
		go func(reg domain.Registration) {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.notifier.RegistrationSubmitted(ctx, reg); err != nil {
				zap.L().Warn("registration notification failed",
					zap.Uint("registration_id", reg.ID),
					zap.Error(err))
			}
		}(reg)
	}

	return reg, nil
}

func (s *RegistrationService) ListAll(ctx context.Context) ([]domain.Registration, error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}
	return regs, nil
}

// Delete removes a registration and releases any tickets assigned to
// it. Admin only; the handler requires explicit confirmation first.
func (s *RegistrationService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegistrationNotFound) {
			return ErrRegistrationNotFound
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}
	return nil
}
