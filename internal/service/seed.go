package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/danceinaction/booking-api/internal/domain"
)

type SeedRepository interface {
	Seed(ctx context.Context, sessions []domain.Session, seats []domain.Seat) error
	CountTickets(ctx context.Context) (int64, error)
}

// SeedService owns the one-time initialization of sessions, seats and
// their availability tickets. Seeding is idempotent: existing ticket
// rows are left untouched so a re-run never clobbers live sales.
type SeedService struct {
	repo  SeedRepository
	seats []domain.Seat
}

func NewSeedService(repo SeedRepository, seats []domain.Seat) *SeedService {
	return &SeedService{repo: repo, seats: seats}
}

func (s *SeedService) Seed(ctx context.Context) (int, error) {
	sessions := domain.DefaultSessions()
	if err := s.repo.Seed(ctx, sessions, s.seats); err != nil {
		return 0, fmt.Errorf("s.repo.Seed -> %w", err)
	}

	zap.L().Info("seeded venue data",
		zap.Int("sessions", len(sessions)),
		zap.Int("seats", len(s.seats)))
	return len(s.seats), nil
}

// VerifySeeded checks the booking invariant that every (session, seat)
// pair has exactly one ticket row. Run at startup; a mismatch means
// the seeding endpoint must be hit before booking opens.
func (s *SeedService) VerifySeeded(ctx context.Context) error {
	count, err := s.repo.CountTickets(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.CountTickets -> %w", err)
	}

	want := int64(len(s.seats) * len(domain.DefaultSessions()))
	if count != want {
		zap.L().Warn("ticket seeding incomplete",
			zap.Int64("tickets", count),
			zap.Int64("expected", want))
		return fmt.Errorf("ticket count %d, expected %d: run /api/v1/admin/seed before opening booking", count, want)
	}
	return nil
}
