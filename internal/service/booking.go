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
	ErrSessionNotFound  = repository.ErrSessionNotFound
	ErrOrderNotFound    = repository.ErrOrderNotFound
	ErrOrderNotPending  = repository.ErrOrderNotPending
	ErrSeatsUnavailable = repository.ErrSeatsUnavailable
	ErrCouponNotFound   = repository.ErrCouponNotFound
	ErrCouponInactive   = repository.ErrCouponInactive
	ErrCouponExhausted  = repository.ErrCouponExhausted
	ErrCouponExpired    = repository.ErrCouponExpired

	ErrUnknownSeat = errors.New("unknown seat id")
)

// SeatConflictError names the seats lost to a concurrent buyer. It
// unwraps to ErrSeatsUnavailable.
type SeatConflictError = repository.SeatConflictError

// BookingRepository is everything the booking state machine needs from
// persistence. CreateOrder must apply the order insert, the ticket
// flip and the coupon redemption as one atomic unit.
type BookingRepository interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
	FindSession(ctx context.Context, sessionID string) (domain.Session, error)
	FindTicketsBySession(ctx context.Context, sessionID string) ([]domain.Ticket, error)
	CreateOrder(ctx context.Context, order domain.Order, sessionID string, seatIDs []string, priceEach float64) (domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID string) error
	CancelOrder(ctx context.Context, orderID string) error
	CleanupExpired(ctx context.Context, cutoff time.Time) (int, error)
	Reset(ctx context.Context) error
	FindOrder(ctx context.Context, orderID string) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	Revenue(ctx context.Context) ([]repository.RevenueLine, error)
}

// CouponFinder is the slice of the coupon repository the purchase flow
// uses to price a coupon before the authoritative in-transaction
// redemption.
type CouponFinder interface {
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
}

// PurchaseInput is a public seat purchase request.
type PurchaseInput struct {
	SessionID     string
	SeatIDs       []string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	CouponCode    string
}

type BookingService struct {
	repo      BookingRepository
	coupons   CouponFinder
	seatsByID map[string]domain.Seat
	seats     []domain.Seat
	orderTTL  time.Duration
}

func NewBookingService(repo BookingRepository, coupons CouponFinder, seats []domain.Seat, orderTTL time.Duration) *BookingService {
	byID := make(map[string]domain.Seat, len(seats))
	for _, s := range seats {
		byID[s.ID] = s
	}
	return &BookingService{
		repo:      repo,
		coupons:   coupons,
		seatsByID: byID,
		seats:     seats,
		orderTTL:  orderTTL,
	}
}

func (s *BookingService) Sessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListSessions -> %w", err)
	}
	return sessions, nil
}

// SeatMap joins the canonical layout with the session's live tickets.
func (s *BookingService) SeatMap(ctx context.Context, sessionID string) ([]domain.SeatAvailability, error) {
	if _, err := s.repo.FindSession(ctx, sessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("s.repo.FindSession -> %w", err)
	}

	tickets, err := s.repo.FindTicketsBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTicketsBySession -> %w", err)
	}

	merged, missing := domain.MergeAvailability(s.seats, tickets)
	if missing > 0 {
		zap.L().Warn("seat map has seats without ticket rows, seeding is incomplete",
			zap.String("session_id", sessionID),
			zap.Int("missing", missing))
	}
	return merged, nil
}

// Purchase creates a pending order for the requested seats. The
// availability check happens inside the repository's transaction as a
// conditional flip; a stale seat map can therefore never produce a
// double sale, only a seat-conflict error here.
func (s *BookingService) Purchase(ctx context.Context, in PurchaseInput) (domain.Order, error) {
	if _, err := s.repo.FindSession(ctx, in.SessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return domain.Order{}, ErrSessionNotFound
		}
		return domain.Order{}, fmt.Errorf("s.repo.FindSession -> %w", err)
	}
	for _, id := range in.SeatIDs {
		if _, ok := s.seatsByID[id]; !ok {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrUnknownSeat, id)
		}
	}

	// A doubled seat id would be priced twice and then flip only one
	// ticket row, surfacing as a phantom conflict.
	seatIDs := dedupeSeatIDs(in.SeatIDs)

	total := domain.PublicPrice * float64(len(seatIDs))

	var couponID *uint
	var discount float64
	if in.CouponCode != "" {
		coupon, err := s.redeemableCoupon(ctx, in.CouponCode)
		if err != nil {
			return domain.Order{}, err
		}
		discount = coupon.Discount(total)
		total -= discount
		couponID = &coupon.ID
	}

	order := domain.Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		TotalAmount:     total,
		PaymentStatus:   domain.PaymentPending,
		PaymentProvider: "manual",
		CouponID:        couponID,
		DiscountApplied: discount,
	}

	created, err := s.repo.CreateOrder(ctx, order, in.SessionID, seatIDs, domain.PublicPrice)
	if err != nil {
		if isBookingConflict(err) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("s.repo.CreateOrder -> %w", err)
	}

	zap.L().Info("order created",
		zap.String("order_id", created.ID),
		zap.String("session_id", in.SessionID),
		zap.Int("seats", len(seatIDs)),
		zap.Float64("total", created.TotalAmount))
	return created, nil
}

func dedupeSeatIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// redeemableCoupon prices the coupon for the order total. It is only a
// pre-check: the counter increment inside the purchase transaction
// re-validates everything, because usage can change between here and
// commit.
func (s *BookingService) redeemableCoupon(ctx context.Context, code string) (domain.Coupon, error) {
	coupon, err := s.coupons.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return domain.Coupon{}, ErrCouponNotFound
		}
		return domain.Coupon{}, fmt.Errorf("s.coupons.FindByCode -> %w", err)
	}
	switch {
	case !coupon.IsActive:
		return domain.Coupon{}, ErrCouponInactive
	case coupon.UsesExhausted():
		return domain.Coupon{}, ErrCouponExhausted
	case coupon.Expired(time.Now()):
		return domain.Coupon{}, ErrCouponExpired
	}
	return coupon, nil
}

// ConfirmPayment marks a pending order paid after the admin verified
// the Bizum/transfer receipt. Confirming twice is a no-op success.
func (s *BookingService) ConfirmPayment(ctx context.Context, orderID string) error {
	err := s.repo.ConfirmPayment(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) || errors.Is(err, repository.ErrOrderNotPending) {
			return err
		}
		return fmt.Errorf("s.repo.ConfirmPayment -> %w", err)
	}
	return nil
}

// CancelOrder releases the order's tickets and marks it cancelled.
// Cancelling an already-cancelled order changes nothing.
func (s *BookingService) CancelOrder(ctx context.Context, orderID string) error {
	err := s.repo.CancelOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("s.repo.CancelOrder -> %w", err)
	}
	return nil
}

// CleanupExpiredOrders sweeps pending orders older than the configured
// TTL, releasing their seats. Triggered by an admin, not a timer.
func (s *BookingService) CleanupExpiredOrders(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.orderTTL)
	count, err := s.repo.CleanupExpired(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("s.repo.CleanupExpired -> %w", err)
	}
	if count > 0 {
		zap.L().Info("expired pending orders", zap.Int("count", count))
	}
	return count, nil
}

// ResetApplicationData wipes orders and registrations and releases
// every ticket. Pre-launch rehearsals only.
func (s *BookingService) ResetApplicationData(ctx context.Context) error {
	if err := s.repo.Reset(ctx); err != nil {
		return fmt.Errorf("s.repo.Reset -> %w", err)
	}
	zap.L().Warn("application data reset")
	return nil
}

func (s *BookingService) Order(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := s.repo.FindOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domain.Order{}, ErrOrderNotFound
		}
		return domain.Order{}, fmt.Errorf("s.repo.FindOrder -> %w", err)
	}
	return order, nil
}

func (s *BookingService) Orders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListOrders -> %w", err)
	}
	return orders, nil
}

// Accounting summarises sessions and revenue for the admin dashboard.
type Accounting struct {
	Sessions []domain.Session         `json:"sessions"`
	Revenue  []repository.RevenueLine `json:"revenue"`
}

func (s *BookingService) Accounting(ctx context.Context) (Accounting, error) {
	sessions, err := s.repo.ListSessions(ctx)
	if err != nil {
		return Accounting{}, fmt.Errorf("s.repo.ListSessions -> %w", err)
	}
	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return Accounting{}, fmt.Errorf("s.repo.Revenue -> %w", err)
	}
	return Accounting{Sessions: sessions, Revenue: revenue}, nil
}

// isBookingConflict distinguishes expected user-facing failures from
// infrastructure errors, which get wrapped instead.
func isBookingConflict(err error) bool {
	return errors.Is(err, repository.ErrSeatsUnavailable) ||
		errors.Is(err, repository.ErrCouponNotFound) ||
		errors.Is(err, repository.ErrCouponInactive) ||
		errors.Is(err, repository.ErrCouponExhausted) ||
		errors.Is(err, repository.ErrCouponExpired)
}
