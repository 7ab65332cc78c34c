package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNotPending  = errors.New("order is not pending")
	ErrSeatsUnavailable = errors.New("some seats are no longer available")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCouponInactive   = errors.New("coupon is inactive")
	ErrCouponExhausted  = errors.New("coupon has no uses left")
	ErrCouponExpired    = errors.New("coupon has expired")
)

// SeatConflictError reports which requested seats could not be taken.
// It unwraps to ErrSeatsUnavailable so callers can match either way.
type SeatConflictError struct {
	SeatIDs []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats unavailable: %s", strings.Join(e.SeatIDs, ", "))
}

func (e *SeatConflictError) Unwrap() error {
	return ErrSeatsUnavailable
}

// releasedTicket is the full set of fields cleared when a ticket goes
// back to available. Releasing anything less than all of them together
// is a bug.
func releasedTicket() map[string]interface{} {
	return map[string]interface{}{
		"status":          "available",
		"order_id":        nil,
		"registration_id": nil,
		"price":           nil,
		"holder_name":     nil,
		"sold_at":         nil,
	}
}

// SeatAssignment is one seat an organizer assigns to a registration.
type SeatAssignment struct {
	SeatID string
	Price  float64
}

// TicketCount aggregates a session's ticket rows.
type TicketCount struct {
	Total int
	Sold  int
}

// OrderTotals aggregates orders by payment status for the accounting
// view.
type OrderTotals struct {
	PaymentStatus string
	Count         int
	Amount        float64
}

type BookingDAO struct {
	db *gorm.DB
}

func NewBookingDAO(db *gorm.DB) *BookingDAO {
	return &BookingDAO{db: db}
}

func (d *BookingDAO) ListSessions(ctx context.Context) ([]Session, error) {
	var sessions []Session
	if err := d.db.WithContext(ctx).Order("date").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (d *BookingDAO) FindSession(ctx context.Context, sessionID string) (Session, error) {
	var session Session
	result := d.db.WithContext(ctx).First(&session, "id = ?", sessionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, result.Error
	}
	return session, nil
}

func (d *BookingDAO) FindTicketsBySession(ctx context.Context, sessionID string) ([]Ticket, error) {
	var tickets []Ticket
	if err := d.db.WithContext(ctx).Where("session_id = ?", sessionID).Find(&tickets).Error; err != nil {
		return nil, err
	}
	return tickets, nil
}

// TicketCounts returns total and sold counters per session id.
func (d *BookingDAO) TicketCounts(ctx context.Context) (map[string]TicketCount, error) {
	var rows []struct {
		SessionID string
		Status    string
		N         int
	}
	err := d.db.WithContext(ctx).
		Model(&Ticket{}).
		Select("session_id, status, count(*) as n").
		Group("session_id, status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]TicketCount)
	for _, r := range rows {
		c := counts[r.SessionID]
		c.Total += r.N
		if r.Status != "available" {
			c.Sold += r.N
		}
		counts[r.SessionID] = c
	}
	return counts, nil
}

// CreateOrderWithTickets performs the whole purchase as one database
// transaction: the guarded coupon redemption, the order insert and the
// conditional ticket flip. The ticket UPDATE only touches rows whose
// status is still available, so of two racing purchases for the same
// seat exactly one sees its full row count; the other rolls back with
// a SeatConflictError.
func (d *BookingDAO) CreateOrderWithTickets(ctx context.Context, order Order, sessionID string, seatIDs []string, priceEach float64) (Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	now := time.Now()

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.CouponID != nil {
			if err := redeemCoupon(tx, *order.CouponID, now); err != nil {
				return err
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		result := tx.Model(&Ticket{}).
			Where("session_id = ? AND seat_id IN ? AND status = ?", sessionID, seatIDs, "available").
			Updates(map[string]interface{}{
				"status":      "sold",
				"order_id":    order.ID,
				"price":       priceEach,
				"holder_name": order.CustomerName,
				"sold_at":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if int(result.RowsAffected) != len(seatIDs) {
			conflicts, err := conflictingSeats(tx, sessionID, seatIDs, order.ID)
			if err != nil {
				return err
			}
			return &SeatConflictError{SeatIDs: conflicts}
		}

		return nil
	})
	if err != nil {
		return Order{}, err
	}

	return order, nil
}

// redeemCoupon increments current_uses with every redeemability
// predicate in the WHERE clause, so concurrent redemptions can never
// push the counter past max_uses. When the guarded update hits nothing
// the coupon is re-read to name the reason.
func redeemCoupon(tx *gorm.DB, couponID uint, now time.Time) error {
	result := tx.Model(&Coupon{}).
		Where("id = ? AND is_active = ?", couponID, true).
		Where("max_uses IS NULL OR current_uses < max_uses").
		Where("expires_at IS NULL OR expires_at > ?", now).
		Update("current_uses", gorm.Expr("current_uses + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 1 {
		return nil
	}

	var coupon Coupon
	if err := tx.First(&coupon, "id = ?", couponID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCouponNotFound
		}
		return err
	}
	switch {
	case !coupon.IsActive:
		return ErrCouponInactive
	case coupon.ExpiresAt != nil && coupon.ExpiresAt.Before(now):
		return ErrCouponExpired
	default:
		return ErrCouponExhausted
	}
}

// conflictingSeats lists the requested seats not owned by orderID
// after a partial flip: seats someone else holds, plus seats with no
// ticket row at all (incomplete seeding).
func conflictingSeats(tx *gorm.DB, sessionID string, seatIDs []string, orderID string) ([]string, error) {
	var owned []string
	err := tx.Model(&Ticket{}).
		Where("session_id = ? AND seat_id IN ? AND order_id = ?", sessionID, seatIDs, orderID).
		Pluck("seat_id", &owned).Error
	if err != nil {
		return nil, err
	}

	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}
	var conflicts []string
	for _, id := range seatIDs {
		if !ownedSet[id] {
			conflicts = append(conflicts, id)
		}
	}
	return conflicts, nil
}

// ConfirmPayment flips a pending order to paid. Confirming an
// already-paid order is a no-op success.
func (d *BookingDAO) ConfirmPayment(ctx context.Context, orderID string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Order{}).
			Where("id = ? AND payment_status = ?", orderID, "pending").
			Update("payment_status", "paid")
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 1 {
			return nil
		}

		var order Order
		if err := tx.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.PaymentStatus == "paid" {
			return nil
		}
		return ErrOrderNotPending
	})
}

// CancelOrder releases every ticket of the order and marks it
// cancelled, in one transaction so no window exists where the order is
// cancelled but its seats still show sold. Cancelling an order that is
// already cancelled or expired changes nothing.
func (d *BookingDAO) CancelOrder(ctx context.Context, orderID string) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.PaymentStatus == "cancelled" || order.PaymentStatus == "expired" {
			return nil
		}

		err := tx.Model(&Ticket{}).
			Where("order_id = ?", orderID).
			Updates(releasedTicket()).Error
		if err != nil {
			return err
		}

		return tx.Model(&Order{}).
			Where("id = ?", orderID).
			Update("payment_status", "cancelled").Error
	})
}

// CleanupExpired releases every pending order created before cutoff
// and marks it expired. The order ids are pinned first so a seat
// released here can never be attributed to another order swept in the
// same pass.
func (d *BookingDAO) CleanupExpired(ctx context.Context, cutoff time.Time) (int, error) {
	var expired int
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []string
		err := tx.Model(&Order{}).
			Where("payment_status = ? AND created_at < ?", "pending", cutoff).
			Pluck("id", &ids).Error
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		err = tx.Model(&Ticket{}).
			Where("order_id IN ?", ids).
			Updates(releasedTicket()).Error
		if err != nil {
			return err
		}

		err = tx.Model(&Order{}).
			Where("id IN ?", ids).
			Update("payment_status", "expired").Error
		if err != nil {
			return err
		}

		expired = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return expired, nil
}

// Reset wipes orders and registrations and releases every ticket.
// Pre-launch rehearsals only; there is no undo.
func (d *BookingDAO) Reset(ctx context.Context) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Ticket{}).
			Where("status <> ?", "available").
			Updates(releasedTicket()).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&Order{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&RegistrationParticipant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&RegistrationResponsible{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&Registration{}).Error
	})
}

func (d *BookingDAO) FindOrder(ctx context.Context, orderID string) (Order, error) {
	var order Order
	result := d.db.WithContext(ctx).Preload("Tickets").First(&order, "id = ?", orderID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Order{}, ErrOrderNotFound
		}
		return Order{}, result.Error
	}
	return order, nil
}

func (d *BookingDAO) ListOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := d.db.WithContext(ctx).Preload("Tickets").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (d *BookingDAO) OrderTotals(ctx context.Context) ([]OrderTotals, error) {
	var totals []OrderTotals
	err := d.db.WithContext(ctx).
		Model(&Order{}).
		Select("payment_status, count(*) as count, coalesce(sum(total_amount), 0) as amount").
		Group("payment_status").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

// AssignSeats force-assigns seats to a registration. The whole batch
// is one transaction: any seat not currently available aborts it and
// the error names the conflicting seats.
func (d *BookingDAO) AssignSeats(ctx context.Context, sessionID string, registrationID uint, holderName string, seats []SeatAssignment) error {
	now := time.Now()
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conflicts []string
		for _, s := range seats {
			result := tx.Model(&Ticket{}).
				Where("session_id = ? AND seat_id = ? AND status = ?", sessionID, s.SeatID, "available").
				Updates(map[string]interface{}{
					"status":          "sold",
					"registration_id": registrationID,
					"price":           s.Price,
					"holder_name":     holderName,
					"sold_at":         now,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected != 1 {
				conflicts = append(conflicts, s.SeatID)
			}
		}
		if len(conflicts) > 0 {
			return &SeatConflictError{SeatIDs: conflicts}
		}
		return nil
	})
}

// UnassignSeats releases every ticket a registration holds in a
// session.
func (d *BookingDAO) UnassignSeats(ctx context.Context, sessionID string, registrationID uint) error {
	return d.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("session_id = ? AND registration_id = ?", sessionID, registrationID).
		Updates(releasedTicket()).Error
}

// Seed upserts sessions and seats and inserts one available ticket per
// (session, seat) pair. Conflicts on the ticket composite key are
// ignored so re-seeding never clobbers live sales.
func (d *BookingDAO) Seed(ctx context.Context, sessions []Session, seats []Seat, tickets []Ticket) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(&sessions).Error
		if err != nil {
			return err
		}

		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).CreateInBatches(&seats, 500).Error
		if err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "seat_id"}},
			DoNothing: true,
		}).CreateInBatches(&tickets, 500).Error
	})
}

// CountTickets backs the startup seeding invariant: the count must
// equal sessions x seats before booking opens.
func (d *BookingDAO) CountTickets(ctx context.Context) (int64, error) {
	var n int64
	if err := d.db.WithContext(ctx).Model(&Ticket{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
