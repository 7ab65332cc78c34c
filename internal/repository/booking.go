package repository

import (
	"context"
	"time"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository/dao"
)

var (
	ErrSessionNotFound  = dao.ErrSessionNotFound
	ErrOrderNotFound    = dao.ErrOrderNotFound
	ErrOrderNotPending  = dao.ErrOrderNotPending
	ErrSeatsUnavailable = dao.ErrSeatsUnavailable
	ErrCouponNotFound   = dao.ErrCouponNotFound
	ErrCouponInactive   = dao.ErrCouponInactive
	ErrCouponExhausted  = dao.ErrCouponExhausted
	ErrCouponExpired    = dao.ErrCouponExpired
)

// SeatConflictError names the seats a purchase or assignment lost to
// a concurrent buyer.
type SeatConflictError = dao.SeatConflictError

// RevenueLine is one payment-status bucket of the accounting summary.
type RevenueLine struct {
	PaymentStatus domain.PaymentStatus `json:"payment_status"`
	Orders        int                  `json:"orders"`
	Amount        float64              `json:"amount"`
}

type BookingDAO interface {
	ListSessions(ctx context.Context) ([]dao.Session, error)
	FindSession(ctx context.Context, sessionID string) (dao.Session, error)
	FindTicketsBySession(ctx context.Context, sessionID string) ([]dao.Ticket, error)
	TicketCounts(ctx context.Context) (map[string]dao.TicketCount, error)
	CreateOrderWithTickets(ctx context.Context, order dao.Order, sessionID string, seatIDs []string, priceEach float64) (dao.Order, error)
	ConfirmPayment(ctx context.Context, orderID string) error
	CancelOrder(ctx context.Context, orderID string) error
	CleanupExpired(ctx context.Context, cutoff time.Time) (int, error)
	Reset(ctx context.Context) error
	FindOrder(ctx context.Context, orderID string) (dao.Order, error)
	ListOrders(ctx context.Context) ([]dao.Order, error)
	OrderTotals(ctx context.Context) ([]dao.OrderTotals, error)
	AssignSeats(ctx context.Context, sessionID string, registrationID uint, holderName string, seats []dao.SeatAssignment) error
	UnassignSeats(ctx context.Context, sessionID string, registrationID uint) error
	Seed(ctx context.Context, sessions []dao.Session, seats []dao.Seat, tickets []dao.Ticket) error
	CountTickets(ctx context.Context) (int64, error)
}

type BookingRepository struct {
	dao BookingDAO
}

func NewBookingRepository(dao BookingDAO) *BookingRepository {
	return &BookingRepository{dao: dao}
}

func (r *BookingRepository) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := r.dao.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := r.dao.TicketCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Session, 0, len(sessions))
	for _, s := range sessions {
		c := counts[s.ID]
		out = append(out, domain.Session{
			ID:         s.ID,
			Name:       s.Name,
			Date:       s.Date,
			TotalSeats: c.Total,
			SoldCount:  c.Sold,
		})
	}
	return out, nil
}

func (r *BookingRepository) FindSession(ctx context.Context, sessionID string) (domain.Session, error) {
	s, err := r.dao.FindSession(ctx, sessionID)
	if err != nil {
		return domain.Session{}, err
	}
	return domain.Session{ID: s.ID, Name: s.Name, Date: s.Date}, nil
}

func (r *BookingRepository) FindTicketsBySession(ctx context.Context, sessionID string) ([]domain.Ticket, error) {
	tickets, err := r.dao.FindTicketsBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return ticketsDaoToDomain(tickets), nil
}

func (r *BookingRepository) CreateOrder(ctx context.Context, order domain.Order, sessionID string, seatIDs []string, priceEach float64) (domain.Order, error) {
	created, err := r.dao.CreateOrderWithTickets(ctx, orderDomainToDao(order), sessionID, seatIDs, priceEach)
	if err != nil {
		return domain.Order{}, err
	}
	return orderDaoToDomain(created), nil
}

func (r *BookingRepository) ConfirmPayment(ctx context.Context, orderID string) error {
	return r.dao.ConfirmPayment(ctx, orderID)
}

func (r *BookingRepository) CancelOrder(ctx context.Context, orderID string) error {
	return r.dao.CancelOrder(ctx, orderID)
}

func (r *BookingRepository) CleanupExpired(ctx context.Context, cutoff time.Time) (int, error) {
	return r.dao.CleanupExpired(ctx, cutoff)
}

func (r *BookingRepository) Reset(ctx context.Context) error {
	return r.dao.Reset(ctx)
}

func (r *BookingRepository) FindOrder(ctx context.Context, orderID string) (domain.Order, error) {
	order, err := r.dao.FindOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}
	return orderDaoToDomain(order), nil
}

func (r *BookingRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := r.dao.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderDaoToDomain(o))
	}
	return out, nil
}

func (r *BookingRepository) Revenue(ctx context.Context) ([]RevenueLine, error) {
	totals, err := r.dao.OrderTotals(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]RevenueLine, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, RevenueLine{
			PaymentStatus: domain.PaymentStatus(t.PaymentStatus),
			Orders:        t.Count,
			Amount:        t.Amount,
		})
	}
	return lines, nil
}

func (r *BookingRepository) AssignSeats(ctx context.Context, sessionID string, registrationID uint, holderName string, seats []domain.SeatAvailability) error {
	assignments := make([]dao.SeatAssignment, 0, len(seats))
	for _, s := range seats {
		assignments = append(assignments, dao.SeatAssignment{
			SeatID: s.ID,
			Price:  domain.AssignmentPrice(s.Zone),
		})
	}
	return r.dao.AssignSeats(ctx, sessionID, registrationID, holderName, assignments)
}

func (r *BookingRepository) UnassignSeats(ctx context.Context, sessionID string, registrationID uint) error {
	return r.dao.UnassignSeats(ctx, sessionID, registrationID)
}

func (r *BookingRepository) Seed(ctx context.Context, sessions []domain.Session, seats []domain.Seat) error {
	daoSessions := make([]dao.Session, 0, len(sessions))
	for _, s := range sessions {
		daoSessions = append(daoSessions, dao.Session{ID: s.ID, Name: s.Name, Date: s.Date})
	}

	daoSeats := make([]dao.Seat, 0, len(seats))
	daoTickets := make([]dao.Ticket, 0, len(seats)*len(sessions))
	for _, s := range seats {
		daoSeats = append(daoSeats, dao.Seat{
			ID:        s.ID,
			RowNumber: s.Row,
			Number:    s.Number,
			Zone:      string(s.Zone),
			Type:      string(s.Type),
		})
	}
	for _, session := range sessions {
		for _, s := range seats {
			daoTickets = append(daoTickets, dao.Ticket{
				SessionID: session.ID,
				SeatID:    s.ID,
				Status:    string(domain.TicketAvailable),
			})
		}
	}

	return r.dao.Seed(ctx, daoSessions, daoSeats, daoTickets)
}

func (r *BookingRepository) CountTickets(ctx context.Context) (int64, error) {
	return r.dao.CountTickets(ctx)
}

func ticketsDaoToDomain(tickets []dao.Ticket) []domain.Ticket {
	out := make([]domain.Ticket, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ticketDaoToDomain(t))
	}
	return out
}

func ticketDaoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		ID:             t.ID,
		SessionID:      t.SessionID,
		SeatID:         t.SeatID,
		Status:         domain.TicketStatus(t.Status),
		OrderID:        t.OrderID,
		RegistrationID: t.RegistrationID,
		Price:          t.Price,
		HolderName:     t.HolderName,
		SoldAt:         t.SoldAt,
	}
}

func orderDomainToDao(o domain.Order) dao.Order {
	return dao.Order{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		TotalAmount:     o.TotalAmount,
		PaymentStatus:   string(o.PaymentStatus),
		PaymentProvider: o.PaymentProvider,
		CouponID:        o.CouponID,
		DiscountApplied: o.DiscountApplied,
		CreatedAt:       o.CreatedAt,
	}
}

func orderDaoToDomain(o dao.Order) domain.Order {
	return domain.Order{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		TotalAmount:     o.TotalAmount,
		PaymentStatus:   domain.PaymentStatus(o.PaymentStatus),
		PaymentProvider: o.PaymentProvider,
		CouponID:        o.CouponID,
		DiscountApplied: o.DiscountApplied,
		CreatedAt:       o.CreatedAt,
		Tickets:         ticketsDaoToDomain(o.Tickets),
	}
}
