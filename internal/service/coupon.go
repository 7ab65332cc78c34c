package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository"
)

var ErrCouponCodeExists = repository.ErrCouponCodeExists

type CouponRepository interface {
	Create(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error)
	FindByCode(ctx context.Context, code string) (domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

// CouponValidation is the successful result of validating a code: what
// the booking UI needs to show and apply the discount.
type CouponValidation struct {
	CouponID      uint                `json:"coupon_id"`
	DiscountType  domain.DiscountType `json:"discount_type"`
	DiscountValue float64             `json:"discount_value"`
}

type CouponService struct {
	repo CouponRepository
}

func NewCouponService(repo CouponRepository) *CouponService {
	return &CouponService{repo: repo}
}

// Validate decides whether a code is redeemable right now. Callers
// must not trust this beyond rendering: the purchase transaction
// re-validates, since usage can change in between.
func (s *CouponService) Validate(ctx context.Context, code string) (CouponValidation, error) {
	coupon, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return CouponValidation{}, ErrCouponNotFound
		}
		return CouponValidation{}, fmt.Errorf("s.repo.FindByCode -> %w", err)
	}

	switch {
	case !coupon.IsActive:
		return CouponValidation{}, ErrCouponInactive
	case coupon.UsesExhausted():
		return CouponValidation{}, ErrCouponExhausted
	case coupon.Expired(time.Now()):
		return CouponValidation{}, ErrCouponExpired
	}

	return CouponValidation{
		CouponID:      coupon.ID,
		DiscountType:  coupon.DiscountType,
		DiscountValue: coupon.DiscountValue,
	}, nil
}

func (s *CouponService) Create(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error) {
	coupon.Code = strings.ToUpper(strings.TrimSpace(coupon.Code))
	coupon.CurrentUses = 0
	coupon.IsActive = true

	created, err := s.repo.Create(ctx, coupon)
	if err != nil {
		if errors.Is(err, repository.ErrCouponCodeExists) {
			return domain.Coupon{}, ErrCouponCodeExists
		}
		return domain.Coupon{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	return created, nil
}

func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}
	return coupons, nil
}

func (s *CouponService) SetActive(ctx context.Context, id uint, active bool) error {
	err := s.repo.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return ErrCouponNotFound
		}
		return fmt.Errorf("s.repo.SetActive -> %w", err)
	}
	return nil
}

func (s *CouponService) Delete(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return ErrCouponNotFound
		}
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}
	return nil
}
