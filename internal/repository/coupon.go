package repository

import (
	"context"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository/dao"
)

var ErrCouponCodeExists = dao.ErrCouponCodeExists

type CouponDAO interface {
	Insert(ctx context.Context, coupon dao.Coupon) (dao.Coupon, error)
	FindByCode(ctx context.Context, code string) (dao.Coupon, error)
	FindByID(ctx context.Context, id uint) (dao.Coupon, error)
	List(ctx context.Context) ([]dao.Coupon, error)
	SetActive(ctx context.Context, id uint, active bool) error
	Delete(ctx context.Context, id uint) error
}

type CouponRepository struct {
	dao CouponDAO
}

func NewCouponRepository(dao CouponDAO) *CouponRepository {
	return &CouponRepository{dao: dao}
}

func (r *CouponRepository) Create(ctx context.Context, coupon domain.Coupon) (domain.Coupon, error) {
	created, err := r.dao.Insert(ctx, couponDomainToDao(coupon))
	if err != nil {
		return domain.Coupon{}, err
	}
	return couponDaoToDomain(created), nil
}

func (r *CouponRepository) FindByCode(ctx context.Context, code string) (domain.Coupon, error) {
	coupon, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Coupon{}, err
	}
	return couponDaoToDomain(coupon), nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uint) (domain.Coupon, error) {
	coupon, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Coupon{}, err
	}
	return couponDaoToDomain(coupon), nil
}

func (r *CouponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Coupon, 0, len(coupons))
	for _, c := range coupons {
		out = append(out, couponDaoToDomain(c))
	}
	return out, nil
}

func (r *CouponRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.dao.SetActive(ctx, id, active)
}

func (r *CouponRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func couponDomainToDao(c domain.Coupon) dao.Coupon {
	return dao.Coupon{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  string(c.DiscountType),
		DiscountValue: c.DiscountValue,
		MaxUses:       c.MaxUses,
		CurrentUses:   c.CurrentUses,
		IsActive:      c.IsActive,
		ExpiresAt:     c.ExpiresAt,
		CreatedAt:     c.CreatedAt,
	}
}

func couponDaoToDomain(c dao.Coupon) domain.Coupon {
	return domain.Coupon{
		ID:            c.ID,
		Code:          c.Code,
		DiscountType:  domain.DiscountType(c.DiscountType),
		DiscountValue: c.DiscountValue,
		MaxUses:       c.MaxUses,
		CurrentUses:   c.CurrentUses,
		IsActive:      c.IsActive,
		ExpiresAt:     c.ExpiresAt,
		CreatedAt:     c.CreatedAt,
	}
}
