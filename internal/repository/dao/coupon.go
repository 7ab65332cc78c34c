package dao

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var ErrCouponCodeExists = errors.New("coupon code already exists")

type CouponDAO struct {
	db *gorm.DB
}

func NewCouponDAO(db *gorm.DB) *CouponDAO {
	return &CouponDAO{db: db}
}

func (d *CouponDAO) Insert(ctx context.Context, coupon Coupon) (Coupon, error) {
	coupon.Code = strings.ToUpper(coupon.Code)
	result := d.db.WithContext(ctx).Create(&coupon)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Coupon{}, ErrCouponCodeExists
		}
		return Coupon{}, result.Error
	}
	return coupon, nil
}

// FindByCode looks a coupon up case-insensitively. Codes are stored
// upper-cased, so upper-casing the input is enough.
func (d *CouponDAO) FindByCode(ctx context.Context, code string) (Coupon, error) {
	var coupon Coupon
	result := d.db.WithContext(ctx).First(&coupon, "code = ?", strings.ToUpper(code))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Coupon{}, ErrCouponNotFound
		}
		return Coupon{}, result.Error
	}
	return coupon, nil
}

func (d *CouponDAO) FindByID(ctx context.Context, id uint) (Coupon, error) {
	var coupon Coupon
	result := d.db.WithContext(ctx).First(&coupon, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Coupon{}, ErrCouponNotFound
		}
		return Coupon{}, result.Error
	}
	return coupon, nil
}

func (d *CouponDAO) List(ctx context.Context) ([]Coupon, error) {
	var coupons []Coupon
	if err := d.db.WithContext(ctx).Order("created_at DESC").Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (d *CouponDAO) SetActive(ctx context.Context, id uint, active bool) error {
	result := d.db.WithContext(ctx).
		Model(&Coupon{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}

func (d *CouponDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Coupon{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}
