package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository"
)

type fakeCouponRepo struct {
	byCode map[string]domain.Coupon
	byID   map[uint]domain.Coupon
	nextID uint
}

func newFakeCouponRepo() *fakeCouponRepo {
	return &fakeCouponRepo{
		byCode: make(map[string]domain.Coupon),
		byID:   make(map[uint]domain.Coupon),
	}
}

func (r *fakeCouponRepo) Create(_ context.Context, coupon domain.Coupon) (domain.Coupon, error) {
	if _, exists := r.byCode[coupon.Code]; exists {
		return domain.Coupon{}, repository.ErrCouponCodeExists
	}
	r.nextID++
	coupon.ID = r.nextID
	r.byCode[coupon.Code] = coupon
	r.byID[coupon.ID] = coupon
	return coupon, nil
}

func (r *fakeCouponRepo) FindByCode(_ context.Context, code string) (domain.Coupon, error) {
	c, ok := r.byCode[code]
	if !ok {
		return domain.Coupon{}, repository.ErrCouponNotFound
	}
	return c, nil
}

func (r *fakeCouponRepo) List(_ context.Context) ([]domain.Coupon, error) {
	var out []domain.Coupon
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCouponRepo) SetActive(_ context.Context, id uint, active bool) error {
	c, ok := r.byID[id]
	if !ok {
		return repository.ErrCouponNotFound
	}
	c.IsActive = active
	r.byID[id] = c
	r.byCode[c.Code] = c
	return nil
}

func (r *fakeCouponRepo) Delete(_ context.Context, id uint) error {
	c, ok := r.byID[id]
	if !ok {
		return repository.ErrCouponNotFound
	}
	delete(r.byID, id)
	delete(r.byCode, c.Code)
	return nil
}

func TestCouponService_Create_NormalizesCode(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo())

	created, err := svc.Create(context.Background(), domain.Coupon{
		Code:          "  dance10 ",
		DiscountType:  domain.DiscountFixed,
		DiscountValue: 5,
		CurrentUses:   99,
		IsActive:      false,
	})
	require.NoError(t, err)

	assert.Equal(t, "DANCE10", created.Code)
	assert.Zero(t, created.CurrentUses)
	assert.True(t, created.IsActive)
}

func TestCouponService_Create_DuplicateCode(t *testing.T) {
	svc := NewCouponService(newFakeCouponRepo())

	_, err := svc.Create(context.Background(), domain.Coupon{Code: "DANCE10", DiscountType: domain.DiscountFixed, DiscountValue: 5})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.Coupon{Code: "dance10", DiscountType: domain.DiscountFixed, DiscountValue: 5})

	assert.ErrorIs(t, err, ErrCouponCodeExists)
}

func TestCouponService_Validate(t *testing.T) {
	exhaustedLimit := 1
	expired := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		coupon  *domain.Coupon
		wantErr error
	}{
		{
			name:    "unknown code",
			coupon:  nil,
			wantErr: ErrCouponNotFound,
		},
		{
			name:    "inactive",
			coupon:  &domain.Coupon{Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: 1, IsActive: false},
			wantErr: ErrCouponInactive,
		},
		{
			name:    "exhausted",
			coupon:  &domain.Coupon{Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: 1, IsActive: true, MaxUses: &exhaustedLimit, CurrentUses: 1},
			wantErr: ErrCouponExhausted,
		},
		{
			name:    "expired",
			coupon:  &domain.Coupon{Code: "X", DiscountType: domain.DiscountFixed, DiscountValue: 1, IsActive: true, ExpiresAt: &expired},
			wantErr: ErrCouponExpired,
		},
		{
			name:   "redeemable",
			coupon: &domain.Coupon{Code: "X", DiscountType: domain.DiscountPercentage, DiscountValue: 10, IsActive: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeCouponRepo()
			if tt.coupon != nil {
				_, err := repo.Create(context.Background(), *tt.coupon)
				require.NoError(t, err)
			}
			svc := NewCouponService(repo)

			result, err := svc.Validate(context.Background(), "X")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DiscountPercentage, result.DiscountType)
			assert.Equal(t, 10.0, result.DiscountValue)
		})
	}
}

func TestCouponService_SetActiveAndDelete(t *testing.T) {
	repo := newFakeCouponRepo()
	svc := NewCouponService(repo)

	created, err := svc.Create(context.Background(), domain.Coupon{Code: "DANCE10", DiscountType: domain.DiscountFixed, DiscountValue: 5})
	require.NoError(t, err)

	require.NoError(t, svc.SetActive(context.Background(), created.ID, false))
	assert.False(t, repo.byID[created.ID].IsActive)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrCouponNotFound)
}
