package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrRegistrationSubmitted = errors.New("registration already submitted")
)

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{db: db}
}

func (d *RegistrationDAO) Insert(ctx context.Context, reg Registration) (Registration, error) {
	if err := d.db.WithContext(ctx).Create(&reg).Error; err != nil {
		return Registration{}, err
	}
	return reg, nil
}

func (d *RegistrationDAO) FindByID(ctx context.Context, id uint) (Registration, error) {
	var reg Registration
	result := d.db.WithContext(ctx).
		Preload("Responsibles").
		Preload("Participants").
		First(&reg, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}
		return Registration{}, result.Error
	}
	return reg, nil
}

func (d *RegistrationDAO) FindByUserID(ctx context.Context, userID string) ([]Registration, error) {
	var regs []Registration
	err := d.db.WithContext(ctx).
		Preload("Responsibles").
		Preload("Participants").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

func (d *RegistrationDAO) List(ctx context.Context) ([]Registration, error) {
	var regs []Registration
	err := d.db.WithContext(ctx).
		Preload("Responsibles").
		Preload("Participants").
		Order("created_at DESC").
		Find(&regs).Error
	if err != nil {
		return nil, err
	}
	return regs, nil
}

// Update replaces a draft registration and its child rows. Child rows
// are re-matched by their stable row keys client-side; here they are
// simply replaced wholesale inside the transaction.
func (d *RegistrationDAO) Update(ctx context.Context, reg Registration) (Registration, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current Registration
		if err := tx.First(&current, "id = ?", reg.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}
		if current.Status == "submitted" {
			return ErrRegistrationSubmitted
		}

		if err := tx.Where("registration_id = ?", reg.ID).Delete(&RegistrationResponsible{}).Error; err != nil {
			return err
		}
		if err := tx.Where("registration_id = ?", reg.ID).Delete(&RegistrationParticipant{}).Error; err != nil {
			return err
		}

		return tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&reg).Error
	})
	if err != nil {
		return Registration{}, err
	}
	return d.FindByID(ctx, reg.ID)
}

// Submit flips a draft to submitted. Submitting twice is a no-op.
func (d *RegistrationDAO) Submit(ctx context.Context, id uint) (bool, error) {
	result := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("id = ? AND status = ?", id, "draft").
		Update("status", "submitted")
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	var reg Registration
	if err := d.db.WithContext(ctx).First(&reg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRegistrationNotFound
		}
		return false, err
	}
	return false, nil
}

// Delete removes a registration with its child rows and releases any
// tickets assigned to it, all in one transaction.
func (d *RegistrationDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reg Registration
		if err := tx.First(&reg, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return err
		}

		err := tx.Model(&Ticket{}).
			Where("registration_id = ?", id).
			Updates(releasedTicket()).Error
		if err != nil {
			return err
		}

		if err := tx.Where("registration_id = ?", id).Delete(&RegistrationResponsible{}).Error; err != nil {
			return err
		}
		if err := tx.Where("registration_id = ?", id).Delete(&RegistrationParticipant{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Registration{}, "id = ?", id).Error
	})
}
