package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrJudgeNotFound = errors.New("judge not found")
	ErrFAQNotFound   = errors.New("faq not found")
)

type ContentDAO struct {
	db *gorm.DB
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{db: db}
}

func (d *ContentDAO) ListJudges(ctx context.Context) ([]Judge, error) {
	var judges []Judge
	if err := d.db.WithContext(ctx).Order("position, id").Find(&judges).Error; err != nil {
		return nil, err
	}
	return judges, nil
}

func (d *ContentDAO) SaveJudge(ctx context.Context, judge Judge) (Judge, error) {
	if err := d.db.WithContext(ctx).Save(&judge).Error; err != nil {
		return Judge{}, err
	}
	return judge, nil
}

func (d *ContentDAO) DeleteJudge(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Judge{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJudgeNotFound
	}
	return nil
}

func (d *ContentDAO) ListFAQs(ctx context.Context) ([]FAQ, error) {
	var faqs []FAQ
	if err := d.db.WithContext(ctx).Order("position, id").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

func (d *ContentDAO) SaveFAQ(ctx context.Context, faq FAQ) (FAQ, error) {
	if err := d.db.WithContext(ctx).Save(&faq).Error; err != nil {
		return FAQ{}, err
	}
	return faq, nil
}

func (d *ContentDAO) DeleteFAQ(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&FAQ{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}

func (d *ContentDAO) ListSettings(ctx context.Context) ([]AppSetting, error) {
	var settings []AppSetting
	if err := d.db.WithContext(ctx).Order("key").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

func (d *ContentDAO) UpsertSetting(ctx context.Context, setting AppSetting) error {
	return d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
