package repository

import (
	"context"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository/dao"
)

var (
	ErrJudgeNotFound = dao.ErrJudgeNotFound
	ErrFAQNotFound   = dao.ErrFAQNotFound
)

type ContentDAO interface {
	ListJudges(ctx context.Context) ([]dao.Judge, error)
	SaveJudge(ctx context.Context, judge dao.Judge) (dao.Judge, error)
	DeleteJudge(ctx context.Context, id uint) error
	ListFAQs(ctx context.Context) ([]dao.FAQ, error)
	SaveFAQ(ctx context.Context, faq dao.FAQ) (dao.FAQ, error)
	DeleteFAQ(ctx context.Context, id uint) error
	ListSettings(ctx context.Context) ([]dao.AppSetting, error)
	UpsertSetting(ctx context.Context, setting dao.AppSetting) error
}

type ContentRepository struct {
	dao ContentDAO
}

func NewContentRepository(dao ContentDAO) *ContentRepository {
	return &ContentRepository{dao: dao}
}

func (r *ContentRepository) ListJudges(ctx context.Context) ([]domain.Judge, error) {
	judges, err := r.dao.ListJudges(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Judge, 0, len(judges))
	for _, j := range judges {
		out = append(out, domain.Judge(j))
	}
	return out, nil
}

func (r *ContentRepository) SaveJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	saved, err := r.dao.SaveJudge(ctx, dao.Judge(judge))
	if err != nil {
		return domain.Judge{}, err
	}
	return domain.Judge(saved), nil
}

func (r *ContentRepository) DeleteJudge(ctx context.Context, id uint) error {
	return r.dao.DeleteJudge(ctx, id)
}

func (r *ContentRepository) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	faqs, err := r.dao.ListFAQs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.FAQ, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, domain.FAQ(f))
	}
	return out, nil
}

func (r *ContentRepository) SaveFAQ(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	saved, err := r.dao.SaveFAQ(ctx, dao.FAQ(faq))
	if err != nil {
		return domain.FAQ{}, err
	}
	return domain.FAQ(saved), nil
}

func (r *ContentRepository) DeleteFAQ(ctx context.Context, id uint) error {
	return r.dao.DeleteFAQ(ctx, id)
}

func (r *ContentRepository) ListSettings(ctx context.Context) ([]domain.AppSetting, error) {
	settings, err := r.dao.ListSettings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AppSetting, 0, len(settings))
	for _, s := range settings {
		out = append(out, domain.AppSetting(s))
	}
	return out, nil
}

func (r *ContentRepository) UpsertSetting(ctx context.Context, setting domain.AppSetting) error {
	return r.dao.UpsertSetting(ctx, dao.AppSetting(setting))
}
