package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository"
)

var (
	ErrJudgeNotFound = repository.ErrJudgeNotFound
	ErrFAQNotFound   = repository.ErrFAQNotFound
)

type ContentRepository interface {
	ListJudges(ctx context.Context) ([]domain.Judge, error)
	SaveJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	DeleteJudge(ctx context.Context, id uint) error
	ListFAQs(ctx context.Context) ([]domain.FAQ, error)
	SaveFAQ(ctx context.Context, faq domain.FAQ) (domain.FAQ, error)
	DeleteFAQ(ctx context.Context, id uint) error
	ListSettings(ctx context.Context) ([]domain.AppSetting, error)
	UpsertSetting(ctx context.Context, setting domain.AppSetting) error
}

// ContentService is plain record CRUD for the public-site content the
// organizers maintain: judges, FAQs and app settings.
type ContentService struct {
	repo ContentRepository
}

func NewContentService(repo ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func (s *ContentService) ListJudges(ctx context.Context) ([]domain.Judge, error) {
	judges, err := s.repo.ListJudges(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListJudges -> %w", err)
	}
	return judges, nil
}

func (s *ContentService) SaveJudge(ctx context.Context, judge domain.Judge) (domain.Judge, error) {
	saved, err := s.repo.SaveJudge(ctx, judge)
	if err != nil {
		return domain.Judge{}, fmt.Errorf("s.repo.SaveJudge -> %w", err)
	}
	return saved, nil
}

func (s *ContentService) DeleteJudge(ctx context.Context, id uint) error {
	err := s.repo.DeleteJudge(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJudgeNotFound) {
			return ErrJudgeNotFound
		}
		return fmt.Errorf("s.repo.DeleteJudge -> %w", err)
	}
	return nil
}

func (s *ContentService) ListFAQs(ctx context.Context) ([]domain.FAQ, error) {
	faqs, err := s.repo.ListFAQs(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListFAQs -> %w", err)
	}
	return faqs, nil
}

func (s *ContentService) SaveFAQ(ctx context.Context, faq domain.FAQ) (domain.FAQ, error) {
	saved, err := s.repo.SaveFAQ(ctx, faq)
	if err != nil {
		return domain.FAQ{}, fmt.Errorf("s.repo.SaveFAQ -> %w", err)
	}
	return saved, nil
}

func (s *ContentService) DeleteFAQ(ctx context.Context, id uint) error {
	err := s.repo.DeleteFAQ(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFAQNotFound) {
			return ErrFAQNotFound
		}
		return fmt.Errorf("s.repo.DeleteFAQ -> %w", err)
	}
	return nil
}

func (s *ContentService) ListSettings(ctx context.Context) ([]domain.AppSetting, error) {
	settings, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListSettings -> %w", err)
	}
	return settings, nil
}

func (s *ContentService) SaveSetting(ctx context.Context, setting domain.AppSetting) error {
	if err := s.repo.UpsertSetting(ctx, setting); err != nil {
		return fmt.Errorf("s.repo.UpsertSetting -> %w", err)
	}
	return nil
}
