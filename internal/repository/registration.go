package repository

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/danceinaction/booking-api/internal/domain"
	"github.com/danceinaction/booking-api/internal/repository/dao"
)

var (
	ErrRegistrationNotFound  = dao.ErrRegistrationNotFound
	ErrRegistrationSubmitted = dao.ErrRegistrationSubmitted
)

type RegistrationDAO interface {
	Insert(ctx context.Context, reg dao.Registration) (dao.Registration, error)
	FindByID(ctx context.Context, id uint) (dao.Registration, error)
	FindByUserID(ctx context.Context, userID string) ([]dao.Registration, error)
	List(ctx context.Context) ([]dao.Registration, error)
	Update(ctx context.Context, reg dao.Registration) (dao.Registration, error)
	Submit(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

type RegistrationRepository struct {
	dao RegistrationDAO
}

func NewRegistrationRepository(dao RegistrationDAO) *RegistrationRepository {
	return &RegistrationRepository{dao: dao}
}

func (r *RegistrationRepository) Create(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	created, err := r.dao.Insert(ctx, registrationDomainToDao(reg))
	if err != nil {
		return domain.Registration{}, err
	}
	return registrationDaoToDomain(created), nil
}

func (r *RegistrationRepository) FindByID(ctx context.Context, id uint) (domain.Registration, error) {
	reg, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Registration{}, err
	}
	return registrationDaoToDomain(reg), nil
}

func (r *RegistrationRepository) FindByUserID(ctx context.Context, userID string) ([]domain.Registration, error) {
	regs, err := r.dao.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return registrationsDaoToDomain(regs), nil
}

func (r *RegistrationRepository) List(ctx context.Context) ([]domain.Registration, error) {
	regs, err := r.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return registrationsDaoToDomain(regs), nil
}

func (r *RegistrationRepository) Update(ctx context.Context, reg domain.Registration) (domain.Registration, error) {
	updated, err := r.dao.Update(ctx, registrationDomainToDao(reg))
	if err != nil {
		return domain.Registration{}, err
	}
	return registrationDaoToDomain(updated), nil
}

func (r *RegistrationRepository) Submit(ctx context.Context, id uint) (bool, error) {
	return r.dao.Submit(ctx, id)
}

func (r *RegistrationRepository) Delete(ctx context.Context, id uint) error {
	return r.dao.Delete(ctx, id)
}

func registrationsDaoToDomain(regs []dao.Registration) []domain.Registration {
	out := make([]domain.Registration, 0, len(regs))
	for _, reg := range regs {
		out = append(out, registrationDaoToDomain(reg))
	}
	return out
}

func registrationDomainToDao(reg domain.Registration) dao.Registration {
	proofs, err := json.Marshal(reg.PaymentProofURLs)
	if err != nil {
		proofs = []byte("[]")
	}

	d := dao.Registration{
		ID:               reg.ID,
		UserID:           reg.UserID,
		GroupName:        reg.GroupName,
		Category:         string(reg.Category),
		SchoolName:       reg.SchoolName,
		Notes:            reg.Notes,
		Status:           string(reg.Status),
		PaymentProofURLs: string(proofs),
		MusicFileURL:     reg.MusicFileURL,
		CreatedAt:        reg.CreatedAt,
	}
	for _, resp := range reg.Responsibles {
		d.Responsibles = append(d.Responsibles, dao.RegistrationResponsible{
			ID:             resp.ID,
			RegistrationID: reg.ID,
			RowKey:         resp.RowKey,
			Name:           resp.Name,
			Surnames:       resp.Surnames,
			Phone:          resp.Phone,
			Email:          resp.Email,
			DNIURL:         resp.DNIURL,
		})
	}
	for _, p := range reg.Participants {
		d.Participants = append(d.Participants, dao.RegistrationParticipant{
			ID:               p.ID,
			RegistrationID:   reg.ID,
			RowKey:           p.RowKey,
			Name:             p.Name,
			Surnames:         p.Surnames,
			DOB:              p.DOB,
			NumTickets:       p.NumTickets,
			AuthorizationURL: p.AuthorizationURL,
			DNIURL:           p.DNIURL,
		})
	}
	return d
}

func registrationDaoToDomain(reg dao.Registration) domain.Registration {
	var proofs []string
	if reg.PaymentProofURLs != "" {
		if err := json.Unmarshal([]byte(reg.PaymentProofURLs), &proofs); err != nil {
			zap.L().Warn("malformed payment_proof_urls", zap.Uint("registration_id", reg.ID), zap.Error(err))
		}
	}

	d := domain.Registration{
		ID:               reg.ID,
		UserID:           reg.UserID,
		GroupName:        reg.GroupName,
		Category:         domain.DanceCategory(reg.Category),
		SchoolName:       reg.SchoolName,
		Notes:            reg.Notes,
		Status:           domain.RegistrationStatus(reg.Status),
		PaymentProofURLs: proofs,
		MusicFileURL:     reg.MusicFileURL,
		CreatedAt:        reg.CreatedAt,
	}
	for _, resp := range reg.Responsibles {
		d.Responsibles = append(d.Responsibles, domain.Responsible{
			ID:             resp.ID,
			RegistrationID: resp.RegistrationID,
			RowKey:         resp.RowKey,
			Name:           resp.Name,
			Surnames:       resp.Surnames,
			Phone:          resp.Phone,
			Email:          resp.Email,
			DNIURL:         resp.DNIURL,
		})
	}
	for _, p := range reg.Participants {
		d.Participants = append(d.Participants, domain.Participant{
			ID:               p.ID,
			RegistrationID:   p.RegistrationID,
			RowKey:           p.RowKey,
			Name:             p.Name,
			Surnames:         p.Surnames,
			DOB:              p.DOB,
			NumTickets:       p.NumTickets,
			AuthorizationURL: p.AuthorizationURL,
			DNIURL:           p.DNIURL,
		})
	}
	return d
}
