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

type fakeRegistrationRepo struct {
	regs   map[uint]domain.Registration
	nextID uint
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{regs: make(map[uint]domain.Registration)}
}

func (r *fakeRegistrationRepo) Create(_ context.Context, reg domain.Registration) (domain.Registration, error) {
	r.nextID++
	reg.ID = r.nextID
	r.regs[reg.ID] = reg
	return reg, nil
}

func (r *fakeRegistrationRepo) FindByID(_ context.Context, id uint) (domain.Registration, error) {
	reg, ok := r.regs[id]
	if !ok {
		return domain.Registration{}, repository.ErrRegistrationNotFound
	}
	return reg, nil
}

func (r *fakeRegistrationRepo) FindByUserID(_ context.Context, userID string) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, reg := range r.regs {
		if reg.UserID == userID {
			out = append(out, reg)
		}
	}
	return out, nil
}

func (r *fakeRegistrationRepo) List(_ context.Context) ([]domain.Registration, error) {
	var out []domain.Registration
	for _, reg := range r.regs {
		out = append(out, reg)
	}
	return out, nil
}

func (r *fakeRegistrationRepo) Update(_ context.Context, reg domain.Registration) (domain.Registration, error) {
	current, ok := r.regs[reg.ID]
	if !ok {
		return domain.Registration{}, repository.ErrRegistrationNotFound
	}
	if current.Status == domain.RegistrationSubmitted {
		return domain.Registration{}, repository.ErrRegistrationSubmitted
	}
	r.regs[reg.ID] = reg
	return reg, nil
}

func (r *fakeRegistrationRepo) Submit(_ context.Context, id uint) (bool, error) {
	reg, ok := r.regs[id]
	if !ok {
		return false, repository.ErrRegistrationNotFound
	}
	if reg.Status == domain.RegistrationSubmitted {
		return false, nil
	}
	reg.Status = domain.RegistrationSubmitted
	r.regs[id] = reg
	return true, nil
}

func (r *fakeRegistrationRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.regs[id]; !ok {
		return repository.ErrRegistrationNotFound
	}
	delete(r.regs, id)
	return nil
}

type recordingNotifier struct {
	submitted chan domain.Registration
}

func (n *recordingNotifier) RegistrationSubmitted(_ context.Context, reg domain.Registration) error {
	n.submitted <- reg
	return nil
}

func newTestRegistrationService() (*RegistrationService, *fakeRegistrationRepo, *recordingNotifier) {
	repo := newFakeRegistrationRepo()
	notifier := &recordingNotifier{submitted: make(chan domain.Registration, 4)}
	return NewRegistrationService(repo, notifier), repo, notifier
}

func draftRegistration() domain.Registration {
	return domain.Registration{
		GroupName:  "Las Estrellas",
		Category:   domain.CategoryJuvenil,
		SchoolName: "Escuela Danza Madrid",
	}
}

func TestRegistrationService_Create_ForcesDraftAndOwner(t *testing.T) {
	svc, _, _ := newTestRegistrationService()

	reg := draftRegistration()
	reg.UserID = "someone-else"
	reg.Status = domain.RegistrationSubmitted

	created, err := svc.Create(context.Background(), "school-1", reg)
	require.NoError(t, err)

	assert.Equal(t, "school-1", created.UserID)
	assert.Equal(t, domain.RegistrationDraft, created.Status)
}

func TestRegistrationService_Get_OwnershipEnforced(t *testing.T) {
	svc, _, _ := newTestRegistrationService()

	created, err := svc.Create(context.Background(), "school-1", draftRegistration())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "school-2", created.ID)
	assert.ErrorIs(t, err, ErrNotRegistrationOwner)

	_, err = svc.Get(context.Background(), "school-1", created.ID)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), "school-1", 999)
	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestRegistrationService_Update_SubmittedIsFrozen(t *testing.T) {
	svc, _, _ := newTestRegistrationService()

	created, err := svc.Create(context.Background(), "school-1", draftRegistration())
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), "school-1", created.ID)
	require.NoError(t, err)

	update := draftRegistration()
	update.ID = created.ID
	update.GroupName = "Nuevo Nombre"

	_, err = svc.Update(context.Background(), "school-1", update)

	assert.ErrorIs(t, err, ErrRegistrationSubmitted)
}

func TestRegistrationService_Submit_NotifiesOnce(t *testing.T) {
	svc, _, notifier := newTestRegistrationService()

	created, err := svc.Create(context.Background(), "school-1", draftRegistration())
	require.NoError(t, err)

	submitted, err := svc.Submit(context.Background(), "school-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationSubmitted, submitted.Status)

	select {
	case reg := <-notifier.submitted:
		assert.Equal(t, created.ID, reg.ID)
	case <-time.After(time.Second):
		t.Fatal("expected a submission notification")
	}

	// Submitting again neither fails nor re-notifies.
	_, err = svc.Submit(context.Background(), "school-1", created.ID)
	require.NoError(t, err)

	select {
	case <-notifier.submitted:
		t.Fatal("second submit must not re-notify")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRegistrationService_Delete(t *testing.T) {
	svc, repo, _ := newTestRegistrationService()

	created, err := svc.Create(context.Background(), "school-1", draftRegistration())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.regs)

	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrRegistrationNotFound)
}
