package usecase

import (
	"context"
	"errors"
	"strings"

	"jobdeck/internal/domain/application"
	"jobdeck/internal/repository"

	"github.com/google/uuid"
)

type CreateApplicationInput struct {
	JobID  uuid.UUID
	Status string
	Notes  *string
}

type UpdateApplicationInput struct {
	Status string
	Notes  *string
}

type ApplicationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in CreateApplicationInput) (application.Application, error)
	Get(ctx context.Context, userID, id uuid.UUID) (application.Application, error)
	List(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]application.Application, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, in UpdateApplicationInput) (application.Application, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type statusNotifier interface {
	ApplicationStatusChanged(userID, applicationID uuid.UUID, status string)
}

type Applications struct {
	apps   repository.ApplicationRepository
	jobs   repository.JobRepository
	notify statusNotifier
}

func NewApplicationUsecase(apps repository.ApplicationRepository, jobs repository.JobRepository, notify statusNotifier) *Applications {
	return &Applications{apps: apps, jobs: jobs, notify: notify}
}

func (u *Applications) Create(ctx context.Context, userID uuid.UUID, in CreateApplicationInput) (application.Application, error) {
	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = application.StatusSaved
	}
	if !application.ValidStatus(status) {
		return application.Application{}, application.ErrInvalidStatus
	}
	if in.JobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}

	exists, err := u.jobs.ExistsByID(ctx, in.JobID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if !exists {
		return application.Application{}, ErrNotFound
	}

	created, err := u.apps.Create(ctx, application.Application{
		UserID: userID,
		JobID:  in.JobID,
		Status: status,
		Notes:  trimPtr(in.Notes),
	})
	if err != nil {
		if errors.Is(err, application.ErrAlreadyExists) {
			return application.Application{}, err
		}
		return application.Application{}, ErrInternal
	}
	return created, nil
}

func (u *Applications) Get(ctx context.Context, userID, id uuid.UUID) (application.Application, error) {
	a, err := u.apps.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}
	return a, nil
}

func (u *Applications) List(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]application.Application, error) {
	status = strings.TrimSpace(status)
	if status != "" && !application.ValidStatus(status) {
		return nil, application.ErrInvalidStatus
	}
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 100 || offset < 0 {
		return nil, ErrInvalidInput
	}

	out, err := u.apps.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, userID, id uuid.UUID, in UpdateApplicationInput) (application.Application, error) {
	status := strings.TrimSpace(in.Status)
	if !application.ValidStatus(status) {
		return application.Application{}, application.ErrInvalidStatus
	}

	updated, err := u.apps.UpdateStatus(ctx, userID, id, status, trimPtr(in.Notes))
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	if u.notify != nil {
		u.notify.ApplicationStatusChanged(userID, updated.ID, updated.Status)
	}
	return updated, nil
}

func (u *Applications) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := u.apps.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ErrNotFound
		}
		return ErrInternal
	}
	return nil
}
