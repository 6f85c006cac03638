package usecase

import (
	"context"
	"errors"
	"testing"

	"jobdeck/internal/domain/application"
	"jobdeck/internal/domain/job"

	"github.com/google/uuid"
)

type mockAppRepo struct {
	created *application.Application
	byID    map[uuid.UUID]application.Application
	err     error
}

func (m *mockAppRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	a.ID = uuid.New()
	m.created = &a
	return a, nil
}

func (m *mockAppRepo) GetByID(_ context.Context, _, id uuid.UUID) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockAppRepo) ListByUser(context.Context, uuid.UUID, string, int, int) ([]application.Application, error) {
	return nil, m.err
}

func (m *mockAppRepo) UpdateStatus(_ context.Context, _, id uuid.UUID, status string, notes *string) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.Status = status
	if notes != nil {
		a.Notes = notes
	}
	return a, nil
}

func (m *mockAppRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return application.ErrNotFound
	}
	return nil
}

func (m *mockAppRepo) CountByUser(context.Context, uuid.UUID) (int, error) { return 0, nil }

type recordingNotifier struct {
	events []string
}

func (r *recordingNotifier) ApplicationStatusChanged(_, _ uuid.UUID, status string) {
	r.events = append(r.events, status)
}

func TestApplicationUsecase_Create_DefaultsToSaved(t *testing.T) {
	jobID := uuid.New()
	repo := &mockAppRepo{}
	jobs := mockJobRepo{byID: map[uuid.UUID]job.Job{jobID: {ID: jobID}}}
	uc := NewApplicationUsecase(repo, jobs, nil)

	a, err := uc.Create(context.Background(), uuid.New(), CreateApplicationInput{JobID: jobID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusSaved {
		t.Fatalf("expected default status saved, got %s", a.Status)
	}
}

func TestApplicationUsecase_Create_RejectsUnknownJob(t *testing.T) {
	uc := NewApplicationUsecase(&mockAppRepo{}, mockJobRepo{}, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateApplicationInput{JobID: uuid.New()})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApplicationUsecase_Create_RejectsInvalidStatus(t *testing.T) {
	uc := NewApplicationUsecase(&mockAppRepo{}, mockJobRepo{}, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateApplicationInput{
		JobID:  uuid.New(),
		Status: "ghosted",
	})
	if !errors.Is(err, application.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplicationUsecase_Create_PropagatesDuplicate(t *testing.T) {
	jobID := uuid.New()
	repo := &mockAppRepo{err: application.ErrAlreadyExists}
	uc := NewApplicationUsecase(repo, mockJobRepo{byID: map[uuid.UUID]job.Job{jobID: {ID: jobID}}}, nil)

	_, err := uc.Create(context.Background(), uuid.New(), CreateApplicationInput{JobID: jobID})
	if !errors.Is(err, application.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestApplicationUsecase_UpdateStatus_Notifies(t *testing.T) {
	appID := uuid.New()
	repo := &mockAppRepo{byID: map[uuid.UUID]application.Application{
		appID: {ID: appID, Status: application.StatusSaved},
	}}
	notifier := &recordingNotifier{}
	uc := NewApplicationUsecase(repo, mockJobRepo{}, notifier)

	a, err := uc.UpdateStatus(context.Background(), uuid.New(), appID, UpdateApplicationInput{
		Status: application.StatusInterviewing,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusInterviewing {
		t.Fatalf("expected interviewing, got %s", a.Status)
	}
	if len(notifier.events) != 1 || notifier.events[0] != application.StatusInterviewing {
		t.Fatalf("expected one notification, got %v", notifier.events)
	}
}

func TestApplicationUsecase_UpdateStatus_InvalidValue(t *testing.T) {
	notifier := &recordingNotifier{}
	uc := NewApplicationUsecase(&mockAppRepo{}, mockJobRepo{}, notifier)

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), uuid.New(), UpdateApplicationInput{Status: "done"})
	if !errors.Is(err, application.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("invalid update must not notify")
	}
}

func TestApplicationUsecase_List_RejectsInvalidStatusFilter(t *testing.T) {
	uc := NewApplicationUsecase(&mockAppRepo{}, mockJobRepo{}, nil)

	_, err := uc.List(context.Background(), uuid.New(), "archived", 20, 0)
	if !errors.Is(err, application.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestApplicationUsecase_Delete_NotFound(t *testing.T) {
	uc := NewApplicationUsecase(&mockAppRepo{}, mockJobRepo{}, nil)

	err := uc.Delete(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
