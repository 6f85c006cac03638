package usecase

import (
	"context"
	"errors"
	"testing"

	"jobdeck/internal/domain/job"
	"jobdeck/internal/domain/kit"
	"jobdeck/internal/domain/user"
	"jobdeck/internal/mail"
	uckit "jobdeck/internal/usecase/kit"

	"github.com/google/uuid"
)

type mockKitRepo struct {
	byKey map[[2]uuid.UUID]kit.ApplicationKit
	err   error
}

func (m *mockKitRepo) Upsert(_ context.Context, k kit.ApplicationKit) (kit.ApplicationKit, error) {
	if m.err != nil {
		return kit.ApplicationKit{}, m.err
	}
	if m.byKey == nil {
		m.byKey = map[[2]uuid.UUID]kit.ApplicationKit{}
	}
	m.byKey[[2]uuid.UUID{k.UserID, k.JobID}] = k
	return k, nil
}

func (m *mockKitRepo) GetByUserAndJob(_ context.Context, userID, jobID uuid.UUID) (kit.ApplicationKit, error) {
	if m.err != nil {
		return kit.ApplicationKit{}, m.err
	}
	k, ok := m.byKey[[2]uuid.UUID{userID, jobID}]
	if !ok {
		return kit.ApplicationKit{}, kit.ErrNotFound
	}
	return k, nil
}

type mockProfileRepo struct {
	byUser map[uuid.UUID]user.Profile
}

func (m *mockProfileRepo) GetByUserID(_ context.Context, userID uuid.UUID) (user.Profile, error) {
	p, ok := m.byUser[userID]
	if !ok {
		return user.Profile{}, user.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileRepo) Upsert(_ context.Context, p user.Profile) (user.Profile, error) {
	if m.byUser == nil {
		m.byUser = map[uuid.UUID]user.Profile{}
	}
	m.byUser[p.UserID] = p
	return p, nil
}

type fakeDrafter struct {
	draft uckit.Draft
	err   error
}

func (f fakeDrafter) Generate(_ context.Context, _ job.Job, _ user.Profile) (uckit.Draft, error) {
	return f.draft, f.err
}

type recordingKitMailer struct {
	enabled bool
	to      []string
	msgs    []mail.KitMessage
	err     error
}

func (m *recordingKitMailer) Enabled() bool { return m.enabled }

func (m *recordingKitMailer) SendKit(_ context.Context, to string, km mail.KitMessage) error {
	m.to = append(m.to, to)
	m.msgs = append(m.msgs, km)
	return m.err
}

func TestKitUsecase_GenerateStoresDraft(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()
	jobs := mockJobRepo{byID: map[uuid.UUID]job.Job{jobID: {ID: jobID, Title: strPtr("Go Engineer")}}}
	kits := &mockKitRepo{}
	drafter := fakeDrafter{draft: uckit.Draft{
		ResumeSummary:   "summary",
		CoverLetter:     "letter",
		OutreachMessage: "outreach",
	}}

	uc := NewKitUsecase(kits, jobs, &mockProfileRepo{}, &mockUserRepo{}, drafter, nil)
	got, err := uc.Generate(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ResumeSummary != "summary" || got.CoverLetter != "letter" || got.OutreachMessage != "outreach" {
		t.Fatalf("stored kit = %+v", got)
	}
	if _, err := uc.Get(context.Background(), userID, jobID); err != nil {
		t.Fatalf("stored kit should be readable: %v", err)
	}
}

func TestKitUsecase_GenerateUnknownJob(t *testing.T) {
	uc := NewKitUsecase(&mockKitRepo{}, mockJobRepo{}, &mockProfileRepo{}, &mockUserRepo{}, fakeDrafter{}, nil)
	_, err := uc.Generate(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestKitUsecase_SendMailsStoredKit(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()
	jobs := mockJobRepo{byID: map[uuid.UUID]job.Job{jobID: {
		ID:      jobID,
		Title:   strPtr("Go Engineer"),
		Company: strPtr("Acme"),
	}}}
	users := &mockUserRepo{byID: map[uuid.UUID]user.User{userID: {ID: userID, Email: "dev@example.com"}}}
	kits := &mockKitRepo{byKey: map[[2]uuid.UUID]kit.ApplicationKit{
		{userID, jobID}: {
			UserID:          userID,
			JobID:           jobID,
			ResumeSummary:   "summary",
			CoverLetter:     "letter",
			OutreachMessage: "outreach",
		},
	}}
	mailer := &recordingKitMailer{enabled: true}

	uc := NewKitUsecase(kits, jobs, &mockProfileRepo{}, users, fakeDrafter{}, mailer)
	delivered, err := uc.Send(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !delivered {
		t.Fatalf("expected delivered=true")
	}
	if len(mailer.to) != 1 || mailer.to[0] != "dev@example.com" {
		t.Fatalf("mail recipients = %v", mailer.to)
	}
	msg := mailer.msgs[0]
	if msg.JobTitle != "Go Engineer" || msg.Company != "Acme" {
		t.Fatalf("job fields must flatten into the message: %+v", msg)
	}
	if msg.CoverLetter != "letter" {
		t.Fatalf("kit body missing: %+v", msg)
	}
}

func TestKitUsecase_SendWithoutRelay(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()
	kits := &mockKitRepo{byKey: map[[2]uuid.UUID]kit.ApplicationKit{
		{userID, jobID}: {UserID: userID, JobID: jobID, CoverLetter: "letter"},
	}}

	uc := NewKitUsecase(kits, mockJobRepo{}, &mockProfileRepo{}, &mockUserRepo{}, fakeDrafter{}, &recordingKitMailer{enabled: false})
	delivered, err := uc.Send(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if delivered {
		t.Fatalf("no relay configured, delivered must be false")
	}
}

func TestKitUsecase_SendNoKit(t *testing.T) {
	uc := NewKitUsecase(&mockKitRepo{}, mockJobRepo{}, &mockProfileRepo{}, &mockUserRepo{}, fakeDrafter{}, &recordingKitMailer{enabled: true})
	_, err := uc.Send(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
