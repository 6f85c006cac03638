package usecase

import (
	"context"
	"errors"

	"jobdeck/internal/domain/job"
	"jobdeck/internal/domain/kit"
	"jobdeck/internal/domain/user"
	"jobdeck/internal/mail"
	"jobdeck/internal/repository"
	uckit "jobdeck/internal/usecase/kit"

	"github.com/google/uuid"
)

type KitUsecase interface {
	Generate(ctx context.Context, userID, jobID uuid.UUID) (kit.ApplicationKit, error)
	Get(ctx context.Context, userID, jobID uuid.UUID) (kit.ApplicationKit, error)
	Send(ctx context.Context, userID, jobID uuid.UUID) (bool, error)
}

type kitDrafter interface {
	Generate(ctx context.Context, j job.Job, p user.Profile) (uckit.Draft, error)
}

type kitMailer interface {
	Enabled() bool
	SendKit(ctx context.Context, to string, km mail.KitMessage) error
}

type Kits struct {
	kits     repository.KitRepository
	jobs     repository.JobRepository
	profiles repository.ProfileRepository
	users    user.Repository
	drafter  kitDrafter
	mailer   kitMailer
}

func NewKitUsecase(kits repository.KitRepository, jobs repository.JobRepository, profiles repository.ProfileRepository, users user.Repository, drafter kitDrafter, mailer kitMailer) *Kits {
	return &Kits{kits: kits, jobs: jobs, profiles: profiles, users: users, drafter: drafter, mailer: mailer}
}

// Generate drafts a kit for the job and stores it. Regenerating for the
// same job replaces the previous kit.
func (u *Kits) Generate(ctx context.Context, userID, jobID uuid.UUID) (kit.ApplicationKit, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return kit.ApplicationKit{}, ErrNotFound
		}
		return kit.ApplicationKit{}, ErrInternal
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, user.ErrNotFound) {
		return kit.ApplicationKit{}, ErrInternal
	}

	draft, err := u.drafter.Generate(ctx, j, profile)
	if err != nil {
		return kit.ApplicationKit{}, ErrInternal
	}

	saved, err := u.kits.Upsert(ctx, kit.ApplicationKit{
		UserID:          userID,
		JobID:           jobID,
		ResumeSummary:   draft.ResumeSummary,
		CoverLetter:     draft.CoverLetter,
		OutreachMessage: draft.OutreachMessage,
		Model:           draft.Model,
	})
	if err != nil {
		return kit.ApplicationKit{}, ErrInternal
	}
	return saved, nil
}

func (u *Kits) Get(ctx context.Context, userID, jobID uuid.UUID) (kit.ApplicationKit, error) {
	k, err := u.kits.GetByUserAndJob(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, kit.ErrNotFound) {
			return kit.ApplicationKit{}, ErrNotFound
		}
		return kit.ApplicationKit{}, ErrInternal
	}
	return k, nil
}

// Send mails the stored kit to the owner's account address. Returns
// false without error when no SMTP relay is configured.
func (u *Kits) Send(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	k, err := u.Get(ctx, userID, jobID)
	if err != nil {
		return false, err
	}
	if u.mailer == nil || !u.mailer.Enabled() {
		return false, nil
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return false, ErrInternal
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return false, ErrInternal
	}

	msg := mail.KitMessage{
		JobTitle:        strOrEmpty(j.Title),
		Company:         strOrEmpty(j.Company),
		ResumeSummary:   k.ResumeSummary,
		CoverLetter:     k.CoverLetter,
		OutreachMessage: k.OutreachMessage,
	}
	if err := u.mailer.SendKit(ctx, usr.Email, msg); err != nil {
		return false, ErrInternal
	}
	return true, nil
}
