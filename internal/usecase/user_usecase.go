package usecase

import (
	"context"
	"errors"
	"strings"

	"jobdeck/internal/domain/user"
	"jobdeck/internal/repository"

	"github.com/google/uuid"
)

type ProfileInput struct {
	FullName        *string
	Headline        *string
	Location        *string
	YearsExperience *int16
	Skills          []string
	ResumeSummary   *string
	Links           map[string]string
}

type UserUsecase interface {
	Me(ctx context.Context, userID uuid.UUID) (user.User, user.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error)
}

type Users struct {
	users    user.Repository
	profiles repository.ProfileRepository
}

func NewUserUsecase(users user.Repository, profiles repository.ProfileRepository) *Users {
	return &Users{users: users, profiles: profiles}
}

func (u *Users) Me(ctx context.Context, userID uuid.UUID) (user.User, user.Profile, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, user.Profile{}, ErrNotFound
		}
		return user.User{}, user.Profile{}, ErrInternal
	}
	usr.PasswordHash = ""

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return usr, user.Profile{UserID: userID}, nil
		}
		return user.User{}, user.Profile{}, ErrInternal
	}
	return usr, profile, nil
}

func (u *Users) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (user.Profile, error) {
	if in.YearsExperience != nil && *in.YearsExperience < 0 {
		return user.Profile{}, ErrInvalidInput
	}

	skills := make([]string, 0, len(in.Skills))
	for _, s := range in.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	p := user.Profile{
		UserID:          userID,
		FullName:        trimPtr(in.FullName),
		Headline:        trimPtr(in.Headline),
		Location:        trimPtr(in.Location),
		YearsExperience: in.YearsExperience,
		Skills:          skills,
		ResumeSummary:   trimPtr(in.ResumeSummary),
		Links:           in.Links,
	}

	saved, err := u.profiles.Upsert(ctx, p)
	if err != nil {
		return user.Profile{}, ErrInternal
	}
	return saved, nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
