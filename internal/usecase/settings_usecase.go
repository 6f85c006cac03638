package usecase

import (
	"context"
	"strings"

	"jobdeck/internal/domain/settings"
	"jobdeck/internal/repository"

	"github.com/google/uuid"
)

const maxSettingsListLen = 20

type SettingsInput struct {
	Titles          []string
	Locations       []string
	RemoteOnly      bool
	MinSalary       *float64
	Keywords        []string
	ExcludeKeywords []string
	Boards          []string
}

type SettingsUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (settings.SearchSettings, error)
	Update(ctx context.Context, userID uuid.UUID, in SettingsInput) (settings.SearchSettings, error)
}

type Settings struct {
	repo   repository.SettingsRepository
	boards []string
}

// NewSettingsUsecase takes the set of board names the aggregator knows
// about. Board selections outside that set are rejected.
func NewSettingsUsecase(repo repository.SettingsRepository, knownBoards []string) *Settings {
	return &Settings{repo: repo, boards: knownBoards}
}

func (u *Settings) Get(ctx context.Context, userID uuid.UUID) (settings.SearchSettings, error) {
	s, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return settings.SearchSettings{}, ErrInternal
	}
	return s, nil
}

func (u *Settings) Update(ctx context.Context, userID uuid.UUID, in SettingsInput) (settings.SearchSettings, error) {
	if in.MinSalary != nil && *in.MinSalary < 0 {
		return settings.SearchSettings{}, ErrInvalidInput
	}

	titles := cleanList(in.Titles)
	locations := cleanList(in.Locations)
	keywords := cleanList(in.Keywords)
	excluded := cleanList(in.ExcludeKeywords)
	if len(titles) > maxSettingsListLen || len(locations) > maxSettingsListLen ||
		len(keywords) > maxSettingsListLen || len(excluded) > maxSettingsListLen {
		return settings.SearchSettings{}, ErrInvalidInput
	}

	boards := cleanList(in.Boards)
	for _, b := range boards {
		if !u.knownBoard(b) {
			return settings.SearchSettings{}, ErrInvalidInput
		}
	}

	saved, err := u.repo.Upsert(ctx, settings.SearchSettings{
		UserID:          userID,
		Titles:          titles,
		Locations:       locations,
		RemoteOnly:      in.RemoteOnly,
		MinSalary:       in.MinSalary,
		Keywords:        keywords,
		ExcludeKeywords: excluded,
		Boards:          boards,
	})
	if err != nil {
		return settings.SearchSettings{}, ErrInternal
	}
	return saved, nil
}

func (u *Settings) knownBoard(name string) bool {
	for _, b := range u.boards {
		if strings.EqualFold(b, name) {
			return true
		}
	}
	return false
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}
