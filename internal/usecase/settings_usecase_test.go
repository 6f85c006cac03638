package usecase

import (
	"context"
	"errors"
	"testing"

	"jobdeck/internal/domain/settings"

	"github.com/google/uuid"
)

type mockSettingsRepo struct {
	stored settings.SearchSettings
	err    error
}

func (m *mockSettingsRepo) GetByUserID(_ context.Context, userID uuid.UUID) (settings.SearchSettings, error) {
	if m.err != nil {
		return settings.SearchSettings{}, m.err
	}
	s := m.stored
	s.UserID = userID
	return s, nil
}

func (m *mockSettingsRepo) Upsert(_ context.Context, s settings.SearchSettings) (settings.SearchSettings, error) {
	if m.err != nil {
		return settings.SearchSettings{}, m.err
	}
	m.stored = s
	return s, nil
}

var testBoards = []string{"Adzuna", "Remotive", "USAJobs", "The Muse", "Careers Pages"}

func TestSettingsUsecase_Update_RejectsUnknownBoard(t *testing.T) {
	uc := NewSettingsUsecase(&mockSettingsRepo{}, testBoards)

	_, err := uc.Update(context.Background(), uuid.New(), SettingsInput{Boards: []string{"LinkedIn"}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSettingsUsecase_Update_BoardNameCaseInsensitive(t *testing.T) {
	uc := NewSettingsUsecase(&mockSettingsRepo{}, testBoards)

	s, err := uc.Update(context.Background(), uuid.New(), SettingsInput{Boards: []string{"remotive", "ADZUNA"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.Boards) != 2 {
		t.Fatalf("expected 2 boards, got %v", s.Boards)
	}
}

func TestSettingsUsecase_Update_DeduplicatesLists(t *testing.T) {
	uc := NewSettingsUsecase(&mockSettingsRepo{}, testBoards)

	s, err := uc.Update(context.Background(), uuid.New(), SettingsInput{
		Titles:   []string{"Go Engineer", " go engineer ", "", "Backend Developer"},
		Keywords: []string{"kubernetes", "Kubernetes"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(s.Titles) != 2 {
		t.Fatalf("expected deduplicated titles, got %v", s.Titles)
	}
	if len(s.Keywords) != 1 {
		t.Fatalf("expected deduplicated keywords, got %v", s.Keywords)
	}
}

func TestSettingsUsecase_Update_NegativeSalary(t *testing.T) {
	uc := NewSettingsUsecase(&mockSettingsRepo{}, testBoards)

	bad := -1.0
	_, err := uc.Update(context.Background(), uuid.New(), SettingsInput{MinSalary: &bad})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSettingsUsecase_Get_PassesThrough(t *testing.T) {
	repo := &mockSettingsRepo{stored: settings.SearchSettings{Titles: []string{"Go Engineer"}}}
	uc := NewSettingsUsecase(repo, testBoards)

	userID := uuid.New()
	s, err := uc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s.UserID != userID || len(s.Titles) != 1 {
		t.Fatalf("unexpected settings: %+v", s)
	}
}
