package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"jobdeck/internal/domain/job"
	"jobdeck/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	items []job.Job
	byID  map[uuid.UUID]job.Job
	err   error
}

func (m mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	j, ok := m.byID[id]
	if !ok {
		return job.Job{}, repository.ErrJobNotFound
	}
	return j, nil
}

func (m mockJobRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byID[id]
	return ok, nil
}

func (m mockJobRepo) ListJobs(context.Context, repository.JobListFilter) ([]job.Job, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m mockJobRepo) LatestFetchedAt(context.Context, string, string) (time.Time, error) {
	return time.Time{}, nil
}

type recordingFreshness struct {
	queries []string
}

func (r *recordingFreshness) EnsureFresh(_ context.Context, query, _ string) {
	r.queries = append(r.queries, query)
}

func strPtr(s string) *string { return &s }

func TestJobListUsecase_ListJobs_InvalidLimit(t *testing.T) {
	uc := NewJobListUsecase(mockJobRepo{}, nil, nil, nil)
	_, err := uc.ListJobs(context.Background(), JobListParams{Limit: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	_, err = uc.ListJobs(context.Background(), JobListParams{Limit: 51})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for limit above cap, got %v", err)
	}
}

func TestJobListUsecase_ListJobs_NegativeOffset(t *testing.T) {
	uc := NewJobListUsecase(mockJobRepo{}, nil, nil, nil)
	_, err := uc.ListJobs(context.Background(), JobListParams{Offset: -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestJobListUsecase_ListJobs_Success(t *testing.T) {
	jobID := uuid.New()
	posted := time.Now().UTC()
	uc := NewJobListUsecase(mockJobRepo{items: []job.Job{{
		ID:       jobID,
		Title:    strPtr("Backend Engineer"),
		Company:  strPtr("Acme"),
		Location: strPtr("Berlin"),
		Remote:   true,
		Score:    45,
		PostedAt: &posted,
	}}}, nil, nil, nil)

	items, err := uc.ListJobs(context.Background(), JobListParams{Limit: 20})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].JobID != jobID {
		t.Fatalf("unexpected job id")
	}
	if items[0].Title != "Backend Engineer" || items[0].Score != 45 || !items[0].Remote {
		t.Fatalf("unexpected item mapping: %+v", items[0])
	}
}

func TestJobListUsecase_ListJobs_TriggersFreshness(t *testing.T) {
	fresh := &recordingFreshness{}
	uc := NewJobListUsecase(mockJobRepo{}, fresh, nil, nil)

	if _, err := uc.ListJobs(context.Background(), JobListParams{Query: "go engineer"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fresh.queries) != 1 || fresh.queries[0] != "go engineer" {
		t.Fatalf("expected one freshness check for the query, got %v", fresh.queries)
	}

	if _, err := uc.ListJobs(context.Background(), JobListParams{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(fresh.queries) != 1 {
		t.Fatalf("empty query must not trigger freshness, got %v", fresh.queries)
	}
}

func TestJobListUsecase_GetJob_NotFound(t *testing.T) {
	uc := NewJobListUsecase(mockJobRepo{byID: map[uuid.UUID]job.Job{}}, nil, nil, nil)
	_, err := uc.GetJob(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
