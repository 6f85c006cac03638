package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jobdeck/internal/domain/job"
	"jobdeck/internal/repository"

	"github.com/google/uuid"
)

type JobListParams struct {
	Query      string
	Company    string
	Location   string
	RemoteOnly bool
	MinScore   int
	Limit      int
	Offset     int
}

type JobListItem struct {
	JobID     uuid.UUID  `json:"job_id"`
	Board     *uuid.UUID `json:"board_id,omitempty"`
	Title     string     `json:"title"`
	Company   string     `json:"company"`
	Location  string     `json:"location"`
	Remote    bool       `json:"remote"`
	SalaryMin *float64   `json:"salary_min,omitempty"`
	SalaryMax *float64   `json:"salary_max,omitempty"`
	Currency  string     `json:"currency,omitempty"`
	URL       string     `json:"url"`
	Score     int        `json:"score"`
	PostedAt  *time.Time `json:"posted_at,omitempty"`
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error)
	GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error)
}

type freshnessEnsurer interface {
	EnsureFresh(ctx context.Context, query, location string)
}

type JobList struct {
	jobs      repository.JobRepository
	freshness freshnessEnsurer
	cache     SearchCache
	logger    *log.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, freshness freshnessEnsurer, cache SearchCache, logger *log.Logger) *JobList {
	return &JobList{jobs: jobs, freshness: freshness, cache: cache, logger: logger}
}

func (u *JobList) ListJobs(ctx context.Context, params JobListParams) ([]JobListItem, error) {
	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit < 0 || limit > 50 {
		return nil, ErrInvalidInput
	}
	if params.Offset < 0 || params.MinScore < 0 {
		return nil, ErrInvalidInput
	}
	params.Limit = limit

	query := strings.TrimSpace(params.Query)
	if u != nil && u.freshness != nil && query != "" {
		u.freshness.EnsureFresh(ctx, query, strings.TrimSpace(params.Location))
	}

	cacheable := query != "" || params.Company != "" || params.Location != "" || params.RemoteOnly || params.MinScore > 0
	cacheKey := ""
	lockKey := ""
	if cacheable {
		cacheKey = JobsSearchCacheKey(params)
		lockKey = JobsSearchLockKey(cacheKey)

		if u != nil && u.cache != nil {
			var cached []JobListItem
			hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err == nil && hit {
				if u.logger != nil {
					u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
				}
				return cached, nil
			}
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache MISS: %s", cacheKey)
			}
		}
	}

	lockAcquired := false
	if cacheable && u != nil && u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			jitterMs := time.Duration(time.Now().UnixNano()%201) * time.Millisecond
			time.Sleep(300*time.Millisecond + jitterMs)
			var cached []JobListItem
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				if u.logger != nil {
					u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
				}
				return cached, nil
			}
			if u.logger != nil {
				u.logger.Printf("[Jobs] Lock wait fallback: %s", lockKey)
			}
		}
	}

	f := repository.JobListFilter{
		Query:      query,
		Company:    strings.TrimSpace(params.Company),
		Location:   strings.TrimSpace(params.Location),
		RemoteOnly: params.RemoteOnly,
		MinScore:   params.MinScore,
		Limit:      limit,
		Offset:     params.Offset,
	}
	rows, err := u.jobs.ListJobs(ctx, f)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]JobListItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, JobListItem{
			JobID:     r.ID,
			Board:     r.BoardID,
			Title:     strOrEmpty(r.Title),
			Company:   strOrEmpty(r.Company),
			Location:  strOrEmpty(r.Location),
			Remote:    r.Remote,
			SalaryMin: r.SalaryMin,
			SalaryMax: r.SalaryMax,
			Currency:  strOrEmpty(r.Currency),
			URL:       strOrEmpty(r.URL),
			Score:     r.Score,
			PostedAt:  r.PostedAt,
		})
	}

	if cacheable && u != nil && u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}
	return out, nil
}

func (u *JobList) GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
