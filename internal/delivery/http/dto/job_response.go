package dto

import (
	"time"

	"jobdeck/internal/domain/job"
	"jobdeck/internal/usecase"

	"github.com/google/uuid"
)

type JobListResponse struct {
	JobID     uuid.UUID `json:"job_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company"`
	Location  string    `json:"location"`
	Remote    bool      `json:"remote"`
	SalaryMin *float64  `json:"salary_min,omitempty"`
	SalaryMax *float64  `json:"salary_max,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	URL       string    `json:"url"`
	Score     int       `json:"score"`
	PostedAt  string    `json:"posted_at,omitempty"`
}

type JobDetailResponse struct {
	JobID       uuid.UUID `json:"job_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Remote      bool      `json:"remote"`
	SalaryMin   *float64  `json:"salary_min,omitempty"`
	SalaryMax   *float64  `json:"salary_max,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Score       int       `json:"score"`
	PostedAt    string    `json:"posted_at,omitempty"`
	FetchedAt   string    `json:"fetched_at,omitempty"`
}

func NewJobListResponse(it usecase.JobListItem) JobListResponse {
	return JobListResponse{
		JobID:     it.JobID,
		Title:     it.Title,
		Company:   it.Company,
		Location:  it.Location,
		Remote:    it.Remote,
		SalaryMin: it.SalaryMin,
		SalaryMax: it.SalaryMax,
		Currency:  it.Currency,
		URL:       it.URL,
		Score:     it.Score,
		PostedAt:  formatTimePtr(it.PostedAt),
	}
}

func NewJobDetailResponse(j job.Job) JobDetailResponse {
	return JobDetailResponse{
		JobID:       j.ID,
		Title:       strDeref(j.Title),
		Company:     strDeref(j.Company),
		Location:    strDeref(j.Location),
		Remote:      j.Remote,
		SalaryMin:   j.SalaryMin,
		SalaryMax:   j.SalaryMax,
		Currency:    strDeref(j.Currency),
		Description: strDeref(j.Description),
		URL:         strDeref(j.URL),
		Score:       j.Score,
		PostedAt:    formatTimePtr(j.PostedAt),
		FetchedAt:   formatTimePtr(j.FetchedAt),
	}
}

func formatTimePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
