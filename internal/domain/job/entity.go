package job

import (
	"time"

	"github.com/google/uuid"
)

type Board struct {
	ID        uuid.UUID
	Name      string
	BaseURL   *string
	CreatedAt time.Time
}

type Job struct {
	ID          uuid.UUID
	BoardID     *uuid.UUID
	ExternalID  *string
	DedupHash   string
	Title       *string
	Company     *string
	Location    *string
	Remote      bool
	SalaryMin   *float64
	SalaryMax   *float64
	Currency    *string
	Description *string
	URL         *string
	Score       int
	PostedAt    *time.Time
	FetchedAt   *time.Time
	IsActive    bool
	CreatedAt   time.Time
}

type FetchRun struct {
	ID            uuid.UUID
	BoardID       *uuid.UUID
	Query         *string
	StartedAt     *time.Time
	FinishedAt    *time.Time
	Status        *string
	InsertedCount int
}

type FetchLog struct {
	ID         uuid.UUID
	FetchRunID uuid.UUID
	Level      *string
	Message    *string
	CreatedAt  time.Time
}
