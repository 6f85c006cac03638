package dto

import (
	"time"

	"jobdeck/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`
	AppliedAt string    `json:"applied_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Status:    a.Status,
		Notes:     a.Notes,
		AppliedAt: formatTimePtr(a.AppliedAt),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
