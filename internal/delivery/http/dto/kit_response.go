package dto

import (
	"time"

	"jobdeck/internal/domain/kit"

	"github.com/google/uuid"
)

type KitResponse struct {
	ID              uuid.UUID `json:"id"`
	JobID           uuid.UUID `json:"job_id"`
	ResumeSummary   string    `json:"resume_summary"`
	CoverLetter     string    `json:"cover_letter"`
	OutreachMessage string    `json:"outreach_message"`
	Model           *string   `json:"model"`
	GeneratedAt     time.Time `json:"generated_at"`
}

func NewKitResponse(k kit.ApplicationKit) KitResponse {
	return KitResponse{
		ID:              k.ID,
		JobID:           k.JobID,
		ResumeSummary:   k.ResumeSummary,
		CoverLetter:     k.CoverLetter,
		OutreachMessage: k.OutreachMessage,
		Model:           k.Model,
		GeneratedAt:     k.GeneratedAt,
	}
}
