package kit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application kit not found")

// ApplicationKit is the bundle of generated text for one job application.
type ApplicationKit struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	JobID           uuid.UUID
	ResumeSummary   string
	CoverLetter     string
	OutreachMessage string
	Model           *string
	GeneratedAt     time.Time
}
