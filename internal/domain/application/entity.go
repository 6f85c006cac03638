package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	StatusSaved        = "saved"
	StatusApplied      = "applied"
	StatusInterviewing = "interviewing"
	StatusOffered      = "offered"
	StatusRejected     = "rejected"
)

var (
	ErrNotFound      = errors.New("application not found")
	ErrAlreadyExists = errors.New("application already exists for this job")
	ErrInvalidStatus = errors.New("invalid application status")
)

type Application struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JobID     uuid.UUID
	Status    string
	Notes     *string
	AppliedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidStatus reports whether s is one of the five pipeline values.
// The pipeline has no transition rules: any valid value may be written
// over any other.
func ValidStatus(s string) bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffered, StatusRejected:
		return true
	}
	return false
}

func Statuses() []string {
	return []string{StatusSaved, StatusApplied, StatusInterviewing, StatusOffered, StatusRejected}
}
