package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	Role           string
	ApprovalStatus string
	ApprovedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u User) IsApproved() bool {
	return u.Role == RoleAdmin || u.ApprovalStatus == ApprovalApproved
}

type Profile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	FullName        *string
	Headline        *string
	Location        *string
	YearsExperience *int16
	Skills          []string
	ResumeSummary   *string
	Links           map[string]string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ValidApprovalStatus(s string) bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}
