package dto

import (
	"time"

	"jobdeck/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	ApprovalStatus string    `json:"approval_status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ProfileResponse struct {
	FullName        *string           `json:"full_name"`
	Headline        *string           `json:"headline"`
	Location        *string           `json:"location"`
	YearsExperience *int16            `json:"years_experience"`
	Skills          []string          `json:"skills"`
	ResumeSummary   *string           `json:"resume_summary"`
	Links           map[string]string `json:"links"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type MeResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Role:           u.Role,
		ApprovalStatus: u.ApprovalStatus,
		CreatedAt:      u.CreatedAt,
	}
}

func NewProfileResponse(p user.Profile) ProfileResponse {
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	links := p.Links
	if links == nil {
		links = map[string]string{}
	}
	return ProfileResponse{
		FullName:        p.FullName,
		Headline:        p.Headline,
		Location:        p.Location,
		YearsExperience: p.YearsExperience,
		Skills:          skills,
		ResumeSummary:   p.ResumeSummary,
		Links:           links,
		UpdatedAt:       p.UpdatedAt,
	}
}
