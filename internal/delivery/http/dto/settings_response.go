package dto

import (
	"time"

	"jobdeck/internal/domain/settings"
)

type SettingsResponse struct {
	Titles          []string  `json:"titles"`
	Locations       []string  `json:"locations"`
	RemoteOnly      bool      `json:"remote_only"`
	MinSalary       *float64  `json:"min_salary"`
	Keywords        []string  `json:"keywords"`
	ExcludeKeywords []string  `json:"exclude_keywords"`
	Boards          []string  `json:"boards"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewSettingsResponse(s settings.SearchSettings) SettingsResponse {
	return SettingsResponse{
		Titles:          emptyIfNilSlice(s.Titles),
		Locations:       emptyIfNilSlice(s.Locations),
		RemoteOnly:      s.RemoteOnly,
		MinSalary:       s.MinSalary,
		Keywords:        emptyIfNilSlice(s.Keywords),
		ExcludeKeywords: emptyIfNilSlice(s.ExcludeKeywords),
		Boards:          emptyIfNilSlice(s.Boards),
		UpdatedAt:       s.UpdatedAt,
	}
}

func emptyIfNilSlice(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
