package settings

import (
	"time"

	"github.com/google/uuid"
)

// SearchSettings drives what the aggregator fetches for a user.
type SearchSettings struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Titles          []string
	Locations       []string
	RemoteOnly      bool
	MinSalary       *float64
	Keywords        []string
	ExcludeKeywords []string
	Boards          []string
	UpdatedAt       time.Time
}
