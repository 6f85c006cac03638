package provider

import (
	"context"
	"errors"
	"time"
)

var ErrUnavailable = errors.New("board provider unavailable")

// Posting is the normalized shape every board client maps into.
type Posting struct {
	ExternalID  string
	Title       string
	Company     string
	Location    string
	Remote      bool
	SalaryMin   *float64
	SalaryMax   *float64
	Currency    string
	Description string
	URL         string
	PostedAt    *time.Time
}

type Query struct {
	Text     string
	Location string
	Cap      int
}

// Provider is one job board. Available reports whether the client has the
// credentials it needs; unavailable providers are skipped, never errored.
type Provider interface {
	Name() string
	BaseURL() string
	Available() bool
	Fetch(ctx context.Context, q Query) ([]Posting, error)
}

func capPostings(items []Posting, cap int) []Posting {
	if cap > 0 && len(items) > cap {
		return items[:cap]
	}
	return items
}
