package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Remotive struct {
	client  *http.Client
	apiBase string
	enabled bool
}

func NewRemotive(enabled bool) *Remotive {
	return &Remotive{
		client:  &http.Client{Timeout: 25 * time.Second},
		apiBase: "https://remotive.com",
		enabled: enabled,
	}
}

func (r *Remotive) Name() string    { return "Remotive" }
func (r *Remotive) BaseURL() string { return "https://remotive.com" }

// Remotive needs no credentials, only the toggle.
func (r *Remotive) Available() bool {
	return r != nil && r.enabled
}

type remotiveResponse struct {
	JobCount int `json:"job-count"`
	Jobs     []struct {
		ID                        int     `json:"id"`
		URL                       string  `json:"url"`
		Title                     string  `json:"title"`
		CompanyName               string  `json:"company_name"`
		CandidateRequiredLocation string  `json:"candidate_required_location"`
		Salary                    string  `json:"salary"`
		JobType                   string  `json:"job_type"`
		PublicationDate           *string `json:"publication_date"`
		Description               string  `json:"description"`
	} `json:"jobs"`
}

func (r *Remotive) Fetch(ctx context.Context, q Query) ([]Posting, error) {
	if !r.Available() {
		return nil, ErrUnavailable
	}

	v := url.Values{}
	if s := strings.TrimSpace(q.Text); s != "" {
		v.Set("search", s)
	}
	if q.Cap > 0 {
		v.Set("limit", fmt.Sprintf("%d", q.Cap))
	}
	u := strings.TrimRight(r.apiBase, "/") + "/api/remote-jobs"
	if enc := v.Encode(); enc != "" {
		u += "?" + enc
	}

	body, err := getJSONWithRetry(ctx, r.client, u, nil, 3)
	if err != nil {
		return nil, err
	}
	var resp remotiveResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	out := make([]Posting, 0, len(resp.Jobs))
	for _, j := range resp.Jobs {
		out = append(out, Posting{
			ExternalID:  fmt.Sprintf("%d", j.ID),
			Title:       j.Title,
			Company:     j.CompanyName,
			Location:    j.CandidateRequiredLocation,
			Remote:      true, // every Remotive listing is remote
			Description: j.Description,
			URL:         j.URL,
			PostedAt:    parseRFC3339OrNil(j.PublicationDate),
		})
	}
	return capPostings(out, q.Cap), nil
}
