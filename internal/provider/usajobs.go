package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type USAJobs struct {
	client    *http.Client
	apiBase   string
	apiKey    string
	userAgent string
}

func NewUSAJobs(apiKey, agent string) *USAJobs {
	return &USAJobs{
		client:    &http.Client{Timeout: 25 * time.Second},
		apiBase:   "https://data.usajobs.gov",
		apiKey:    strings.TrimSpace(apiKey),
		userAgent: strings.TrimSpace(agent),
	}
}

func (u *USAJobs) Name() string    { return "USAJobs" }
func (u *USAJobs) BaseURL() string { return "https://www.usajobs.gov" }

// USAJobs requires both an API key and a registered contact email
// sent as the User-Agent header.
func (u *USAJobs) Available() bool {
	return u != nil && u.apiKey != "" && u.userAgent != ""
}

type usajobsResponse struct {
	SearchResult struct {
		SearchResultItems []struct {
			MatchedObjectID         string `json:"MatchedObjectId"`
			MatchedObjectDescriptor struct {
				PositionTitle           string `json:"PositionTitle"`
				OrganizationName        string `json:"OrganizationName"`
				PositionLocationDisplay string `json:"PositionLocationDisplay"`
				PositionURI             string `json:"PositionURI"`
				PublicationStartDate    string `json:"PublicationStartDate"`
				PositionRemuneration    []struct {
					MinimumRange     string `json:"MinimumRange"`
					MaximumRange     string `json:"MaximumRange"`
					RateIntervalCode string `json:"RateIntervalCode"`
				} `json:"PositionRemuneration"`
				UserArea struct {
					Details struct {
						JobSummary     string `json:"JobSummary"`
						TeleworkEligibilityText string `json:"TeleworkEligibilityText"`
					} `json:"Details"`
				} `json:"UserArea"`
			} `json:"MatchedObjectDescriptor"`
		} `json:"SearchResultItems"`
	} `json:"SearchResult"`
}

func (u *USAJobs) Fetch(ctx context.Context, q Query) ([]Posting, error) {
	if !u.Available() {
		return nil, ErrUnavailable
	}

	v := url.Values{}
	if s := strings.TrimSpace(q.Text); s != "" {
		v.Set("Keyword", s)
	}
	if s := strings.TrimSpace(q.Location); s != "" {
		v.Set("LocationName", s)
	}
	if q.Cap > 0 && q.Cap < 500 {
		v.Set("ResultsPerPage", strconv.Itoa(q.Cap))
	}

	endpoint := strings.TrimRight(u.apiBase, "/") + "/api/search"
	if enc := v.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	headers := map[string]string{
		"Authorization-Key": u.apiKey,
		"User-Agent":        u.userAgent,
		"Host":              "data.usajobs.gov",
	}
	body, err := getJSONWithRetry(ctx, u.client, endpoint, headers, 3)
	if err != nil {
		return nil, err
	}

	var resp usajobsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	items := resp.SearchResult.SearchResultItems
	out := make([]Posting, 0, len(items))
	for _, it := range items {
		d := it.MatchedObjectDescriptor
		p := Posting{
			ExternalID:  it.MatchedObjectID,
			Title:       d.PositionTitle,
			Company:     d.OrganizationName,
			Location:    d.PositionLocationDisplay,
			Remote:      looksRemote(d.PositionLocationDisplay, d.UserArea.Details.TeleworkEligibilityText),
			Description: d.UserArea.Details.JobSummary,
			URL:         d.PositionURI,
			Currency:    "USD",
		}
		if d.PublicationStartDate != "" {
			s := d.PublicationStartDate
			p.PostedAt = parseRFC3339OrNil(&s)
		}
		for _, rem := range d.PositionRemuneration {
			// Only yearly figures map cleanly onto salary_min/salary_max.
			if !strings.EqualFold(rem.RateIntervalCode, "PA") && !strings.EqualFold(rem.RateIntervalCode, "Per Year") {
				continue
			}
			if min, err := strconv.ParseFloat(strings.TrimSpace(rem.MinimumRange), 64); err == nil {
				p.SalaryMin = &min
			}
			if max, err := strconv.ParseFloat(strings.TrimSpace(rem.MaximumRange), 64); err == nil {
				p.SalaryMax = &max
			}
			break
		}
		out = append(out, p)
	}
	return capPostings(out, q.Cap), nil
}
