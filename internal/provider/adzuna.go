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

type Adzuna struct {
	client  *http.Client
	apiBase string
	appID   string
	appKey  string
	country string
}

func NewAdzuna(appID, appKey, country string) *Adzuna {
	country = strings.ToLower(strings.TrimSpace(country))
	if country == "" {
		country = "us"
	}
	return &Adzuna{
		client:  &http.Client{Timeout: 25 * time.Second},
		apiBase: "https://api.adzuna.com",
		appID:   strings.TrimSpace(appID),
		appKey:  strings.TrimSpace(appKey),
		country: country,
	}
}

func (a *Adzuna) Name() string    { return "Adzuna" }
func (a *Adzuna) BaseURL() string { return "https://www.adzuna.com" }

func (a *Adzuna) Available() bool {
	return a != nil && a.appID != "" && a.appKey != ""
}

type adzunaResponse struct {
	Count   int `json:"count"`
	Results []struct {
		ID      string `json:"id"`
		Title   string `json:"title"`
		Company struct {
			DisplayName string `json:"display_name"`
		} `json:"company"`
		Location struct {
			DisplayName string `json:"display_name"`
		} `json:"location"`
		Description  string   `json:"description"`
		SalaryMin    *float64 `json:"salary_min"`
		SalaryMax    *float64 `json:"salary_max"`
		RedirectURL  string   `json:"redirect_url"`
		Created      *string  `json:"created"`
		ContractTime string   `json:"contract_time"`
	} `json:"results"`
}

func (a *Adzuna) Fetch(ctx context.Context, q Query) ([]Posting, error) {
	if !a.Available() {
		return nil, ErrUnavailable
	}

	perPage := 50
	if q.Cap > 0 && q.Cap < perPage {
		perPage = q.Cap
	}

	out := make([]Posting, 0, perPage)
	for page := 1; ; page++ {
		u := fmt.Sprintf("%s/v1/api/jobs/%s/search/%d?%s",
			strings.TrimRight(a.apiBase, "/"), a.country, page,
			url.Values{
				"app_id":           {a.appID},
				"app_key":          {a.appKey},
				"what":             {strings.TrimSpace(q.Text)},
				"where":            {strings.TrimSpace(q.Location)},
				"results_per_page": {fmt.Sprintf("%d", perPage)},
				"content-type":     {"application/json"},
			}.Encode(),
		)

		body, err := getJSONWithRetry(ctx, a.client, u, nil, 3)
		if err != nil {
			return out, err
		}
		var resp adzunaResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return out, err
		}
		if len(resp.Results) == 0 {
			break
		}

		for _, r := range resp.Results {
			loc := r.Location.DisplayName
			out = append(out, Posting{
				ExternalID:  r.ID,
				Title:       r.Title,
				Company:     r.Company.DisplayName,
				Location:    loc,
				Remote:      looksRemote(r.Title, loc, r.ContractTime),
				SalaryMin:   r.SalaryMin,
				SalaryMax:   r.SalaryMax,
				Description: r.Description,
				URL:         r.RedirectURL,
				PostedAt:    parseRFC3339OrNil(r.Created),
			})
		}

		if q.Cap > 0 && len(out) >= q.Cap {
			break
		}
		if len(out) >= resp.Count {
			break
		}
	}

	return capPostings(out, q.Cap), nil
}

func looksRemote(fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), "remote") {
			return true
		}
	}
	return false
}

func parseRFC3339OrNil(s *string) *time.Time {
	if s == nil {
		return nil
	}
	raw := strings.TrimSpace(*s)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05Z", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
