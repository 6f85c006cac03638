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

type TheMuse struct {
	client  *http.Client
	apiBase string
	enabled bool
}

func NewTheMuse(enabled bool) *TheMuse {
	return &TheMuse{
		client:  &http.Client{Timeout: 25 * time.Second},
		apiBase: "https://www.themuse.com",
		enabled: enabled,
	}
}

func (m *TheMuse) Name() string    { return "The Muse" }
func (m *TheMuse) BaseURL() string { return "https://www.themuse.com" }

func (m *TheMuse) Available() bool {
	return m != nil && m.enabled
}

type museResponse struct {
	PageCount int `json:"page_count"`
	Results   []struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Company struct {
			Name string `json:"name"`
		} `json:"company"`
		Locations []struct {
			Name string `json:"name"`
		} `json:"locations"`
		Contents        string  `json:"contents"`
		PublicationDate *string `json:"publication_date"`
		Refs            struct {
			LandingPage string `json:"landing_page"`
		} `json:"refs"`
	} `json:"results"`
}

func (m *TheMuse) Fetch(ctx context.Context, q Query) ([]Posting, error) {
	if !m.Available() {
		return nil, ErrUnavailable
	}

	out := make([]Posting, 0, 20)
	for page := 1; ; page++ {
		v := url.Values{"page": {fmt.Sprintf("%d", page)}}
		if s := strings.TrimSpace(q.Location); s != "" {
			v.Set("location", s)
		}
		u := strings.TrimRight(m.apiBase, "/") + "/api/public/jobs?" + v.Encode()

		body, err := getJSONWithRetry(ctx, m.client, u, nil, 3)
		if err != nil {
			return out, err
		}
		var resp museResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return out, err
		}
		if len(resp.Results) == 0 {
			break
		}

		needle := strings.ToLower(strings.TrimSpace(q.Text))
		for _, r := range resp.Results {
			// The Muse has no free-text search parameter; filter client side.
			if needle != "" && !strings.Contains(strings.ToLower(r.Name), needle) {
				continue
			}
			locs := make([]string, 0, len(r.Locations))
			for _, l := range r.Locations {
				locs = append(locs, l.Name)
			}
			loc := strings.Join(locs, "; ")
			out = append(out, Posting{
				ExternalID:  fmt.Sprintf("%d", r.ID),
				Title:       r.Name,
				Company:     r.Company.Name,
				Location:    loc,
				Remote:      looksRemote(loc, r.Name),
				Description: r.Contents,
				URL:         r.Refs.LandingPage,
				PostedAt:    parseRFC3339OrNil(r.PublicationDate),
			})
		}

		if q.Cap > 0 && len(out) >= q.Cap {
			break
		}
		if page >= resp.PageCount {
			break
		}
	}
	return capPostings(out, q.Cap), nil
}
