package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// CareersTarget describes one static careers page to harvest with CSS
// selectors. Targets come from the CAREERS_TARGETS env var as a JSON array.
type CareersTarget struct {
	Company       string `json:"company"`
	ListURL       string `json:"list_url"`
	LinkSelector  string `json:"link_selector"`
	TitleSelector string `json:"title_selector"`
	LocSelector   string `json:"location_selector"`
}

type Careers struct {
	targets []CareersTarget
}

func NewCareers(rawTargets string) *Careers {
	c := &Careers{}
	rawTargets = strings.TrimSpace(rawTargets)
	if rawTargets == "" {
		return c
	}
	var targets []CareersTarget
	if err := json.Unmarshal([]byte(rawTargets), &targets); err != nil {
		return c
	}
	for _, t := range targets {
		if strings.TrimSpace(t.Company) == "" || strings.TrimSpace(t.ListURL) == "" {
			continue
		}
		if strings.TrimSpace(t.LinkSelector) == "" {
			t.LinkSelector = "a"
		}
		c.targets = append(c.targets, t)
	}
	return c
}

func (c *Careers) Name() string    { return "Careers Pages" }
func (c *Careers) BaseURL() string { return "" }

func (c *Careers) Available() bool {
	return c != nil && len(c.targets) > 0
}

func (c *Careers) Fetch(ctx context.Context, q Query) ([]Posting, error) {
	if !c.Available() {
		return nil, ErrUnavailable
	}

	needle := strings.ToLower(strings.TrimSpace(q.Text))
	out := make([]Posting, 0)
	var lastErr error

	for _, t := range c.targets {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		postings, err := c.fetchTarget(ctx, t, needle)
		if err != nil {
			lastErr = fmt.Errorf("careers %s: %w", t.Company, err)
			continue
		}
		out = append(out, postings...)
		if q.Cap > 0 && len(out) >= q.Cap {
			break
		}
	}

	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return capPostings(out, q.Cap), nil
}

func (c *Careers) fetchTarget(ctx context.Context, t CareersTarget, needle string) ([]Posting, error) {
	col := colly.NewCollector(colly.UserAgent(userAgent), colly.MaxDepth(1))
	_ = col.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, Delay: 450 * time.Millisecond})

	var postings []Posting
	seen := map[string]struct{}{}

	col.OnHTML(t.LinkSelector, func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		if _, ok := seen[abs]; ok {
			return
		}
		seen[abs] = struct{}{}

		title := strings.TrimSpace(e.Text)
		if t.TitleSelector != "" {
			if v := strings.TrimSpace(e.DOM.Find(t.TitleSelector).Text()); v != "" {
				title = v
			}
		}
		if title == "" {
			return
		}
		if needle != "" && !strings.Contains(strings.ToLower(title), needle) {
			return
		}
		loc := ""
		if t.LocSelector != "" {
			loc = strings.TrimSpace(e.DOM.Find(t.LocSelector).Text())
		}
		postings = append(postings, Posting{
			Title:    title,
			Company:  t.Company,
			Location: loc,
			Remote:   looksRemote(title, loc),
			URL:      abs,
		})
	})

	var reqErr error
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := col.Visit(t.ListURL); err != nil {
		return nil, err
	}
	col.Wait()
	if reqErr != nil {
		return nil, reqErr
	}
	return postings, nil
}
