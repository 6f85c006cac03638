package provider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const usajobsPayload = `{
	"SearchResult": {
		"SearchResultItems": [
			{
				"MatchedObjectId": "823456700",
				"MatchedObjectDescriptor": {
					"PositionTitle": "IT Specialist (APPSW)",
					"OrganizationName": "Department of the Treasury",
					"PositionLocationDisplay": "Washington, DC",
					"PositionURI": "https://www.usajobs.gov/job/823456700",
					"PublicationStartDate": "2026-08-15T00:00:00",
					"PositionRemuneration": [
						{"MinimumRange": "99200.00", "MaximumRange": "153354.00", "RateIntervalCode": "PA"}
					],
					"UserArea": {
						"Details": {
							"JobSummary": "Design and maintain enterprise applications.",
							"TeleworkEligibilityText": "Telework eligible"
						}
					}
				}
			},
			{
				"MatchedObjectId": "823456701",
				"MatchedObjectDescriptor": {
					"PositionTitle": "Contact Representative",
					"OrganizationName": "Internal Revenue Service",
					"PositionLocationDisplay": "Remote - Anywhere in the U.S.",
					"PositionURI": "https://www.usajobs.gov/job/823456701",
					"PublicationStartDate": "",
					"PositionRemuneration": [
						{"MinimumRange": "18.50", "MaximumRange": "24.10", "RateIntervalCode": "PH"}
					],
					"UserArea": {
						"Details": {
							"JobSummary": "Assist taxpayers by phone.",
							"TeleworkEligibilityText": ""
						}
					}
				}
			}
		]
	}
}`

func TestUSAJobsFetch(t *testing.T) {
	var gotAuth, gotAgent, gotKeyword, gotLocation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization-Key")
		gotAgent = r.Header.Get("User-Agent")
		gotKeyword = r.URL.Query().Get("Keyword")
		gotLocation = r.URL.Query().Get("LocationName")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(usajobsPayload))
	}))
	defer srv.Close()

	p := NewUSAJobs("test-key", "dev@example.com")
	p.apiBase = srv.URL

	got, err := p.Fetch(context.Background(), Query{Text: "software", Location: "Washington"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotAuth != "test-key" {
		t.Fatalf("Authorization-Key = %q", gotAuth)
	}
	if gotAgent != "dev@example.com" {
		t.Fatalf("User-Agent = %q", gotAgent)
	}
	if gotKeyword != "software" || gotLocation != "Washington" {
		t.Fatalf("query params = %q / %q", gotKeyword, gotLocation)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 postings, got %d", len(got))
	}

	first := got[0]
	if first.ExternalID != "823456700" {
		t.Fatalf("external id = %q", first.ExternalID)
	}
	if first.Currency != "USD" {
		t.Fatalf("currency = %q", first.Currency)
	}
	if first.SalaryMin == nil || *first.SalaryMin != 99200 {
		t.Fatalf("yearly salary minimum should parse: %+v", first.SalaryMin)
	}
	if first.SalaryMax == nil || *first.SalaryMax != 153354 {
		t.Fatalf("yearly salary maximum should parse: %+v", first.SalaryMax)
	}
	if first.Remote {
		t.Fatalf("on-site listing should not read as remote")
	}
	if first.PostedAt == nil {
		t.Fatalf("publication start date should parse")
	}

	second := got[1]
	if second.SalaryMin != nil || second.SalaryMax != nil {
		t.Fatalf("hourly remuneration must not map to salary range")
	}
	if !second.Remote {
		t.Fatalf("location mentioning remote should read as remote")
	}
	if second.PostedAt != nil {
		t.Fatalf("empty publication date should map to nil")
	}
}

func TestUSAJobsAvailability(t *testing.T) {
	if NewUSAJobs("", "dev@example.com").Available() {
		t.Fatalf("missing api key must not report available")
	}
	if NewUSAJobs("key", "").Available() {
		t.Fatalf("missing user agent must not report available")
	}
	p := NewUSAJobs("", "")
	if _, err := p.Fetch(context.Background(), Query{Text: "go"}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
