package aggregator

import (
	"testing"

	"jobdeck/internal/domain/settings"
	"jobdeck/internal/provider"
)

func f64(v float64) *float64 { return &v }

func TestScore_TitleHitCountsOnce(t *testing.T) {
	p := provider.Posting{Title: "Senior Go Engineer"}
	s := settings.SearchSettings{Titles: []string{"go engineer", "engineer"}}

	if got := Score(p, s); got != pointsTitleHit {
		t.Fatalf("expected %d, got %d", pointsTitleHit, got)
	}
}

func TestScore_KeywordsAccumulate(t *testing.T) {
	p := provider.Posting{
		Title:       "Backend Engineer",
		Description: "We use Kubernetes and PostgreSQL in production.",
	}
	s := settings.SearchSettings{Keywords: []string{"kubernetes", "postgresql", "rust"}}

	if got := Score(p, s); got != 2*pointsKeywordHit {
		t.Fatalf("expected %d, got %d", 2*pointsKeywordHit, got)
	}
}

func TestScore_RemoteAndLocation(t *testing.T) {
	p := provider.Posting{Title: "Engineer", Location: "Berlin, Germany", Remote: true}
	s := settings.SearchSettings{Locations: []string{"berlin"}, RemoteOnly: true}

	want := pointsLocationHit + pointsRemoteWanted
	if got := Score(p, s); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestScore_SalaryMeetsMinimum(t *testing.T) {
	p := provider.Posting{Title: "Engineer", SalaryMin: f64(90000), SalaryMax: f64(120000)}
	s := settings.SearchSettings{MinSalary: f64(100000)}

	want := pointsSalaryPresent + pointsSalaryMeets
	if got := Score(p, s); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestScore_SalaryBelowMinimum(t *testing.T) {
	p := provider.Posting{Title: "Engineer", SalaryMax: f64(80000)}
	s := settings.SearchSettings{MinSalary: f64(100000)}

	if got := Score(p, s); got != pointsSalaryPresent {
		t.Fatalf("expected %d, got %d", pointsSalaryPresent, got)
	}
}

func TestScore_NeverNegative(t *testing.T) {
	p := provider.Posting{Title: "Crypto Evangelist", Description: "crypto blockchain"}
	s := settings.SearchSettings{ExcludeKeywords: []string{"crypto", "blockchain"}}

	if got := Score(p, s); got != 0 {
		t.Fatalf("expected floor at 0, got %d", got)
	}
}

func TestScore_ExcludePenaltyApplies(t *testing.T) {
	p := provider.Posting{Title: "Go Engineer", Description: "some agency work"}
	s := settings.SearchSettings{
		Titles:          []string{"go engineer"},
		ExcludeKeywords: []string{"agency"},
	}

	want := pointsTitleHit - penaltyExcluded
	if got := Score(p, s); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}
