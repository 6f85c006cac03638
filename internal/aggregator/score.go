package aggregator

import (
	"strings"

	"jobdeck/internal/domain/settings"
	"jobdeck/internal/provider"
)

const (
	pointsTitleHit      = 30
	pointsKeywordHit    = 10
	pointsLocationHit   = 15
	pointsRemoteWanted  = 20
	pointsSalaryPresent = 5
	pointsSalaryMeets   = 15
	penaltyExcluded     = 25
)

// Score ranks a posting against a user's search settings with additive
// points over known fields. Scores never go below zero.
func Score(p provider.Posting, s settings.SearchSettings) int {
	title := strings.ToLower(p.Title)
	text := title + " " + strings.ToLower(p.Description)
	loc := strings.ToLower(p.Location)

	score := 0

	for _, t := range s.Titles {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if strings.Contains(title, t) {
			score += pointsTitleHit
			break
		}
	}

	for _, k := range s.Keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if strings.Contains(text, k) {
			score += pointsKeywordHit
		}
	}

	for _, l := range s.Locations {
		l = strings.ToLower(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if strings.Contains(loc, l) {
			score += pointsLocationHit
			break
		}
	}

	if s.RemoteOnly && p.Remote {
		score += pointsRemoteWanted
	}

	if p.SalaryMin != nil || p.SalaryMax != nil {
		score += pointsSalaryPresent
		if s.MinSalary != nil && salaryCeiling(p) >= *s.MinSalary {
			score += pointsSalaryMeets
		}
	}

	for _, x := range s.ExcludeKeywords {
		x = strings.ToLower(strings.TrimSpace(x))
		if x == "" {
			continue
		}
		if strings.Contains(text, x) {
			score -= penaltyExcluded
		}
	}

	if score < 0 {
		score = 0
	}
	return score
}

func salaryCeiling(p provider.Posting) float64 {
	if p.SalaryMax != nil {
		return *p.SalaryMax
	}
	if p.SalaryMin != nil {
		return *p.SalaryMin
	}
	return 0
}
