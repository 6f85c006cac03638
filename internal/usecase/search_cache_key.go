package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type jobSearchCacheKeyInput struct {
	Query      string `json:"query"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	RemoteOnly bool   `json:"remote_only"`
	MinScore   int    `json:"min_score"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func JobsSearchCacheKey(params JobListParams) string {
	in := jobSearchCacheKeyInput{
		Query:      normalizeSearchValue(params.Query),
		Company:    normalizeSearchValue(params.Company),
		Location:   normalizeSearchValue(params.Location),
		RemoteOnly: params.RemoteOnly,
		MinScore:   params.MinScore,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return "jobs:search:" + h
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, "jobs:search:") {
		return "jobs:lock:" + strings.TrimPrefix(searchKey, "jobs:search:")
	}
	return "jobs:lock:" + searchKey
}
