package aggregator

import (
	"context"
	"log"
	"strings"
	"time"

	"jobdeck/internal/domain/settings"
)

type latestFetchedStore interface {
	LatestFetchedAt(ctx context.Context, query, location string) (time.Time, error)
}

type freshnessCache interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
}

// FreshnessService triggers a background aggregation pass when the stored
// postings for a query have gone stale.
type FreshnessService struct {
	store     latestFetchedStore
	agg       *Service
	cache     freshnessCache
	logger    *log.Logger
	threshold time.Duration
}

func NewFreshnessService(store latestFetchedStore, agg *Service, cache freshnessCache, logger *log.Logger, freshnessMinutes int) *FreshnessService {
	threshold := time.Duration(freshnessMinutes) * time.Minute
	if threshold <= 0 {
		threshold = 30 * time.Minute
	}
	return &FreshnessService{store: store, agg: agg, cache: cache, logger: logger, threshold: threshold}
}

func (s *FreshnessService) EnsureFresh(ctx context.Context, query, location string) {
	if s == nil || s.store == nil || s.agg == nil {
		return
	}

	query = strings.TrimSpace(query)
	location = strings.TrimSpace(location)
	if query == "" && location == "" {
		return
	}

	latest, err := s.store.LatestFetchedAt(ctx, query, location)
	if err != nil {
		return
	}
	stale := latest.IsZero() || time.Since(latest) > s.threshold
	if !stale {
		return
	}
	if s.logger != nil {
		s.logger.Printf("[Freshness] Stale results | query=%q location=%q latest=%v threshold=%s", query, location, latest, s.threshold)
	}

	lockKey := freshnessLockKey(query, location)
	if s.cache != nil {
		ok, err := s.cache.SetIfNotExists(ctx, lockKey, "1", 2*time.Minute)
		if err != nil || !ok {
			return
		}
	}

	st := settings.SearchSettings{}
	if query != "" {
		st.Titles = []string{query}
	}
	if location != "" {
		st.Locations = []string{location}
	}

	go func() {
		runCtx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		if _, err := s.agg.Run(runCtx, st); err != nil && s.logger != nil {
			s.logger.Printf("[Freshness] Background run failed | query=%q err=%v", query, err)
		}
	}()
}

func freshnessLockKey(query, location string) string {
	k := "jobs:freshness:lock:"
	if query != "" {
		k += "q=" + strings.ToLower(query)
	}
	if location != "" {
		k += ":l=" + strings.ToLower(location)
	}
	return strings.Join(strings.Fields(k), " ")
}
