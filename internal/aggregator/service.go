package aggregator

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobdeck/internal/database"
	"jobdeck/internal/domain/settings"
	"jobdeck/internal/provider"
)

type runCache interface {
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	InvalidateSearch(ctx context.Context, query string) error
}

// Notifier is called once per board that contributed postings.
type Notifier func(query, board string, count int)

type Options struct {
	Workers      int
	RateLimitRPS int
	PerBoardCap  int
}

type Service struct {
	db        database.DB
	providers []provider.Provider
	cache     runCache
	notify    Notifier
	logger    *log.Logger
	opts      Options
}

type RunSummary struct {
	Query   string
	Boards  []Result
	Total   int
	Skipped []string
}

func NewService(db database.DB, providers []provider.Provider, cache runCache, notify Notifier, logger *log.Logger, opts Options) *Service {
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.PerBoardCap <= 0 {
		opts.PerBoardCap = 100
	}
	return &Service{db: db, providers: providers, cache: cache, notify: notify, logger: logger, opts: opts}
}

// Run performs one aggregation pass for the given settings. Each enabled
// board runs as its own task; one board failing never aborts the others.
func (s *Service) Run(ctx context.Context, st settings.SearchSettings) (RunSummary, error) {
	if s == nil || s.db == nil {
		return RunSummary{}, fmt.Errorf("nil service/db")
	}

	query := queryText(st)
	location := firstNonEmpty(st.Locations)

	// No titles and no keywords means nothing to search for. Running
	// anyway would dump every enabled board unfiltered.
	if query == "" {
		if s.logger != nil {
			s.logger.Printf("[Aggregator] Run skipped, no search terms | location=%q", location)
		}
		return RunSummary{}, nil
	}

	if s.cache != nil {
		lockKey := runLockKey(query, location)
		ok, err := s.cache.SetIfNotExists(ctx, lockKey, "1", 2*time.Minute)
		if err == nil && !ok {
			if s.logger != nil {
				s.logger.Printf("[Aggregator] Run skipped, lock held | query=%q location=%q", query, location)
			}
			return RunSummary{Query: query}, nil
		}
		if err == nil && ok {
			// Release on completion so a sequential manual refresh
			// does not wait out the TTL.
			defer func() {
				_ = s.cache.Delete(context.Background(), lockKey)
			}()
		}
	}

	summary := RunSummary{Query: query}

	pool := NewWorkerPool(s.opts.Workers, len(s.providers))
	pool.SetRateLimit(s.opts.RateLimitRPS)
	results := pool.Run(ctx)

	submitted := 0
	for _, p := range s.providers {
		p := p
		if p == nil {
			continue
		}
		if !p.Available() {
			summary.Skipped = append(summary.Skipped, p.Name())
			continue
		}
		if len(st.Boards) > 0 && !boardWanted(st.Boards, p.Name()) {
			summary.Skipped = append(summary.Skipped, p.Name())
			continue
		}
		submitted++
		pool.Submit(func(ctx context.Context) Result {
			return s.runBoard(ctx, p, st, query, location)
		})
	}
	pool.Close()

	for res := range results {
		summary.Boards = append(summary.Boards, res)
		summary.Total += res.Count
		if res.Err != nil {
			if s.logger != nil {
				s.logger.Printf("[Aggregator] Board failed | board=%s err=%v", res.Board, res.Err)
			}
			continue
		}
		if s.notify != nil && res.Count > 0 {
			s.notify(query, res.Board, res.Count)
		}
	}

	if submitted > 0 && summary.Total > 0 && s.cache != nil {
		_ = s.cache.InvalidateSearch(ctx, query)
	}
	if s.logger != nil {
		s.logger.Printf("[Aggregator] Run finished | query=%q boards=%d total=%d skipped=%d",
			query, submitted, summary.Total, len(summary.Skipped))
	}

	return summary, nil
}

func (s *Service) runBoard(ctx context.Context, p provider.Provider, st settings.SearchSettings, query, location string) Result {
	boardID, err := ensureBoard(ctx, s.db, p.Name(), p.BaseURL())
	if err != nil {
		return Result{Board: p.Name(), Err: err}
	}

	runID, _ := createFetchRun(ctx, s.db, boardID, query)

	postings, err := p.Fetch(ctx, provider.Query{
		Text:     query,
		Location: location,
		Cap:      s.opts.PerBoardCap,
	})
	if err != nil {
		_ = logFetch(ctx, s.db, runID, "error", fmt.Sprintf("fetch: %v", err))
		_ = finishFetchRun(context.Background(), s.db, runID, "failed", 0)
		return Result{Board: p.Name(), Err: err}
	}

	inserted := 0
	for _, post := range postings {
		if strings.TrimSpace(post.Title) == "" {
			continue
		}
		score := Score(post, st)
		if err := upsertPosting(ctx, s.db, boardID, post, score); err != nil {
			_ = logFetch(ctx, s.db, runID, "error", fmt.Sprintf("upsert title=%q: %v", post.Title, err))
			continue
		}
		inserted++
	}

	_ = logFetch(ctx, s.db, runID, "info", fmt.Sprintf("board done fetched=%d upserted=%d", len(postings), inserted))
	_ = finishFetchRun(context.Background(), s.db, runID, "finished", inserted)

	return Result{Board: p.Name(), Count: inserted}
}

func runLockKey(query, location string) string {
	k := "aggregate:lock:"
	if query != "" {
		k += "q=" + strings.ToLower(query)
	}
	if location != "" {
		k += ":l=" + strings.ToLower(location)
	}
	return strings.Join(strings.Fields(k), " ")
}

func queryText(st settings.SearchSettings) string {
	if t := firstNonEmpty(st.Titles); t != "" {
		return t
	}
	return firstNonEmpty(st.Keywords)
}

func firstNonEmpty(items []string) string {
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s != "" {
			return s
		}
	}
	return ""
}

func boardWanted(wanted []string, name string) bool {
	for _, w := range wanted {
		if strings.EqualFold(strings.TrimSpace(w), name) {
			return true
		}
	}
	return false
}

