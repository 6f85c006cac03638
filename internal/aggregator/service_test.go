package aggregator

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"jobdeck/internal/database"
	"jobdeck/internal/domain/settings"
	"jobdeck/internal/provider"

	"github.com/google/uuid"
)

type fakeDB struct {
	mu      sync.Mutex
	execs   []string
	boardID uuid.UUID
}

func newFakeDB() *fakeDB {
	return &fakeDB{boardID: uuid.New()}
}

func (f *fakeDB) Ping(ctx context.Context) error { return nil }
func (f *fakeDB) Close() error                   { return nil }
func (f *fakeDB) SQLDB() *sql.DB                 { return nil }

func (f *fakeDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.execs = append(f.execs, query)
	return 1, nil
}

func (f *fakeDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return fakeRow{id: f.boardID}
}

func (f *fakeDB) Begin(ctx context.Context) (database.Tx, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeDB) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, q := range f.execs {
		if strings.Contains(q, "INSERT INTO jobs") {
			n++
		}
	}
	return n
}

type fakeRow struct{ id uuid.UUID }

func (r fakeRow) Scan(dest ...any) error {
	if len(dest) == 1 {
		if p, ok := dest[0].(*uuid.UUID); ok {
			*p = r.id
			return nil
		}
	}
	return errors.New("unexpected scan target")
}

type fakeRunCache struct {
	mu       sync.Mutex
	lockOK   bool
	acquired []string
	deleted  []string
	flushed  []string
}

func (c *fakeRunCache) SetIfNotExists(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockOK {
		c.acquired = append(c.acquired, key)
	}
	return c.lockOK, nil
}

func (c *fakeRunCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, key)
	return nil
}

func (c *fakeRunCache) InvalidateSearch(ctx context.Context, query string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushed = append(c.flushed, query)
	return nil
}

type fakeProvider struct {
	name      string
	available bool
	postings  []provider.Posting
	err       error

	mu    sync.Mutex
	calls int
}

func (p *fakeProvider) Name() string    { return p.name }
func (p *fakeProvider) BaseURL() string { return "https://" + strings.ToLower(p.name) + ".example" }
func (p *fakeProvider) Available() bool { return p.available }

func (p *fakeProvider) Fetch(ctx context.Context, q provider.Query) ([]provider.Posting, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	return p.postings, nil
}

func (p *fakeProvider) fetchCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func posting(title, company string) provider.Posting {
	return provider.Posting{Title: title, Company: company, Location: "Remote", Remote: true}
}

func newTestService(db database.DB, cache runCache, notify Notifier, providers ...provider.Provider) *Service {
	return NewService(db, providers, cache, notify, log.New(discard{}, "", 0), Options{Workers: 2})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestRunBoardFailureDoesNotAbortOthers(t *testing.T) {
	db := newFakeDB()
	cache := &fakeRunCache{lockOK: true}
	bad := &fakeProvider{name: "BadBoard", available: true, err: errors.New("boom")}
	good := &fakeProvider{name: "GoodBoard", available: true, postings: []provider.Posting{
		posting("Go Engineer", "Acme"),
		posting("Backend Engineer", "Globex"),
	}}

	var notified []string
	notify := func(query, board string, count int) {
		notified = append(notified, board)
	}

	svc := newTestService(db, cache, notify, bad, good)
	sum, err := svc.Run(context.Background(), settings.SearchSettings{Titles: []string{"engineer"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 2 {
		t.Fatalf("total = %d, want 2", sum.Total)
	}
	if len(sum.Boards) != 2 {
		t.Fatalf("expected results from both boards, got %d", len(sum.Boards))
	}
	failures := 0
	for _, r := range sum.Boards {
		if r.Err != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly one failed board, got %d", failures)
	}
	if len(notified) != 1 || notified[0] != "GoodBoard" {
		t.Fatalf("notify calls = %v", notified)
	}
	if db.upsertCount() != 2 {
		t.Fatalf("upserts = %d, want 2", db.upsertCount())
	}
	if len(cache.flushed) != 1 || cache.flushed[0] != "engineer" {
		t.Fatalf("search cache invalidation = %v", cache.flushed)
	}
}

func TestRunSkipsWhenLockHeld(t *testing.T) {
	db := newFakeDB()
	cache := &fakeRunCache{lockOK: false}
	p := &fakeProvider{name: "Board", available: true, postings: []provider.Posting{posting("Go Engineer", "Acme")}}

	svc := newTestService(db, cache, nil, p)
	sum, err := svc.Run(context.Background(), settings.SearchSettings{Titles: []string{"engineer"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 0 || len(sum.Boards) != 0 {
		t.Fatalf("locked run must not fetch: %+v", sum)
	}
	if p.fetchCalls() != 0 {
		t.Fatalf("provider called %d times under a held lock", p.fetchCalls())
	}
	if len(cache.deleted) != 0 {
		t.Fatalf("a lock we never held must not be released: %v", cache.deleted)
	}
}

func TestRunReleasesLockAfterCompletion(t *testing.T) {
	db := newFakeDB()
	cache := &fakeRunCache{lockOK: true}
	p := &fakeProvider{name: "Board", available: true, postings: []provider.Posting{posting("Go Engineer", "Acme")}}

	svc := newTestService(db, cache, nil, p)
	if _, err := svc.Run(context.Background(), settings.SearchSettings{Titles: []string{"engineer"}}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.acquired) != 1 {
		t.Fatalf("expected one lock acquisition, got %v", cache.acquired)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != cache.acquired[0] {
		t.Fatalf("lock must be released on completion: acquired=%v deleted=%v", cache.acquired, cache.deleted)
	}
}

func TestRunWithoutCacheStillFetches(t *testing.T) {
	db := newFakeDB()
	p := &fakeProvider{name: "Board", available: true, postings: []provider.Posting{posting("Go Engineer", "Acme")}}

	svc := newTestService(db, nil, nil, p)
	sum, err := svc.Run(context.Background(), settings.SearchSettings{Titles: []string{"engineer"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 1 {
		t.Fatalf("total = %d, want 1", sum.Total)
	}
	if p.fetchCalls() != 1 {
		t.Fatalf("provider calls = %d, want 1", p.fetchCalls())
	}
}

func TestRunSkipsWithoutSearchTerms(t *testing.T) {
	db := newFakeDB()
	cache := &fakeRunCache{lockOK: true}
	p := &fakeProvider{name: "Board", available: true, postings: []provider.Posting{posting("Go Engineer", "Acme")}}

	svc := newTestService(db, cache, nil, p)
	sum, err := svc.Run(context.Background(), settings.SearchSettings{Locations: []string{"Berlin"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Total != 0 || len(sum.Boards) != 0 {
		t.Fatalf("termless run must fetch nothing: %+v", sum)
	}
	if p.fetchCalls() != 0 {
		t.Fatalf("provider must not be called without search terms")
	}
	if len(cache.acquired) != 0 {
		t.Fatalf("no lock should be taken for a skipped run: %v", cache.acquired)
	}
}

func TestRunSkipsUnavailableAndUnwantedBoards(t *testing.T) {
	db := newFakeDB()
	dark := &fakeProvider{name: "DarkBoard", available: false}
	unwanted := &fakeProvider{name: "OtherBoard", available: true, postings: []provider.Posting{posting("Go Engineer", "Acme")}}
	wanted := &fakeProvider{name: "WantedBoard", available: true, postings: []provider.Posting{posting("Go Engineer", "Initech")}}

	svc := newTestService(db, nil, nil, dark, unwanted, wanted)
	sum, err := svc.Run(context.Background(), settings.SearchSettings{
		Titles: []string{"engineer"},
		Boards: []string{"wantedboard"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(sum.Skipped) != 2 {
		t.Fatalf("skipped = %v, want DarkBoard and OtherBoard", sum.Skipped)
	}
	if unwanted.fetchCalls() != 0 || dark.fetchCalls() != 0 {
		t.Fatalf("skipped boards must not be fetched")
	}
	if wanted.fetchCalls() != 1 || sum.Total != 1 {
		t.Fatalf("wanted board should run: calls=%d total=%d", wanted.fetchCalls(), sum.Total)
	}
}
