package aggregator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobdeck/internal/database"
	"jobdeck/internal/provider"

	"github.com/google/uuid"
)

func ensureBoard(ctx context.Context, db database.DB, name, baseURL string) (uuid.UUID, error) {
	if db == nil {
		return uuid.Nil, fmt.Errorf("nil db")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, fmt.Errorf("empty board name")
	}

	_, _ = db.Exec(ctx,
		`INSERT INTO job_boards (id, name, base_url) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
		name,
		nullableText(baseURL),
	)

	row := db.QueryRow(ctx, `SELECT id FROM job_boards WHERE name = $1 LIMIT 1`, name)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func createFetchRun(ctx context.Context, db database.DB, boardID uuid.UUID, query string) (uuid.UUID, error) {
	if db == nil {
		return uuid.Nil, fmt.Errorf("nil db")
	}
	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(ctx,
		`INSERT INTO fetch_runs (id, board_id, query, started_at, status) VALUES ($1,$2,$3,$4,$5)`,
		id, boardID, nullableText(query), now, "running",
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func finishFetchRun(ctx context.Context, db database.DB, runID uuid.UUID, status string, inserted int) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if runID == uuid.Nil {
		return nil
	}
	_, err := db.Exec(ctx,
		`UPDATE fetch_runs SET finished_at = $2, status = $3, inserted_count = $4 WHERE id = $1`,
		runID, time.Now().UTC(), strings.TrimSpace(status), inserted,
	)
	return err
}

func logFetch(ctx context.Context, db database.DB, runID uuid.UUID, level, message string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if runID == uuid.Nil {
		return nil
	}
	_, err := db.Exec(ctx,
		`INSERT INTO fetch_logs (id, fetch_run_id, level, message) VALUES ($1,$2,$3,$4)`,
		uuid.New(), runID, level, message,
	)
	return err
}

// upsertPosting merges a posting on its dedup hash. First-seen identity
// (id, board, external id) is preserved; mutable fields refresh.
func upsertPosting(ctx context.Context, db database.DB, boardID uuid.UUID, p provider.Posting, score int) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if boardID == uuid.Nil {
		return fmt.Errorf("nil board_id")
	}

	hash := DedupHash(p.Title, p.Company, p.Location)
	now := time.Now().UTC()

	_, err := db.Exec(ctx,
		`INSERT INTO jobs (
			id, board_id, external_id, dedup_hash, title, company, location, remote,
			salary_min, salary_max, currency, description, url, score, posted_at, fetched_at, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (dedup_hash) DO UPDATE SET
			title = COALESCE(EXCLUDED.title, jobs.title),
			company = COALESCE(EXCLUDED.company, jobs.company),
			location = COALESCE(EXCLUDED.location, jobs.location),
			remote = EXCLUDED.remote,
			salary_min = COALESCE(EXCLUDED.salary_min, jobs.salary_min),
			salary_max = COALESCE(EXCLUDED.salary_max, jobs.salary_max),
			currency = COALESCE(EXCLUDED.currency, jobs.currency),
			description = COALESCE(EXCLUDED.description, jobs.description),
			url = COALESCE(EXCLUDED.url, jobs.url),
			score = GREATEST(EXCLUDED.score, jobs.score),
			posted_at = COALESCE(EXCLUDED.posted_at, jobs.posted_at),
			fetched_at = EXCLUDED.fetched_at,
			is_active = EXCLUDED.is_active`,
		uuid.New(),
		boardID,
		nullableText(p.ExternalID),
		hash,
		nullableText(p.Title),
		nullableText(p.Company),
		nullableText(p.Location),
		p.Remote,
		p.SalaryMin,
		p.SalaryMax,
		nullableText(p.Currency),
		nullableText(p.Description),
		nullableText(p.URL),
		score,
		p.PostedAt,
		now,
		true,
	)
	return err
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
