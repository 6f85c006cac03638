package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobdeck/internal/database"
	"jobdeck/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobListFilter struct {
	Query      string
	Company    string
	Location   string
	RemoteOnly bool
	MinScore   int
	Limit      int
	Offset     int
}

type JobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	ListJobs(ctx context.Context, f JobListFilter) ([]job.Job, error)
	LatestFetchedAt(ctx context.Context, query, location string) (time.Time, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, board_id, external_id, dedup_hash,
	COALESCE(title, ''), COALESCE(company, ''), COALESCE(location, ''), remote,
	salary_min, salary_max, COALESCE(currency, ''), COALESCE(description, ''),
	COALESCE(url, ''), score, posted_at, fetched_at, is_active, created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresJobRepository) ListJobs(ctx context.Context, f JobListFilter) ([]job.Job, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	where := []string{"is_active = true"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		p := arg("%" + strings.ToLower(q) + "%")
		where = append(where, fmt.Sprintf("(lower(title) LIKE %s OR lower(description) LIKE %s)", p, p))
	}
	if c := strings.TrimSpace(f.Company); c != "" {
		where = append(where, fmt.Sprintf("lower(company) LIKE %s", arg("%"+strings.ToLower(c)+"%")))
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		where = append(where, fmt.Sprintf("lower(location) LIKE %s", arg("%"+strings.ToLower(l)+"%")))
	}
	if f.RemoteOnly {
		where = append(where, "remote = true")
	}
	if f.MinScore > 0 {
		where = append(where, fmt.Sprintf("score >= %s", arg(f.MinScore)))
	}

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY score DESC, posted_at DESC NULLS LAST, created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) LatestFetchedAt(ctx context.Context, query, location string) (time.Time, error) {
	where := []string{"is_active = true", "fetched_at IS NOT NULL"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if q := strings.TrimSpace(query); q != "" {
		where = append(where, fmt.Sprintf("lower(title) LIKE %s", arg("%"+strings.ToLower(q)+"%")))
	}
	if l := strings.TrimSpace(location); l != "" {
		where = append(where, fmt.Sprintf("lower(location) LIKE %s", arg("%"+strings.ToLower(l)+"%")))
	}

	row := r.db.QueryRow(ctx, `SELECT MAX(fetched_at) FROM jobs WHERE `+strings.Join(where, " AND "), args...)
	var latest *time.Time
	if err := row.Scan(&latest); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, err
	}
	if latest == nil {
		return time.Time{}, nil
	}
	return latest.UTC(), nil
}

type jobRow interface {
	Scan(dest ...any) error
}

func scanJob(row jobRow) (job.Job, error) {
	var j job.Job
	var (
		title, company, location, currency, description, url string
	)
	err := row.Scan(
		&j.ID, &j.BoardID, &j.ExternalID, &j.DedupHash,
		&title, &company, &location, &j.Remote,
		&j.SalaryMin, &j.SalaryMax, &currency, &description,
		&url, &j.Score, &j.PostedAt, &j.FetchedAt, &j.IsActive, &j.CreatedAt,
	)
	if err != nil {
		return job.Job{}, err
	}
	j.Title = optString(title)
	j.Company = optString(company)
	j.Location = optString(location)
	j.Currency = optString(currency)
	j.Description = optString(description)
	j.URL = optString(url)
	return j, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
