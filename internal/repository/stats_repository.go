package repository

import (
	"context"
	"time"

	"jobdeck/internal/database"
	"jobdeck/internal/domain"
)

type StatsRepository interface {
	TotalJobs(ctx context.Context) (int, error)
	JobsToday(ctx context.Context) (int, error)
	TotalApplications(ctx context.Context) (int, error)
	BoardStats(ctx context.Context) ([]domain.BoardStat, error)
}

type PostgresStatsRepository struct {
	db database.DB
}

func NewPostgresStatsRepository(db database.DB) *PostgresStatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) TotalJobs(ctx context.Context) (int, error) {
	return r.countRow(ctx, `SELECT COALESCE(COUNT(1), 0) FROM jobs WHERE is_active = true`)
}

func (r *PostgresStatsRepository) JobsToday(ctx context.Context) (int, error) {
	return r.countRow(ctx, `SELECT COALESCE(COUNT(1), 0) FROM jobs WHERE created_at >= date_trunc('day', now())`)
}

func (r *PostgresStatsRepository) TotalApplications(ctx context.Context) (int, error) {
	return r.countRow(ctx, `SELECT COALESCE(COUNT(1), 0) FROM applications`)
}

func (r *PostgresStatsRepository) BoardStats(ctx context.Context) ([]domain.BoardStat, error) {
	rows, err := r.db.Query(ctx,
		`SELECT b.name, COALESCE(COUNT(j.id), 0), COALESCE(MAX(j.created_at), 'epoch'::timestamptz)
		 FROM job_boards b
		 LEFT JOIN jobs j ON j.board_id = b.id
		 GROUP BY b.name
		 ORDER BY b.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.BoardStat, 0)
	for rows.Next() {
		var s domain.BoardStat
		var last time.Time
		if err := rows.Scan(&s.Board, &s.TotalJobs, &last); err != nil {
			return nil, err
		}
		s.LastJobTime = last.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresStatsRepository) countRow(ctx context.Context, query string) (int, error) {
	var c int
	row := r.db.QueryRow(ctx, query)
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}
