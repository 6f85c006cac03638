package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"jobdeck/internal/database"
	"jobdeck/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (application.Application, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (application.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]application.Application, error)
	UpdateStatus(ctx context.Context, userID, id uuid.UUID, status string, notes *string) (application.Application, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, user_id, job_id, status, notes, applied_at, created_at, updated_at`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if !application.ValidStatus(a.Status) {
		return application.Application{}, application.ErrInvalidStatus
	}

	id := uuid.New()
	var appliedAt *time.Time
	if a.Status != application.StatusSaved {
		now := time.Now().UTC()
		appliedAt = &now
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, job_id, status, notes, applied_at) VALUES ($1,$2,$3,$4,$5,$6)`,
		id, a.UserID, a.JobID, a.Status, a.Notes, appliedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return application.Application{}, application.ErrAlreadyExists
		}
		return application.Application{}, err
	}

	return r.GetByID(ctx, a.UserID, id)
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	return scanApplication(row)
}

func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID uuid.UUID, status string, limit, offset int) ([]application.Application, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	var rows database.Rows
	var err error
	status = strings.TrimSpace(status)
	if status != "" {
		rows, err = r.db.Query(ctx,
			`SELECT `+applicationColumns+` FROM applications WHERE user_id = $1 AND status = $2 ORDER BY updated_at DESC LIMIT $3 OFFSET $4`,
			userID, status, limit, offset,
		)
	} else {
		rows, err = r.db.Query(ctx,
			`SELECT `+applicationColumns+` FROM applications WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2 OFFSET $3`,
			userID, limit, offset,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.Notes, &a.AppliedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status string, notes *string) (application.Application, error) {
	if !application.ValidStatus(status) {
		return application.Application{}, application.ErrInvalidStatus
	}

	// applied_at is stamped on the first move out of "saved" and kept after.
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET
			status = $3,
			notes = COALESCE($4, notes),
			applied_at = CASE WHEN applied_at IS NULL AND $3 <> 'saved' THEN now() ELSE applied_at END,
			updated_at = now()
		 WHERE id = $1 AND user_id = $2`,
		id, userID, status, notes,
	)
	if err != nil {
		return application.Application{}, err
	}
	if n == 0 {
		return application.Application{}, application.ErrNotFound
	}
	return r.GetByID(ctx, userID, id)
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications WHERE user_id = $1`, userID)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanApplication(row userRow) (application.Application, error) {
	var a application.Application
	if err := row.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.Notes, &a.AppliedAt, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
