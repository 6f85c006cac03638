package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobdeck/internal/database"
	"jobdeck/internal/domain/kit"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type KitRepository interface {
	Upsert(ctx context.Context, k kit.ApplicationKit) (kit.ApplicationKit, error)
	GetByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (kit.ApplicationKit, error)
}

type PostgresKitRepository struct {
	db database.DB
}

func NewPostgresKitRepository(db database.DB) *PostgresKitRepository {
	return &PostgresKitRepository{db: db}
}

// Upsert replaces any previous kit for the same user and job; regenerating
// is always allowed and always wins.
func (r *PostgresKitRepository) Upsert(ctx context.Context, k kit.ApplicationKit) (kit.ApplicationKit, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO application_kits (id, user_id, job_id, resume_summary, cover_letter, outreach_message, model, generated_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, now())
		 ON CONFLICT (user_id, job_id) DO UPDATE SET
			resume_summary = EXCLUDED.resume_summary,
			cover_letter = EXCLUDED.cover_letter,
			outreach_message = EXCLUDED.outreach_message,
			model = EXCLUDED.model,
			generated_at = now()`,
		k.UserID, k.JobID, k.ResumeSummary, k.CoverLetter, k.OutreachMessage, k.Model,
	)
	if err != nil {
		return kit.ApplicationKit{}, err
	}
	return r.GetByUserAndJob(ctx, k.UserID, k.JobID)
}

func (r *PostgresKitRepository) GetByUserAndJob(ctx context.Context, userID, jobID uuid.UUID) (kit.ApplicationKit, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, job_id, resume_summary, cover_letter, outreach_message, model, generated_at
		 FROM application_kits WHERE user_id = $1 AND job_id = $2`,
		userID, jobID,
	)

	var k kit.ApplicationKit
	err := row.Scan(&k.ID, &k.UserID, &k.JobID, &k.ResumeSummary, &k.CoverLetter, &k.OutreachMessage, &k.Model, &k.GeneratedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return kit.ApplicationKit{}, kit.ErrNotFound
		}
		return kit.ApplicationKit{}, err
	}
	return k, nil
}
