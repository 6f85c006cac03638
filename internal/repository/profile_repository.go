package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobdeck/internal/database"
	"jobdeck/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error)
	Upsert(ctx context.Context, p user.Profile) (user.Profile, error)
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (user.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, full_name, headline, location, years_experience, skills, resume_summary, links, created_at, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	)

	var p user.Profile
	var links []byte
	err := row.Scan(&p.ID, &p.UserID, &p.FullName, &p.Headline, &p.Location, &p.YearsExperience, &p.Skills, &p.ResumeSummary, &links, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.Profile{}, user.ErrNotFound
		}
		return user.Profile{}, err
	}
	if len(links) > 0 {
		_ = json.Unmarshal(links, &p.Links)
	}
	return p, nil
}

func (r *PostgresProfileRepository) Upsert(ctx context.Context, p user.Profile) (user.Profile, error) {
	links := p.Links
	if links == nil {
		links = map[string]string{}
	}
	linksJSON, err := json.Marshal(links)
	if err != nil {
		return user.Profile{}, err
	}
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO profiles (id, user_id, full_name, headline, location, years_experience, skills, resume_summary, links)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			headline = EXCLUDED.headline,
			location = EXCLUDED.location,
			years_experience = EXCLUDED.years_experience,
			skills = EXCLUDED.skills,
			resume_summary = EXCLUDED.resume_summary,
			links = EXCLUDED.links,
			updated_at = now()`,
		p.UserID, p.FullName, p.Headline, p.Location, p.YearsExperience, skills, p.ResumeSummary, linksJSON,
	)
	if err != nil {
		return user.Profile{}, err
	}

	return r.GetByUserID(ctx, p.UserID)
}
