package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobdeck/internal/database"
	"jobdeck/internal/domain/settings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (settings.SearchSettings, error)
	Upsert(ctx context.Context, s settings.SearchSettings) (settings.SearchSettings, error)
}

type PostgresSettingsRepository struct {
	db database.DB
}

func NewPostgresSettingsRepository(db database.DB) *PostgresSettingsRepository {
	return &PostgresSettingsRepository{db: db}
}

// GetByUserID returns zero-value settings (not an error) for users who
// never saved any; the aggregator treats that as "fetch nothing".
func (r *PostgresSettingsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (settings.SearchSettings, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, titles, locations, remote_only, min_salary, keywords, exclude_keywords, boards, updated_at
		 FROM search_settings WHERE user_id = $1`,
		userID,
	)

	var s settings.SearchSettings
	err := row.Scan(&s.ID, &s.UserID, &s.Titles, &s.Locations, &s.RemoteOnly, &s.MinSalary, &s.Keywords, &s.ExcludeKeywords, &s.Boards, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return settings.SearchSettings{UserID: userID}, nil
		}
		return settings.SearchSettings{}, err
	}
	return s, nil
}

func (r *PostgresSettingsRepository) Upsert(ctx context.Context, s settings.SearchSettings) (settings.SearchSettings, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO search_settings (id, user_id, titles, locations, remote_only, min_salary, keywords, exclude_keywords, boards)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
			titles = EXCLUDED.titles,
			locations = EXCLUDED.locations,
			remote_only = EXCLUDED.remote_only,
			min_salary = EXCLUDED.min_salary,
			keywords = EXCLUDED.keywords,
			exclude_keywords = EXCLUDED.exclude_keywords,
			boards = EXCLUDED.boards,
			updated_at = now()`,
		s.UserID,
		emptyIfNil(s.Titles),
		emptyIfNil(s.Locations),
		s.RemoteOnly,
		s.MinSalary,
		emptyIfNil(s.Keywords),
		emptyIfNil(s.ExcludeKeywords),
		emptyIfNil(s.Boards),
	)
	if err != nil {
		return settings.SearchSettings{}, err
	}
	return r.GetByUserID(ctx, s.UserID)
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
