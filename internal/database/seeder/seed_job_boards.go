package seeder

import (
	"context"
	"fmt"

	"jobdeck/internal/database"
)

type JobBoardsSeeder struct{}

func (JobBoardsSeeder) Name() string { return "job_boards" }

// Run inserts the boards the aggregator knows how to fetch. Names must
// match the provider names exactly, the aggregator looks boards up by
// name when recording fetch runs.
func (JobBoardsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_boards", "id", "name", "base_url", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name    string
		BaseURL string
	}{
		{Name: "Adzuna", BaseURL: "https://www.adzuna.com"},
		{Name: "Remotive", BaseURL: "https://remotive.com"},
		{Name: "USAJobs", BaseURL: "https://www.usajobs.gov"},
		{Name: "The Muse", BaseURL: "https://www.themuse.com"},
		{Name: "Careers Pages", BaseURL: ""},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO job_boards (id, name, base_url) VALUES (gen_random_uuid(), $1, NULLIF($2, '')) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.BaseURL,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
