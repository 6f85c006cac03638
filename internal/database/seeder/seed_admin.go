package seeder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"jobdeck/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder bootstraps the first admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. With those unset it does nothing, so production
// deployments control whether a bootstrap admin exists.
type AdminSeeder struct{}

func (AdminSeeder) Name() string { return "admin_user" }

func (AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if err := EnsureTableColumns(ctx, db, "users", "id", "email", "password_hash", "role", "approval_status"); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.Exec(
		ctx,
		`INSERT INTO users (id, email, password_hash, role, approval_status, approved_at)
		 VALUES (gen_random_uuid(), $1, $2, 'admin', 'approved', NOW())
		 ON CONFLICT (email) DO NOTHING`,
		email,
		string(hash),
	)
	return err
}
