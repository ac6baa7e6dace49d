package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rishicodesforfun/Team-Diamond-Odoo-Hackathon/internal/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureDemoUser guarantees the fixed bypass identity (user id 1) exists,
// so development mode works against an empty database. The password hash is
// deliberately unusable; the demo user cannot log in with credentials.
func EnsureDemoUser(ctx context.Context, db *pgxpool.Pool) error {
	return repositories.WithTx(ctx, db, func(tx pgx.Tx) error {
		var existingID uint64
		err := tx.QueryRow(ctx, "SELECT id FROM users WHERE id = 1").Scan(&existingID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("check demo user: %w", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO users (id, email, password_hash, name, role)
			VALUES (1, 'demo@gearguard.com', '$2a$10$dummy.hash.for.mock.auth', 'Demo User', 'manager')
			ON CONFLICT (id) DO NOTHING
		`)
		if err != nil {
			return fmt.Errorf("insert demo user: %w", err)
		}

		// Keep the sequence ahead of the explicit id so the next signup
		// does not collide.
		_, err = tx.Exec(ctx, `
			SELECT setval('users_id_seq', GREATEST((SELECT MAX(id) FROM users) + 1, 2), false)
		`)
		if err != nil {
			return fmt.Errorf("advance users sequence: %w", err)
		}

		log.Println("created default demo user (id 1)")
		return nil
	})
}
