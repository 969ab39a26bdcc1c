package postgres

import (
	"context"
	"fmt"

	"pressroom/internal/repository"
)

type UserRepo struct {
	db DBTX
}

func NewUserRepo(db DBTX) repository.UserRepository {
	return &UserRepo{db: db}
}

// ClearAll truncates the users table with cascade so rows referencing users
// elsewhere never dangle after a reset.
func (repo *UserRepo) ClearAll(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, `TRUNCATE users RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("ClearAll: %w", err)
	}
	return nil
}
