package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// EnsureAdmin creates the configured admin account if it does not exist
// yet. Runs once at startup and is idempotent; with no admin credentials
// configured it is a no-op.
func EnsureAdmin(ctx context.Context, userRepo domain.UserRepository, passwordSvc domain.PasswordService, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return nil
	}

	hashed, err := passwordSvc.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	now := time.Now().UTC()
	admin := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashed,
		FirstName:    "Admin",
		Admin:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	return nil
}
