package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo    domain.UserRepository
	tokenRepo   domain.RefreshTokenRepository
	passwordSvc domain.PasswordService
}

// NewUserService creates a new user service
func NewUserService(
	userRepo domain.UserRepository,
	tokenRepo domain.RefreshTokenRepository,
	passwordSvc domain.PasswordService,
) domain.UserService {
	return &UserServiceImpl{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		passwordSvc: passwordSvc,
	}
}

// Get implements domain.UserService
func (s *UserServiceImpl) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// Update implements domain.UserService. Mutations are validated against
// the acting account's password: admins acting on another account prove
// their own password, everyone else their own. A password change
// revokes every other session the owner holds and clears the
// external-auth flag now that a local password exists.
func (s *UserServiceImpl) Update(ctx context.Context, id string, input domain.UpdateUserInput, actor *domain.TokenClaims) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err)
	}

	validator := user
	if actor.UserID != user.ID {
		if !actor.Admin {
			return nil, domain.ErrPermissionDenied
		}
		validator, err = s.userRepo.FindByID(ctx, actor.UserID)
		if err != nil {
			return nil, lookupErr(err)
		}
	}

	if !validator.ExternalAuth {
		if input.CurrentPassword == "" {
			return nil, domain.ErrPasswordRequired
		}
		if !s.passwordSvc.Verify(validator.PasswordHash, input.CurrentPassword) {
			return nil, domain.ErrInvalidCredentials
		}
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Admin != nil {
		// Only an existing admin may change the admin flag
		if !actor.Admin {
			return nil, domain.ErrPermissionDenied
		}
		user.Admin = *input.Admin
	}

	if input.NewPassword != "" {
		hashed, err := s.passwordSvc.Hash(input.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hashed
		user.ExternalAuth = false

		// Force re-authentication everywhere but the current session
		if err := s.tokenRepo.DeleteAllForUser(ctx, user.ID, input.CurrentRefreshToken); err != nil {
			return nil, fmt.Errorf("failed to revoke sessions: %w", err)
		}
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// lookupErr keeps the not-found sentinel intact while surfacing real
// storage failures instead of masking them as a 404.
func lookupErr(err error) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrUserNotFound
	}
	return fmt.Errorf("failed to look up user: %w", err)
}

// Delete implements domain.UserService. Removing an account
// cascade-revokes every refresh token it owns.
func (s *UserServiceImpl) Delete(ctx context.Context, id, currentPassword string, actor *domain.TokenClaims) error {
	if currentPassword == "" {
		return domain.ErrPasswordRequired
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return lookupErr(err)
	}

	validator := user
	if actor.UserID != user.ID {
		if !actor.Admin {
			return domain.ErrPermissionDenied
		}
		validator, err = s.userRepo.FindByID(ctx, actor.UserID)
		if err != nil {
			return lookupErr(err)
		}
	}

	if !s.passwordSvc.Verify(validator.PasswordHash, currentPassword) {
		return domain.ErrInvalidCredentials
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := s.tokenRepo.DeleteAllForUser(ctx, id, ""); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}
	return nil
}
