package services

import (
	"testing"
	"time"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/mocks"
)

// createAuthServiceForTest creates an AuthService with mock dependencies
func createAuthServiceForTest(t *testing.T,
	userRepo domain.UserRepository,
	tokenRepo domain.RefreshTokenRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService) domain.AuthService {
	t.Helper()

	if userRepo == nil {
		userRepo = mocks.NewMockUserRepository()
	}
	if tokenRepo == nil {
		tokenRepo = mocks.NewMockRefreshTokenRepository()
	}
	if passwordSvc == nil {
		passwordSvc = mocks.NewMockPasswordService()
	}
	if tokenSvc == nil {
		tokenSvc = mocks.NewMockTokenService()
	}

	return NewAuthService(userRepo, tokenRepo, passwordSvc, tokenSvc)
}

// createValidUser creates a valid user entity for testing
func createValidUser(t *testing.T) *domain.User {
	t.Helper()
	return &domain.User{
		ID:           "user-1",
		Email:        "test@example.com",
		PasswordHash: "hashed_password123",
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
}
