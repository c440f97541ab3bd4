package mocks

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateAccessTokenFunc  func(userID, email string, admin bool) (string, time.Time, error)
	GenerateRefreshTokenFunc func(seed string) (string, error)
	ValidateAccessTokenFunc  func(token string) (*domain.TokenClaims, error)

	counter atomic.Int64
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// GenerateAccessToken issues a fake access token
func (m *MockTokenService) GenerateAccessToken(userID, email string, admin bool) (string, time.Time, error) {
	if m.GenerateAccessTokenFunc != nil {
		return m.GenerateAccessTokenFunc(userID, email, admin)
	}
	return "access_" + userID, time.Now().Add(15 * time.Minute), nil
}

// GenerateRefreshToken issues a unique fake refresh token
func (m *MockTokenService) GenerateRefreshToken(seed string) (string, error) {
	if m.GenerateRefreshTokenFunc != nil {
		return m.GenerateRefreshTokenFunc(seed)
	}
	return fmt.Sprintf("refresh_%s_%d", seed, m.counter.Add(1)), nil
}

// ValidateAccessToken decodes a fake access token
func (m *MockTokenService) ValidateAccessToken(token string) (*domain.TokenClaims, error) {
	if m.ValidateAccessTokenFunc != nil {
		return m.ValidateAccessTokenFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}
