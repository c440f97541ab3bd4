package mocks

import (
	"context"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// MockRefreshTokenRepository implements domain.RefreshTokenRepository for testing
type MockRefreshTokenRepository struct {
	CreateFunc           func(ctx context.Context, token *domain.RefreshToken) error
	FindFunc             func(ctx context.Context, token string) (*domain.RefreshToken, error)
	RedeemFunc           func(ctx context.Context, token string) (*domain.RefreshToken, error)
	DeleteFunc           func(ctx context.Context, token, userID string) error
	DeleteAllForUserFunc func(ctx context.Context, userID, exceptToken string) error
}

// NewMockRefreshTokenRepository creates a new MockRefreshTokenRepository with default behaviors
func NewMockRefreshTokenRepository() *MockRefreshTokenRepository {
	return &MockRefreshTokenRepository{}
}

// Create persists a refresh token record
func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

// Find looks up a refresh token record
func (m *MockRefreshTokenRepository) Find(ctx context.Context, token string) (*domain.RefreshToken, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, token)
	}
	return nil, domain.ErrRefreshTokenNotFound
}

// Redeem atomically looks up and removes a record
func (m *MockRefreshTokenRepository) Redeem(ctx context.Context, token string) (*domain.RefreshToken, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, token)
	}
	return nil, domain.ErrRefreshTokenNotFound
}

// Delete removes a matching token/owner pair
func (m *MockRefreshTokenRepository) Delete(ctx context.Context, token, userID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, token, userID)
	}
	return nil
}

// DeleteAllForUser bulk-revokes a user's tokens
func (m *MockRefreshTokenRepository) DeleteAllForUser(ctx context.Context, userID, exceptToken string) error {
	if m.DeleteAllForUserFunc != nil {
		return m.DeleteAllForUserFunc(ctx, userID, exceptToken)
	}
	return nil
}
