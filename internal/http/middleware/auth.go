package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// AuthMW wraps the token service and refresh token store for middleware
type AuthMW struct {
	tokenSvc  domain.TokenService
	tokenRepo domain.RefreshTokenRepository
}

// NewAuthMW creates new auth middleware wrapper
func NewAuthMW(tokenSvc domain.TokenService, tokenRepo domain.RefreshTokenRepository) *AuthMW {
	return &AuthMW{
		tokenSvc:  tokenSvc,
		tokenRepo: tokenRepo,
	}
}

// WithBearer returns the bearer access-token middleware
func (mw *AuthMW) WithBearer() gin.HandlerFunc {
	return BearerMiddleware(mw.tokenSvc)
}

// WithRefreshCookie returns the refresh-cookie middleware
func (mw *AuthMW) WithRefreshCookie() gin.HandlerFunc {
	return RefreshCookieMiddleware(mw.tokenRepo)
}
