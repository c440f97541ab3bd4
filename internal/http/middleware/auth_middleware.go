package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// Context keys set by the middleware and read by handlers.
const (
	ContextUserID             = "user_id"
	ContextEmail              = "email"
	ContextAdmin              = "admin"
	ContextRefreshTokenRecord = "refresh_token_record"
)

// RefreshCookieName is the cookie carrying the opaque refresh token.
const RefreshCookieName = "refresh_token"

// BearerMiddleware authenticates requests by their Authorization header.
// It is stateless: the token is verified cryptographically and never
// checked against a store.
func BearerMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := tokenSvc.ValidateAccessToken(tokenParts[1])
		if err != nil {
			switch err {
			case domain.ErrTokenExpired:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			default:
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextAdmin, claims.Admin)

		c.Next()
	})
}

// RefreshCookieMiddleware authenticates the refresh and logout endpoints
// by the refresh_token cookie. The lookup is non-destructive; redemption
// happens in the service so a rejected request never burns the token.
func RefreshCookieMiddleware(tokenRepo domain.RefreshTokenRepository) gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		// A missing cookie is an expired or cleared session, not a bad
		// token, and gets a distinct status from the invalid case.
		cookie, err := c.Cookie(RefreshCookieName)
		if err != nil || cookie == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Refresh token required"})
			c.Abort()
			return
		}

		record, err := tokenRepo.Find(c.Request.Context(), cookie)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
			c.Abort()
			return
		}

		c.Set(ContextRefreshTokenRecord, record)

		c.Next()
	})
}
