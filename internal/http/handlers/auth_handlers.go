package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/http/middleware"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc      domain.AuthService
	audit        domain.AuditLogger
	refreshTTL   time.Duration
	secureCookie bool
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService, audit domain.AuditLogger, refreshTTL time.Duration, secureCookie bool) *AuthHandlers {
	return &AuthHandlers{
		authSvc:      authSvc,
		audit:        audit,
		refreshTTL:   refreshTTL,
		secureCookie: secureCookie,
	}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email,min=4,max=32"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstname,omitempty"`
	LastName  string `json:"lastname,omitempty"`
	Admin     bool   `json:"admin,omitempty"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password,omitempty"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Admin:     req.Admin,
	})
	if err != nil {
		h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.UserRegisteredEvent, "").
			WithEmail(req.Email).WithError(err))
		respondError(c, err)
		return
	}

	h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.UserRegisteredEvent, user.ID).
		WithEmail(user.Email))

	c.JSON(http.StatusCreated, gin.H{
		"data": toUserResponse(user),
	})
}

// Login handles user login. The refresh token travels back as an
// http-only cookie alongside the JSON body.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.UserLoginFailureEvent, "").
			WithEmail(req.Email).WithError(err))
		respondError(c, err)
		return
	}

	h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.UserLoginEvent, result.User.ID).
		WithEmail(result.User.Email))

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, h.authResponse(result))
}

// Refresh rotates the refresh token attached by the cookie middleware
// and issues a fresh pair.
func (h *AuthHandlers) Refresh(c *gin.Context) {
	record := refreshRecordFromContext(c)
	if record == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), record)
	if err != nil {
		h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.TokenRefreshedEvent, record.UserID).
			WithError(err))
		respondError(c, err)
		return
	}

	h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.TokenRefreshedEvent, result.User.ID).
		WithEmail(result.User.Email))

	h.setRefreshCookie(c, result.RefreshToken)
	c.JSON(http.StatusOK, h.authResponse(result))
}

// Logout revokes the presented refresh token and clears the cookie.
func (h *AuthHandlers) Logout(c *gin.Context) {
	record := refreshRecordFromContext(c)
	if record == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token required"})
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), record); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.UserLogoutEvent, record.UserID))

	h.clearRefreshCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Logged out successfully",
		},
	})
}

func (h *AuthHandlers) authResponse(result *domain.AuthResult) gin.H {
	return gin.H{
		"data": gin.H{
			"user":          toUserResponse(result.User),
			"access_token":  result.AccessToken,
			"refresh_token": result.RefreshToken,
			"token_type":    "Bearer",
			"expires_in":    int(time.Until(result.ExpiresAt).Seconds()),
		},
	}
}

func (h *AuthHandlers) setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.RefreshCookieName, token, int(h.refreshTTL.Seconds()), "/", "", h.secureCookie, true)
}

func (h *AuthHandlers) clearRefreshCookie(c *gin.Context) {
	c.SetCookie(middleware.RefreshCookieName, "", -1, "/", "", h.secureCookie, true)
}

// refreshRecordFromContext pulls the record set by the cookie middleware.
func refreshRecordFromContext(c *gin.Context) *domain.RefreshToken {
	value, exists := c.Get(middleware.ContextRefreshTokenRecord)
	if !exists {
		return nil
	}
	record, ok := value.(*domain.RefreshToken)
	if !ok {
		return nil
	}
	return record
}
