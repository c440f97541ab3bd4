package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
	"github.com/Forbidden-Duck/ecommerce-backend/internal/http/middleware"
)

// UserHandlers handles user account HTTP requests
type UserHandlers struct {
	userSvc domain.UserService
	audit   domain.AuditLogger
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService, audit domain.AuditLogger) *UserHandlers {
	return &UserHandlers{
		userSvc: userSvc,
		audit:   audit,
	}
}

// UpdateUserRequest represents a user update request
type UpdateUserRequest struct {
	Email           string `json:"email,omitempty" binding:"omitempty,email,min=4,max=32"`
	FirstName       string `json:"firstname,omitempty"`
	LastName        string `json:"lastname,omitempty"`
	NewPassword     string `json:"new_password,omitempty" binding:"omitempty,min=6"`
	Admin           *bool  `json:"admin,omitempty"`
	CurrentPassword string `json:"current_password,omitempty"`
}

// DeleteUserRequest represents an account deletion request
type DeleteUserRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
}

// Get handles fetching a user account. Owner or admin only.
func (h *UserHandlers) Get(c *gin.Context) {
	actor := actorClaims(c)
	targetID := c.Param("userid")

	if actor.UserID != targetID && !actor.Admin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	user, err := h.userSvc.Get(c.Request.Context(), targetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": toUserResponse(user)})
}

// Update handles mutating a user account. The current request's refresh
// cookie, when present, names the session spared from the revocation a
// password change triggers.
func (h *UserHandlers) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := actorClaims(c)
	targetID := c.Param("userid")

	currentRefreshToken, _ := c.Cookie(middleware.RefreshCookieName)

	user, err := h.userSvc.Update(c.Request.Context(), targetID, domain.UpdateUserInput{
		Email:               req.Email,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		NewPassword:         req.NewPassword,
		Admin:               req.Admin,
		CurrentPassword:     req.CurrentPassword,
		CurrentRefreshToken: currentRefreshToken,
	}, actor)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.NewPassword != "" {
		h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.PasswordChangedEvent, user.ID).
			WithEmail(user.Email))
		h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.SessionsRevokedEvent, user.ID).
			WithMetadata("trigger", "password_change"))
	}

	c.JSON(http.StatusOK, gin.H{"data": toUserResponse(user)})
}

// Delete handles account removal. Every refresh token the account owns
// is revoked with it.
func (h *UserHandlers) Delete(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := actorClaims(c)
	targetID := c.Param("userid")

	if err := h.userSvc.Delete(c.Request.Context(), targetID, req.CurrentPassword, actor); err != nil {
		respondError(c, err)
		return
	}

	h.audit.LogEvent(c.Request.Context(), domain.NewAuditEvent(domain.UserDeletedEvent, targetID).
		WithMetadata("deleted_by", actor.UserID))

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "User deleted successfully",
		},
	})
}

// actorClaims rebuilds the acting user's claims from the context values
// set by the bearer middleware.
func actorClaims(c *gin.Context) *domain.TokenClaims {
	return &domain.TokenClaims{
		UserID: c.GetString(middleware.ContextUserID),
		Email:  c.GetString(middleware.ContextEmail),
		Admin:  c.GetBool(middleware.ContextAdmin),
	}
}
