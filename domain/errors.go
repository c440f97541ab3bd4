package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrAdminRegistration  = errors.New("admin accounts can not be created through registration")
	ErrPasswordRequired   = errors.New("password is required to validate the user")
)

// Token errors
var (
	ErrTokenInvalid         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenMalformed       = errors.New("malformed token")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Commerce errors
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCartNotFound     = errors.New("cart not found")
	ErrCartExists       = errors.New("cart already exists")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrEmptyCart        = errors.New("no items in the cart")
	ErrOrderNotFound    = errors.New("order not found")
)
