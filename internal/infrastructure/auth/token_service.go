package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// TokenServiceImpl implements domain.TokenService. Access tokens are
// HS256 JWTs; refresh tokens are opaque SHA-512 digests of random
// material, persisted separately by the refresh-token repository.
type TokenServiceImpl struct {
	secretKey      []byte
	issuer         string
	accessTokenTTL time.Duration
}

// NewTokenService creates a new token service. A missing signing secret
// is a configuration error, fatal at startup rather than per call.
func NewTokenService(secretKey, issuer string, accessTTL time.Duration) (domain.TokenService, error) {
	if secretKey == "" {
		return nil, errors.New("jwt signing secret is not configured")
	}
	return &TokenServiceImpl{
		secretKey:      []byte(secretKey),
		issuer:         issuer,
		accessTokenTTL: accessTTL,
	}, nil
}

// generateJTI creates a unique JWT ID
func (t *TokenServiceImpl) generateJTI() string {
	bytes := make([]byte, 16)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// GenerateAccessToken implements domain.TokenService
func (t *TokenServiceImpl) GenerateAccessToken(userID, email string, admin bool) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(t.accessTokenTTL)
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"admin":   admin,
		"iss":     t.issuer,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		"jti":     t.generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// GenerateRefreshToken implements domain.TokenService. The output is a
// SHA-512 digest over fresh random bytes, the current time and the
// caller-supplied seed, so collisions are cryptographically negligible.
func (t *TokenServiceImpl) GenerateRefreshToken(seed string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	sum := sha512.Sum512([]byte(fmt.Sprintf("%x%d%s", raw, time.Now().UnixNano(), seed)))
	return hex.EncodeToString(sum[:]), nil
}

// ValidateAccessToken implements domain.TokenService
func (t *TokenServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return t.secretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	admin, ok := claims["admin"].(bool)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	return &domain.TokenClaims{
		UserID:    userID,
		Email:     email,
		Admin:     admin,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}
