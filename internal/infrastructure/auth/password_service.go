package auth

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

const (
	// saltBytes is the raw salt size; hex-encoded it prefixes the stored hash.
	saltBytes  = 32
	saltChars  = saltBytes * 2
	iterations = 10000
	keyBytes   = 64
)

// PasswordServiceImpl implements domain.PasswordService using PBKDF2-SHA512.
// The stored form is the hex salt concatenated with the hex derived key.
type PasswordServiceImpl struct{}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PasswordServiceImpl{}
}

// Hash implements domain.PasswordService. Every call generates a fresh
// salt, so hashing the same password twice yields different strings.
func (p *PasswordServiceImpl) Hash(password string) (string, error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	salt := hex.EncodeToString(raw)
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha512.New)
	return salt + hex.EncodeToString(key), nil
}

// Verify implements domain.PasswordService. The salt occupies a fixed
// prefix of the stored string; a malformed stored value fails comparison
// rather than erroring.
func (p *PasswordServiceImpl) Verify(saltedHash, password string) bool {
	if len(saltedHash) != saltChars+keyBytes*2 {
		return false
	}
	salt := saltedHash[:saltChars]
	stored, err := hex.DecodeString(saltedHash[saltChars:])
	if err != nil {
		return false
	}
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, keyBytes, sha512.New)
	return subtle.ConstantTimeCompare(stored, key) == 1
}
