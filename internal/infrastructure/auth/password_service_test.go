package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_Hash(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("supersecret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hash) != saltChars+keyBytes*2 {
		t.Errorf("expected stored length %d, got %d", saltChars+keyBytes*2, len(hash))
	}
	if strings.Contains(hash, "supersecret") {
		t.Error("stored hash must not contain the plaintext password")
	}
}

func TestPasswordServiceImpl_Hash_FreshSalt(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("samepassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Hash("samepassword")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("hashing the same password twice must yield different strings")
	}
}

func TestPasswordServiceImpl_Verify(t *testing.T) {
	svc := NewPasswordService()
	stored, err := svc.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		stored   string
		password string
		expected bool
	}{
		{
			name:     "matching password",
			stored:   stored,
			password: "correct horse battery staple",
			expected: true,
		},
		{
			name:     "wrong password",
			stored:   stored,
			password: "incorrect horse",
			expected: false,
		},
		{
			name:     "empty password",
			stored:   stored,
			password: "",
			expected: false,
		},
		{
			name:     "malformed stored value",
			stored:   "not-a-real-hash",
			password: "correct horse battery staple",
			expected: false,
		},
		{
			name:     "stored value with invalid hex suffix",
			stored:   strings.Repeat("z", saltChars+keyBytes*2),
			password: "correct horse battery staple",
			expected: false,
		},
		{
			name:     "empty stored value",
			stored:   "",
			password: "anything",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Verify(tt.stored, tt.password); got != tt.expected {
				t.Errorf("Verify() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
