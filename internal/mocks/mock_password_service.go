package mocks

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(saltedHash, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash derives a stored hash from a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

// Verify compares a stored hash against a candidate password
func (m *MockPasswordService) Verify(saltedHash, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(saltedHash, password)
	}
	return saltedHash == "hashed_"+password
}
