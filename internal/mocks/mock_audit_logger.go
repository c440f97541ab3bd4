package mocks

import (
	"context"
	"sync"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// MockAuditLogger implements domain.AuditLogger for testing. It records
// every event so tests can assert on what was logged.
type MockAuditLogger struct {
	mu     sync.Mutex
	Events []*domain.AuditEvent

	LogEventFunc func(ctx context.Context, event *domain.AuditEvent) error
}

// NewMockAuditLogger creates a new MockAuditLogger
func NewMockAuditLogger() *MockAuditLogger {
	return &MockAuditLogger{}
}

// LogEvent records an audit event
func (m *MockAuditLogger) LogEvent(ctx context.Context, event *domain.AuditEvent) error {
	if m.LogEventFunc != nil {
		return m.LogEventFunc(ctx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return nil
}
