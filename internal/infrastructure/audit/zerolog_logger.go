package audit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Forbidden-Duck/ecommerce-backend/domain"
)

// ZerologAuditLogger implements domain.AuditLogger on top of a zerolog
// logger so audit events land in the same structured stream as the rest
// of the application's logs.
type ZerologAuditLogger struct {
	log zerolog.Logger
}

// NewZerologAuditLogger creates a new audit logger
func NewZerologAuditLogger(log zerolog.Logger) domain.AuditLogger {
	return &ZerologAuditLogger{log: log.With().Str("component", "audit").Logger()}
}

// LogEvent implements domain.AuditLogger
func (l *ZerologAuditLogger) LogEvent(_ context.Context, event *domain.AuditEvent) error {
	evt := l.log.Info()
	if !event.Success {
		evt = l.log.Warn()
	}

	evt = evt.
		Str("event", string(event.EventType)).
		Str("user_id", event.UserID).
		Time("timestamp", event.Timestamp).
		Bool("success", event.Success)
	if event.Email != "" {
		evt = evt.Str("email", event.Email)
	}
	if event.ErrorMsg != "" {
		evt = evt.Str("error", event.ErrorMsg)
	}
	for key, value := range event.Metadata {
		evt = evt.Interface(key, value)
	}

	evt.Msg("audit event")
	return nil
}
