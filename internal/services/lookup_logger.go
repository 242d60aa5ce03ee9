package services

import (
	"context"
	"log/slog"
	"time"
)

// LookupLogger provides structured logging for customer lookup operations
type LookupLogger struct {
	logger *slog.Logger
}

// NewLookupLogger creates a new lookup logger
func NewLookupLogger(logger *slog.Logger) LookupLoggerInterface {
	return &LookupLogger{
		logger: logger,
	}
}

// LogLookupStarted logs the start of a customer lookup operation
func (ll *LookupLogger) LogLookupStarted(ctx context.Context, customerID string, rangeApplied bool) {
	ll.logger.InfoContext(ctx, "customer lookup started",
		slog.String("event_type", "customer_lookup_started"),
		slog.String("customer_id", customerID),
		slog.Bool("range_applied", rangeApplied),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogLookupCompleted logs a lookup that returned a record
func (ll *LookupLogger) LogLookupCompleted(ctx context.Context, customerID string, durationMs int64) {
	ll.logger.InfoContext(ctx, "customer lookup completed",
		slog.String("event_type", "customer_lookup_completed"),
		slog.String("customer_id", customerID),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogLookupNotFound logs a lookup that matched no record.
// Not-found is an expected outcome, not a defect, so this logs at Info.
func (ll *LookupLogger) LogLookupNotFound(ctx context.Context, customerID string, rangeApplied bool, durationMs int64) {
	ll.logger.InfoContext(ctx, "customer lookup found no record",
		slog.String("event_type", "customer_lookup_not_found"),
		slog.String("customer_id", customerID),
		slog.Bool("range_applied", rangeApplied),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogLookupFailed logs a lookup that failed with an infrastructure error
func (ll *LookupLogger) LogLookupFailed(ctx context.Context, errorMsg string, durationMs int64) {
	ll.logger.ErrorContext(ctx, "customer lookup failed",
		slog.String("event_type", "customer_lookup_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs a lookup rejected before reaching the store
func (ll *LookupLogger) LogValidationFailure(ctx context.Context, reason string) {
	ll.logger.WarnContext(ctx, "customer lookup validation failed",
		slog.String("event_type", "customer_lookup_validation_failed"),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// getRequestID extracts the request ID from context for log correlation
func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}
	return ""
}
