package services

import (
	"context"
	"time"

	"customer-lookup/internal/models"
)

// CustomerLookupServiceInterface provides single-customer lookup by ID with an
// optional creation-date range filter
type CustomerLookupServiceInterface interface {
	// Lookup returns the customer matching the given ID, or a typed error:
	// ErrInvalidCustomerID when the ID is empty after trimming (checked before
	// any store I/O), *NotFoundError when no record matches. A date range is
	// applied only when both bounds are present; a lone bound is ignored.
	Lookup(ctx context.Context, id string, startDate, endDate *time.Time) (*models.Customer, error)
}

// LookupLoggerInterface provides structured logging for lookup operations
type LookupLoggerInterface interface {
	LogLookupStarted(ctx context.Context, customerID string, rangeApplied bool)
	LogLookupCompleted(ctx context.Context, customerID string, durationMs int64)
	LogLookupNotFound(ctx context.Context, customerID string, rangeApplied bool, durationMs int64)
	LogLookupFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogValidationFailure(ctx context.Context, reason string)
}

// MetricsRecorderInterface records operational metrics for lookup operations
type MetricsRecorderInterface interface {
	RecordLookupRequest(outcome string)
	RecordLookupDuration(duration time.Duration)
}
