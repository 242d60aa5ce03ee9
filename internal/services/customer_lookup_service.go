package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"customer-lookup/internal/models"
	"customer-lookup/internal/repositories"
)

// Lookup outcome labels used for metrics
const (
	OutcomeFound        = "found"
	OutcomeNotFound     = "not_found"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)

// ErrInvalidCustomerID is returned when the customer ID is empty or
// whitespace-only. The check happens before any store I/O.
var ErrInvalidCustomerID = errors.New("customer ID cannot be empty")

// NotFoundError reports that no customer matched the lookup predicate.
// It carries the identifier and whether a date range was applied so that
// callers can distinguish "no such customer" from "customer outside range".
type NotFoundError struct {
	CustomerID   string
	RangeApplied bool
}

func (e *NotFoundError) Error() string {
	if e.RangeApplied {
		return fmt.Sprintf("customer %q not found within the requested date range", e.CustomerID)
	}
	return fmt.Sprintf("customer %q not found", e.CustomerID)
}

// CustomerLookupService handles single-customer lookup operations
type CustomerLookupService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       LookupLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewCustomerLookupService creates a new customer lookup service
func NewCustomerLookupService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger LookupLoggerInterface,
	metrics MetricsRecorderInterface,
) CustomerLookupServiceInterface {
	return &CustomerLookupService{
		customerRepo: customerRepo,
		logger:       logger,
		metrics:      metrics,
	}
}

// Lookup retrieves the customer matching the given ID, optionally constrained
// to a creation-date range.
//
// The date range follows a both-or-neither policy: the created_at filter is
// applied only when startDate and endDate are both present. A lone bound is
// ignored entirely rather than treated as an open-ended range.
//
// The returned record is a read-only snapshot; it is never tracked for
// mutation. The operation issues at most one store query and performs no
// writes, caching, or retries. Store errors propagate unchanged.
func (s *CustomerLookupService) Lookup(ctx context.Context, id string, startDate, endDate *time.Time) (*models.Customer, error) {
	startTime := time.Now()

	if strings.TrimSpace(id) == "" {
		s.logger.LogValidationFailure(ctx, "customer ID empty after trimming")
		s.metrics.RecordLookupRequest(OutcomeInvalidInput)
		return nil, ErrInvalidCustomerID
	}

	rangeApplied := startDate != nil && endDate != nil

	s.logger.LogLookupStarted(ctx, id, rangeApplied)

	var customer *models.Customer
	var err error

	if rangeApplied {
		customer, err = s.customerRepo.FindByIDCreatedBetween(ctx, id, *startDate, *endDate)
	} else {
		customer, err = s.customerRepo.FindByID(ctx, id)
	}

	duration := time.Since(startTime)
	s.metrics.RecordLookupDuration(duration)

	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			s.logger.LogLookupNotFound(ctx, id, rangeApplied, duration.Milliseconds())
			s.metrics.RecordLookupRequest(OutcomeNotFound)
			return nil, &NotFoundError{CustomerID: id, RangeApplied: rangeApplied}
		}

		// Infrastructure errors (connectivity, timeouts, cancellation) are not
		// reinterpreted at this layer
		s.logger.LogLookupFailed(ctx, err.Error(), duration.Milliseconds())
		s.metrics.RecordLookupRequest(OutcomeError)
		return nil, err
	}

	s.logger.LogLookupCompleted(ctx, customer.ID, duration.Milliseconds())
	s.metrics.RecordLookupRequest(OutcomeFound)

	return customer, nil
}
