package repositories

import (
	"context"
	"time"

	"customer-lookup/internal/models"
)

// CustomerRepositoryInterface defines the contract for customer repository operations.
// All reads are snapshot reads: returned records are detached from any session
// and must never be used to write back to the store.
type CustomerRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindByIDCreatedBetween(ctx context.Context, id string, start, end time.Time) (*models.Customer, error)
}
