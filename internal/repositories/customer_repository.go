package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-lookup/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// FindByID retrieves the first customer matching the given ID.
// Issues exactly one parameterized query; the ID is never interpolated into
// query text.
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	var customer models.Customer

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

// FindByIDCreatedBetween retrieves the first customer matching the given ID
// whose created_at falls within [start, end]. Both bounds are inclusive.
func (r *CustomerRepository) FindByIDCreatedBetween(ctx context.Context, id string, start, end time.Time) (*models.Customer, error) {
	var customer models.Customer

	if err := r.db.WithContext(ctx).
		Where("id = ? AND created_at >= ? AND created_at <= ?", id, start, end).
		First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID and date range: %w", err)
	}

	return &customer, nil
}
