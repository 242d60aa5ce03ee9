package dto

import (
	"time"

	"customer-lookup/internal/models"
)

// GetCustomerRequest represents the parameters for a customer lookup.
// Dates are bound as strings and parsed by the handler so that a malformed
// date can be reported distinctly from a missing one.
type GetCustomerRequest struct {
	CustomerID string `param:"id" validate:"customer_id"`
	StartDate  string `query:"start_date" validate:"omitempty"`
	EndDate    string `query:"end_date" validate:"omitempty"`
}

// GetCustomerResponse represents a single customer lookup result
type GetCustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewGetCustomerResponse maps a customer record to its response representation
func NewGetCustomerResponse(customer *models.Customer) *GetCustomerResponse {
	return &GetCustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		CreatedAt: customer.CreatedAt,
	}
}
