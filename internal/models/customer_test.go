package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		customer Customer
		wantErr  string
	}{
		{
			name: "valid customer",
			customer: Customer{
				ID:        "C1",
				Name:      "Ada Lovelace",
				CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name:     "empty ID",
			customer: Customer{Name: "Ada Lovelace"},
			wantErr:  "customer ID is required",
		},
		{
			name:     "whitespace-only ID",
			customer: Customer{ID: "   ", Name: "Ada Lovelace"},
			wantErr:  "customer ID is required",
		},
		{
			name:     "empty name",
			customer: Customer{ID: "C1"},
			wantErr:  "customer name is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.customer.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tc.wantErr)
			}
		})
	}
}

func TestCustomer_TableName(t *testing.T) {
	c := Customer{}
	assert.Equal(t, "customers", c.TableName())
}
