package models

import (
	"errors"
	"strings"
	"time"
)

type Customer struct {
	ID        string    `gorm:"type:varchar(64);primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}

func (c *Customer) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("customer ID is required")
	}

	if c.Name == "" {
		return errors.New("customer name is required")
	}

	return nil
}

func (c *Customer) TableName() string {
	return "customers"
}
