package handlers

import (
	"fmt"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// parseDateParam parses an optional date query parameter.
// Accepts RFC 3339 timestamps or date-only values (2006-01-02).
// An empty value yields (nil, nil): an absent bound, not an error.
func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return &t, nil
	}

	return nil, fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", value)
}
