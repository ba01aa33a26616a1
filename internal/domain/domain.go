package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation        = errors.New("validation")         // 400
	ErrNotFound          = errors.New("not found")          // 404
	ErrConflict          = errors.New("conflict")           // 409
	ErrInsufficientStock = errors.New("insufficient stock") // 400
)

const (
	StatusInProgress = "in progress"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
)

var allowedStatuses = []string{StatusInProgress, StatusShipped, StatusDelivered}

func AllowedStatuses() []string {
	return allowedStatuses
}

// NormalizeStatus lowercases the value the same way the API stores it.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func StatusAllowed(s string) bool {
	for _, allowed := range allowedStatuses {
		if s == allowed {
			return true
		}
	}
	return false
}
