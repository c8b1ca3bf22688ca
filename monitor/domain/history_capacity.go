package domain

import "errors"

// DefaultHistoryCapacity is how many readings are kept per sensor.
const DefaultHistoryCapacity = 20

// HistoryCapacity bounds the number of readings retained for one sensor.
type HistoryCapacity uint32

// NewHistoryCapacity creates a HistoryCapacity, rejecting non-positive values.
func NewHistoryCapacity(size int) (HistoryCapacity, error) {
	if size <= 0 {
		return 0, errors.New("history capacity must be greater than 0")
	}
	return HistoryCapacity(size), nil
}
