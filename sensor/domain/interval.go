package domain

import (
	"errors"
	"time"
)

// DefaultInterval is the pause between two readings.
const DefaultInterval = 15 * time.Second

// Interval is the period between two readings sent by the sensor.
type Interval time.Duration

// NewInterval validates the reading period.
func NewInterval(val time.Duration) (Interval, error) {
	if val <= 0 {
		return 0, errors.New("interval must be greater than 0")
	}
	return Interval(val), nil
}
