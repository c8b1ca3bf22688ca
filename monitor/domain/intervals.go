package domain

import (
	"errors"
	"time"
)

// ChartInterval is the period between two chart renders. Zero disables rendering.
type ChartInterval time.Duration

// NewChartInterval validates the chart render period.
func NewChartInterval(val time.Duration) (ChartInterval, error) {
	if val < 0 {
		return 0, errors.New("chart interval must not be negative")
	}
	return ChartInterval(val), nil
}

// ReadTimeout is how long a connection may stay silent before it is closed.
// Zero means connections never time out.
type ReadTimeout time.Duration

// NewReadTimeout validates the idle read timeout.
func NewReadTimeout(val time.Duration) (ReadTimeout, error) {
	if val < 0 {
		return 0, errors.New("read timeout must not be negative")
	}
	return ReadTimeout(val), nil
}

// DrainTimeout bounds how long shutdown waits for open connections to finish.
type DrainTimeout time.Duration

// NewDrainTimeout validates the drain timeout.
func NewDrainTimeout(val time.Duration) (DrainTimeout, error) {
	if val < 0 {
		return 0, errors.New("drain timeout must not be negative")
	}
	return DrainTimeout(val), nil
}
