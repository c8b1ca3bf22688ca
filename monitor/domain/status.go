package domain

import (
	"errors"
	"fmt"
	"math"
)

// Status is the classification of a temperature against the configured thresholds.
type Status int

// Possible statuses. The zero value is not a valid status, so an unclassified
// reading is easy to tell apart.
const (
	StatusBelow Status = iota + 1
	StatusNormal
	StatusAbove
)

// String returns the English name used in logs and JSON.
func (s Status) String() string {
	switch s {
	case StatusBelow:
		return "Below"
	case StatusNormal:
		return "Normal"
	case StatusAbove:
		return "Above"
	default:
		return "Unknown"
	}
}

// Label returns the text sent back to sensors on the wire.
func (s Status) Label() string {
	switch s {
	case StatusBelow:
		return "Abaixo"
	case StatusNormal:
		return "Normal"
	case StatusAbove:
		return "Acima"
	default:
		return "Desconhecido"
	}
}

// MarshalText encodes the status by its English name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Default thresholds in degrees Celsius.
const (
	DefaultLowThreshold  = 15.0
	DefaultHighThreshold = 35.0
)

// Thresholds holds the bounds of the Normal band. Both bounds belong to Normal.
type Thresholds struct {
	Low  float64
	High float64
}

// DefaultThresholds returns the 15°C / 35°C band.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: DefaultLowThreshold, High: DefaultHighThreshold}
}

// NewThresholds validates a Normal band.
func NewThresholds(low, high float64) (Thresholds, error) {
	if math.IsNaN(low) || math.IsInf(low, 0) || math.IsNaN(high) || math.IsInf(high, 0) {
		return Thresholds{}, errors.New("thresholds must be finite numbers")
	}
	if low > high {
		return Thresholds{}, fmt.Errorf("low threshold %.2f is above high threshold %.2f", low, high)
	}
	return Thresholds{Low: low, High: high}, nil
}

// Classify maps a temperature to its status.
func (t Thresholds) Classify(temperature float64) Status {
	switch {
	case temperature < t.Low:
		return StatusBelow
	case temperature > t.High:
		return StatusAbove
	default:
		return StatusNormal
	}
}
