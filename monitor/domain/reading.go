package domain

import "fmt"

// Reading is one temperature observation from one sensor.
// It is passed and stored by value and never modified in place.
type Reading struct {
	SensorID      string  `json:"sensor_id"`
	Temperature   float64 `json:"temperature"`
	Timestamp     string  `json:"timestamp"`
	SourceAddress string  `json:"source_address"`
	Status        Status  `json:"status"`

	// rawTemperature is the temperature exactly as the sensor wrote it,
	// echoed back in the acknowledgment.
	rawTemperature string
}

// WithStatus returns a copy of the reading carrying the given status.
func (r Reading) WithStatus(status Status) Reading {
	r.Status = status
	return r
}

// WithSourceAddress returns a copy of the reading tagged with the connection address.
func (r Reading) WithSourceAddress(addr string) Reading {
	r.SourceAddress = addr
	return r
}

// TemperatureText returns the temperature as received, falling back to a
// shortest decimal rendering for readings built in code.
func (r Reading) TemperatureText() string {
	if r.rawTemperature != "" {
		return r.rawTemperature
	}
	return fmt.Sprintf("%g", r.Temperature)
}
