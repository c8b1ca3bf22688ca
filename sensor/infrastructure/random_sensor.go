// Package infrastructure provides concrete implementations of the sensor domain:
// a simulated temperature source, the TCP transport and configuration.
package infrastructure

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Default bounds of the simulated temperature, in degrees Celsius.
const (
	DefaultMinTemperature = 10.0
	DefaultMaxTemperature = 40.0
)

// RandomSensor is a sensor implementation that generates uniformly distributed temperatures.
type RandomSensor struct {
	minTemp float64
	maxTemp float64
}

// GetValue returns a random temperature between the bounds, rounded to 2 decimals.
func (s RandomSensor) GetValue() (float64, error) {
	value := s.minTemp + rand.Float64()*(s.maxTemp-s.minTemp)
	return math.Round(value*100) / 100, nil
}

// NewRandomSensor creates a sensor producing values between minTemp and maxTemp.
func NewRandomSensor(minTemp, maxTemp float64) (RandomSensor, error) {
	if minTemp > maxTemp {
		return RandomSensor{}, fmt.Errorf("min temperature %.2f is above max temperature %.2f", minTemp, maxTemp)
	}
	return RandomSensor{minTemp: minTemp, maxTemp: maxTemp}, nil
}
