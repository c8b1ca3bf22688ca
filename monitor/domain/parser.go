package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FieldSeparator separates the fields of a reading on the wire.
const FieldSeparator = ","

const readingFields = 3

// ParseReading turns "<sensorId>,<temperature>,<timestamp>" into a Reading.
// The returned reading has no status and no source address yet.
// Errors wrap ErrMalformedReading.
func ParseReading(line string) (Reading, error) {
	fields := strings.Split(strings.TrimSpace(line), FieldSeparator)
	if len(fields) != readingFields {
		return Reading{}, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedReading, readingFields, len(fields))
	}

	sensorID := strings.TrimSpace(fields[0])
	rawTemperature := strings.TrimSpace(fields[1])
	timestamp := strings.TrimSpace(fields[2])

	if sensorID == "" {
		return Reading{}, fmt.Errorf("%w: empty sensor id", ErrMalformedReading)
	}

	temperature, err := strconv.ParseFloat(rawTemperature, 64)
	if err != nil {
		return Reading{}, fmt.Errorf("%w: temperature %q is not a number", ErrMalformedReading, rawTemperature)
	}
	if math.IsNaN(temperature) || math.IsInf(temperature, 0) {
		return Reading{}, fmt.Errorf("%w: temperature %q is not finite", ErrMalformedReading, rawTemperature)
	}

	return Reading{
		SensorID:       sensorID,
		Temperature:    temperature,
		Timestamp:      timestamp,
		rawTemperature: rawTemperature,
	}, nil
}
