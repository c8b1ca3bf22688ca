// Package domain provides the sensor simulator's core logic: reading values
// from a sensor on a fixed period and sending them to the monitoring center.
package domain

import (
	"context"
	"time"
)

// Sensor is a data source of temperature values.
type Sensor interface {
	GetValue() (float64, error)
}

// SensorValue is one temperature reading with the time it was taken.
type SensorValue struct {
	Timestamp time.Time
	Value     float64
}

// ValueReader reads values from a sensor once per interval.
type ValueReader struct {
	logger      Logger
	interval    Interval
	maxCapacity uint32
}

// Read takes a first value immediately and then one per interval until ctx is cancelled,
// when the returned channel is closed. Sensor errors are logged and the value skipped.
func (v *ValueReader) Read(ctx context.Context, sensor Sensor) <-chan *SensorValue {
	valueCh := make(chan *SensorValue, v.maxCapacity)

	go func() {
		defer close(valueCh)

		ticker := time.NewTicker(time.Duration(v.interval))
		defer ticker.Stop()

		for {
			value, err := sensor.GetValue()
			if err != nil {
				v.logger.Error("error reading sensor value: %s", err.Error())
			} else {
				select {
				case <-ctx.Done():
					return
				case valueCh <- &SensorValue{Value: value, Timestamp: time.Now()}:
				}
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	return valueCh
}

// NewValueReader creates a ValueReader with the given interval and buffer size.
func NewValueReader(interval Interval, maxCapacity uint32, logger Logger) *ValueReader {
	return &ValueReader{
		interval:    interval,
		maxCapacity: maxCapacity,
		logger:      logger,
	}
}
