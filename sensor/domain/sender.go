package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// TimestampLayout is ISO 8601 with microseconds and no zone.
const TimestampLayout = "2006-01-02T15:04:05.000000"

// Transport defines the contract for delivering a message to the monitoring center.
type Transport interface {
	// Send delivers message and returns the center's response.
	Send(ctx context.Context, message string) (string, error)
}

// FormatMessage renders a reading as "<sensorId>,<temperature>,<timestamp>".
func FormatMessage(sensorName SensorName, value float64, timestamp time.Time) string {
	return fmt.Sprintf("%s,%.2f,%s", sensorName, value, timestamp.Format(TimestampLayout))
}

// SensorDataSender handles the transmission of sensor data using a configured transport.
type SensorDataSender struct {
	transport  Transport
	sensorName SensorName
	logger     Logger
}

// Send transmits values from the channel until it is closed, ctx is cancelled,
// or the monitoring center closes the connection. A reading that cannot be
// delivered is dropped.
func (s *SensorDataSender) Send(ctx context.Context, values <-chan *SensorValue) {
	for v := range values {
		message := FormatMessage(s.sensorName, v.Value, v.Timestamp)
		s.logger.Debug("sending message: %s", message)

		response, err := s.transport.Send(ctx, message)
		switch {
		case err == nil:
			s.logger.Info("server response: %s", response)
		case errors.Is(err, ErrConnectionClosed):
			s.logger.Info("monitoring center closed the connection, stopping sensor %s", s.sensorName)
			return
		case ctx.Err() != nil:
			return
		case errors.Is(err, ErrTransportNotReady):
			s.logger.Error("reading dropped: %s", err.Error())
		default:
			s.logger.Error("error sending data: %s", err.Error())
		}
	}
}

// NewSensorDataSender creates a new SensorDataSender with the specified transport, logger, and sensor name.
func NewSensorDataSender(transport Transport, logger Logger, sensorName SensorName) *SensorDataSender {
	return &SensorDataSender{
		transport:  transport,
		sensorName: sensorName,
		logger:     logger,
	}
}
