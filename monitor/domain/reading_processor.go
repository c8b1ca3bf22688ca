// Package domain contains the core logic of the monitoring center:
// parsing and classifying readings, the per-sensor history and the
// acknowledgment format sent back to sensors.
package domain

import (
	"fmt"
	"unicode/utf8"
)

// ErrorResponse is sent back instead of an acknowledgment when a message
// cannot be parsed.
const ErrorResponse = "Erro"

// FormatAcknowledgment renders the reply for a processed reading:
//
//	[<timestamp>] <sensorId> | <temperature>°C | <status>
func FormatAcknowledgment(r Reading) string {
	return fmt.Sprintf("[%s] %s | %s°C | %s", r.Timestamp, r.SensorID, r.TemperatureText(), r.Status.Label())
}

// ReadingProcessor runs one raw message through parsing, classification and
// storage and produces the text to send back.
type ReadingProcessor struct {
	store      *HistoryStore
	thresholds Thresholds
	logger     Logger
}

// Process handles one message received from sourceAddress. It always returns
// a response; the error is non-nil (wrapping ErrMalformedReading) when the
// response is ErrorResponse.
func (p *ReadingProcessor) Process(message, sourceAddress string) (string, error) {
	if !utf8.ValidString(message) {
		return ErrorResponse, fmt.Errorf("%w: message is not valid UTF-8", ErrMalformedReading)
	}

	reading, err := ParseReading(message)
	if err != nil {
		return ErrorResponse, err
	}

	reading = reading.
		WithSourceAddress(sourceAddress).
		WithStatus(p.thresholds.Classify(reading.Temperature))
	p.store.Record(reading.SensorID, reading)

	p.logger.Debug("reading from %s processed: sensor=%s temperature=%s status=%s",
		sourceAddress, reading.SensorID, reading.TemperatureText(), reading.Status,
	)

	return FormatAcknowledgment(reading), nil
}

// NewReadingProcessor creates a processor recording into store.
func NewReadingProcessor(store *HistoryStore, thresholds Thresholds, logger Logger) *ReadingProcessor {
	return &ReadingProcessor{
		store:      store,
		thresholds: thresholds,
		logger:     logger,
	}
}
