package domain

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type mockLogger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (m *mockLogger) Debug(_ string, _ ...interface{}) {}

func (m *mockLogger) Info(msg string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.infos = append(m.infos, msg)
}

func (m *mockLogger) Error(msg string, _ ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, msg)
}

func (m *mockLogger) GetInfoCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.infos...)
}

func (m *mockLogger) GetErrorCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.errors...)
}

type mockSensor struct {
	value float64
	err   error
}

func (m *mockSensor) GetValue() (float64, error) {
	return m.value, m.err
}

func TestValueReader_Read(t *testing.T) {
	t.Run("reads values from sensor at a given interval", func(t *testing.T) {
		sensor := &mockSensor{value: 21.5}
		reader := NewValueReader(Interval(100*time.Millisecond), 2, &mockLogger{})

		ctx, cancel := context.WithTimeout(context.Background(), 450*time.Millisecond) // one immediate read plus +- 4 ticks
		defer cancel()

		valueCh := reader.Read(ctx, sensor)

		var receivedValues []*SensorValue
		for val := range valueCh {
			receivedValues = append(receivedValues, val)
		}

		if len(receivedValues) < 4 {
			t.Errorf("expected more or equal 4 values, but got %d", len(receivedValues))
		}

		for _, sensorData := range receivedValues {
			if sensorData.Value != 21.5 {
				t.Errorf("expected value 21.5, but got %v", sensorData.Value)
			}
			if sensorData.Timestamp.IsZero() {
				t.Error("expected a timestamp")
			}
		}
	})

	t.Run("first value is read immediately", func(t *testing.T) {
		reader := NewValueReader(Interval(time.Hour), 1, &mockLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		select {
		case v := <-reader.Read(ctx, &mockSensor{value: 30}):
			if v == nil || v.Value != 30 {
				t.Errorf("unexpected first value %+v", v)
			}
		case <-time.After(time.Second):
			t.Fatal("no value before the first tick")
		}
	})

	t.Run("sensor errors are logged and skipped", func(t *testing.T) {
		logger := &mockLogger{}
		reader := NewValueReader(Interval(10*time.Millisecond), 1, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 55*time.Millisecond)
		defer cancel()

		count := 0
		for range reader.Read(ctx, &mockSensor{err: errors.New("sensor offline")}) {
			count++
		}

		if count != 0 {
			t.Errorf("expected no values from a failing sensor, got %d", count)
		}
		if len(logger.GetErrorCalls()) == 0 {
			t.Error("expected sensor errors to be logged")
		}
	})

	t.Run("stops reading when context is cancelled", func(t *testing.T) {
		sensor := &mockSensor{value: 42}
		reader := NewValueReader(Interval(time.Millisecond), 2, &mockLogger{})

		ctx, cancel := context.WithCancel(context.Background())
		valueCh := reader.Read(ctx, sensor)
		time.Sleep(20 * time.Millisecond)

		cancel()

		timeout := time.After(100 * time.Millisecond)
		for {
			select {
			case _, ok := <-valueCh:
				if !ok {
					return
				}
			case <-timeout:
				t.Fatal("timed out waiting for channel to close")
			}
		}
	})
}
