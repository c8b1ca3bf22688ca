package domain

import (
	"errors"
	"testing"
)

func TestParseReading(t *testing.T) {
	t.Run("parses a valid reading", func(t *testing.T) {
		r, err := ParseReading("sensor-54213,27.35,14/03/2024 10:22:05")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.SensorID != "sensor-54213" {
			t.Errorf("SensorID = %q", r.SensorID)
		}
		if r.Temperature != 27.35 {
			t.Errorf("Temperature = %v", r.Temperature)
		}
		if r.Timestamp != "14/03/2024 10:22:05" {
			t.Errorf("Timestamp = %q", r.Timestamp)
		}
		if r.Status != 0 {
			t.Errorf("Status should be unset, got %v", r.Status)
		}
		if r.SourceAddress != "" {
			t.Errorf("SourceAddress should be unset, got %q", r.SourceAddress)
		}
	})

	t.Run("trims line endings and field padding", func(t *testing.T) {
		r, err := ParseReading(" s1 , 36.0 ,ts2\r\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.SensorID != "s1" || r.Timestamp != "ts2" {
			t.Errorf("got %+v", r)
		}
		if r.TemperatureText() != "36.0" {
			t.Errorf("TemperatureText() = %q, want 36.0", r.TemperatureText())
		}
	})

	t.Run("accepts values outside the normal band", func(t *testing.T) {
		r, err := ParseReading("s1,-12.5,ts")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Temperature != -12.5 {
			t.Errorf("Temperature = %v", r.Temperature)
		}
	})

	malformed := []struct {
		name string
		line string
	}{
		{"temperature is not a number", "sensor1,notanumber,ts"},
		{"one field only", "sensor1,oneFieldOnly"},
		{"too many fields", "s1,20,ts,extra"},
		{"empty line", ""},
		{"empty sensor id", ",20,ts"},
		{"empty temperature", "s1,,ts"},
		{"NaN temperature", "s1,NaN,ts"},
		{"infinite temperature", "s1,+Inf,ts"},
		{"overflowing temperature", "s1,1e999,ts"},
	}
	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseReading(tt.line)
			if !errors.Is(err, ErrMalformedReading) {
				t.Errorf("ParseReading(%q) error = %v, want ErrMalformedReading", tt.line, err)
			}
		})
	}
}
