package domain

import (
	"errors"
	"testing"
)

func TestReadingProcessor_Process(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"below", "s1,12.5,2024-01-01T00:00:00", "[2024-01-01T00:00:00] s1 | 12.5°C | Abaixo"},
		{"above keeps client formatting", "s1,36.0,ts2", "[ts2] s1 | 36.0°C | Acima"},
		{"normal", "sensor-54213,27.35,14/03/2024 10:22:05", "[14/03/2024 10:22:05] sensor-54213 | 27.35°C | Normal"},
		{"boundary", "s1,15,ts", "[ts] s1 | 15°C | Normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewHistoryStore(DefaultHistoryCapacity)
			p := NewReadingProcessor(store, DefaultThresholds(), &mockLogger{})

			got, err := p.Process(tt.message, "127.0.0.1:5000")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Process() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadingProcessor_RecordsClassifiedReading(t *testing.T) {
	store := NewHistoryStore(DefaultHistoryCapacity)
	p := NewReadingProcessor(store, DefaultThresholds(), &mockLogger{})

	if _, err := p.Process("s1,40,ts\n", "10.0.0.2:4242"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	latest, ok := store.Latest("s1")
	if !ok {
		t.Fatal("reading was not recorded")
	}
	if latest.Status != StatusAbove {
		t.Errorf("Status = %v, want Above", latest.Status)
	}
	if latest.SourceAddress != "10.0.0.2:4242" {
		t.Errorf("SourceAddress = %q", latest.SourceAddress)
	}
}

func TestReadingProcessor_Malformed(t *testing.T) {
	messages := []string{
		"sensor1,notanumber,ts",
		"sensor1,oneFieldOnly",
		"s1,\xff\xfe,ts",
	}

	for _, message := range messages {
		store := NewHistoryStore(DefaultHistoryCapacity)
		p := NewReadingProcessor(store, DefaultThresholds(), &mockLogger{})

		got, err := p.Process(message, "127.0.0.1:5000")
		if got != ErrorResponse {
			t.Errorf("Process(%q) = %q, want %q", message, got, ErrorResponse)
		}
		if !errors.Is(err, ErrMalformedReading) {
			t.Errorf("Process(%q) error = %v, want ErrMalformedReading", message, err)
		}
		if len(store.SensorIDs()) != 0 {
			t.Errorf("Process(%q) recorded a malformed reading", message)
		}
	}
}
