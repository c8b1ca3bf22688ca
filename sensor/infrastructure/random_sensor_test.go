package infrastructure

import (
	"math"
	"testing"
)

func TestRandomSensor_GetValue(t *testing.T) {
	sensor, err := NewRandomSensor(DefaultMinTemperature, DefaultMaxTemperature)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 1000; i++ {
		value, err := sensor.GetValue()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value < DefaultMinTemperature || value > DefaultMaxTemperature {
			t.Fatalf("value %v out of [%v, %v]", value, DefaultMinTemperature, DefaultMaxTemperature)
		}
		if rounded := math.Round(value*100) / 100; rounded != value {
			t.Fatalf("value %v is not rounded to 2 decimals", value)
		}
	}
}

func TestNewRandomSensor_InvalidBounds(t *testing.T) {
	if _, err := NewRandomSensor(40, 10); err == nil {
		t.Error("expected an error when min is above max")
	}
}
