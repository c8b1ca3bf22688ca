package domain

import (
	"math"
	"testing"
)

func TestThresholds_Classify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name        string
		temperature float64
		want        Status
	}{
		{"far below", -40, StatusBelow},
		{"just below low bound", 14.99, StatusBelow},
		{"low bound is normal", 15.0, StatusNormal},
		{"middle", 25, StatusNormal},
		{"high bound is normal", 35.0, StatusNormal},
		{"just above high bound", 35.01, StatusAbove},
		{"far above", 120, StatusAbove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := th.Classify(tt.temperature); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.temperature, got, tt.want)
			}
		})
	}
}

func TestThresholds_ClassifyProperty(t *testing.T) {
	th := DefaultThresholds()
	for i := -1000; i <= 1000; i++ {
		temperature := float64(i) / 10
		got := th.Classify(temperature)
		switch {
		case temperature < 15 && got != StatusBelow:
			t.Fatalf("Classify(%v) = %v, want Below", temperature, got)
		case temperature > 35 && got != StatusAbove:
			t.Fatalf("Classify(%v) = %v, want Above", temperature, got)
		case temperature >= 15 && temperature <= 35 && got != StatusNormal:
			t.Fatalf("Classify(%v) = %v, want Normal", temperature, got)
		}
	}
}

func TestStatus_Label(t *testing.T) {
	tests := []struct {
		status Status
		label  string
		name   string
	}{
		{StatusBelow, "Abaixo", "Below"},
		{StatusNormal, "Normal", "Normal"},
		{StatusAbove, "Acima", "Above"},
		{Status(0), "Desconhecido", "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("Label() = %q, want %q", got, tt.label)
		}
		if got := tt.status.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
	}
}

func TestNewThresholds(t *testing.T) {
	t.Run("accepts a valid band", func(t *testing.T) {
		th, err := NewThresholds(10, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if th.Classify(20) != StatusNormal || th.Classify(20.5) != StatusAbove {
			t.Error("custom band not applied")
		}
	})

	t.Run("accepts an empty band", func(t *testing.T) {
		if _, err := NewThresholds(20, 20); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("rejects inverted band", func(t *testing.T) {
		if _, err := NewThresholds(30, 20); err == nil {
			t.Error("expected error for low > high")
		}
	})

	t.Run("rejects non finite bounds", func(t *testing.T) {
		if _, err := NewThresholds(math.NaN(), 20); err == nil {
			t.Error("expected error for NaN")
		}
		if _, err := NewThresholds(10, math.Inf(1)); err == nil {
			t.Error("expected error for +Inf")
		}
	})
}
