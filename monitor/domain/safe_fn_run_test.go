package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestSafeFunctionRun(t *testing.T) {
	t.Run("returns the function error", func(t *testing.T) {
		want := errors.New("boom")
		if err := SafeFunctionRun(func() error { return want }, &mockLogger{}); !errors.Is(err, want) {
			t.Errorf("got %v, want %v", err, want)
		}
	})

	t.Run("converts a panic into an error", func(t *testing.T) {
		logger := &mockLogger{}
		err := SafeFunctionRun(func() error { panic("unexpected") }, logger)
		if err == nil || !strings.Contains(err.Error(), "unexpected") {
			t.Errorf("got %v, want panic error", err)
		}
		if len(logger.GetErrors()) != 1 {
			t.Errorf("expected the panic to be logged once, got %d", len(logger.GetErrors()))
		}
	})
}
