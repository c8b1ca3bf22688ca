package infrastructure

import (
	"fmt"
	"strings"
	"sync"
)

// Mock logger for testing
type mockLogger struct {
	mu       sync.Mutex
	messages []string
}

func (m *mockLogger) Debug(_ string, _ ...interface{}) {}
func (m *mockLogger) Info(_ string, _ ...interface{})  {}

func (m *mockLogger) Error(msg string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, fmt.Sprintf(msg, args...))
}

func (m *mockLogger) GetMessages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.messages...)
}

func (m *mockLogger) Contains(part string) bool {
	for _, msg := range m.GetMessages() {
		if strings.Contains(msg, part) {
			return true
		}
	}
	return false
}
