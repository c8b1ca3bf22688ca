package domain

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// DefaultBindAddress is where the monitoring center listens when nothing else is configured.
const DefaultBindAddress = "localhost:12000"

// BindAddress is a host:port pair the monitoring center listens on.
// The host part may be empty (":12000") to listen on every interface,
// and port 0 asks the OS for a free port.
type BindAddress string

// NewBindAddress validates value as a TCP listen address.
func NewBindAddress(value string) (BindAddress, error) {
	if value == "" {
		return "", errors.New("bind address must be non-empty")
	}

	_, port, err := net.SplitHostPort(value)
	if err != nil {
		return "", fmt.Errorf("invalid bind address format: %w", err)
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("port must be a number: %s", port)
	}
	if p < 0 || p > 65535 {
		return "", fmt.Errorf("port out of range: %d", p)
	}

	return BindAddress(value), nil
}
