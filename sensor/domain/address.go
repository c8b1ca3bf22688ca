package domain

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// DefaultAddress is the monitoring center the sensor reports to by default.
const DefaultAddress = "localhost:12000"

// Address of the monitoring center, as host:port.
type Address string

// NewAddress validates the given string and returns it as an Address.
// It returns an error if address is empty or has no numeric port.
func NewAddress(address string) (Address, error) {
	if len(address) == 0 {
		return "", errors.New("address cannot be empty")
	}

	_, port, err := net.SplitHostPort(address)
	if err != nil {
		return "", fmt.Errorf("invalid address %q: %w", address, err)
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		return "", fmt.Errorf("port must be a number: %s", port)
	}
	if p < 0 || p > 65535 {
		return "", fmt.Errorf("port out of range: %d", p)
	}

	return Address(address), nil
}
