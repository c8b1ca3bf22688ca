package domain

import (
	"errors"
	"net"
	"strings"
)

// SensorName - the id the sensor reports its readings under.
type SensorName string

// NewSensorName validates the given string and returns it as a SensorName.
// The name ends up in a comma separated message, so it cannot contain commas.
func NewSensorName(name string) (SensorName, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("sensor name cannot be empty")
	}
	if strings.ContainsAny(name, ",\r\n") {
		return "", errors.New("sensor name cannot contain commas or line breaks")
	}

	return SensorName(name), nil
}

// SensorNameFromAddr derives "sensor-<port>" from the local address of the connection.
func SensorNameFromAddr(addr net.Addr) (SensorName, error) {
	if addr == nil {
		return "", errors.New("no local address to derive the sensor name from")
	}
	_, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "", err
	}
	return SensorName("sensor-" + port), nil
}
