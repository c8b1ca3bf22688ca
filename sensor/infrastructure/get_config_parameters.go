package infrastructure

import (
	"flag"
	"os"

	sensorDomain "github.com/samoilenko/thermo_monitor/sensor/domain"
)

// SensorConfig holds the validated sensor configuration. An empty Name means
// the name is derived from the local port once connected.
type SensorConfig struct {
	Address  sensorDomain.Address
	Name     sensorDomain.SensorName
	Interval sensorDomain.Interval
	Env      string
}

// GetConfigParameters parses args and returns validated sensor configuration.
func GetConfigParameters(args []string) (*SensorConfig, error) {
	fs := flag.NewFlagSet("sensor", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	rawSensorName := fs.String("name", "", "sensor name, defaults to sensor-<local port>")
	rawAddress := fs.String("address", sensorDomain.DefaultAddress, "address of the monitoring center")
	rawInterval := fs.Duration("interval", sensorDomain.DefaultInterval, "time between two readings")
	env := fs.String("env", "prod", "environment: dev for debug console logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	address, err := sensorDomain.NewAddress(*rawAddress)
	if err != nil {
		return nil, err
	}

	interval, err := sensorDomain.NewInterval(*rawInterval)
	if err != nil {
		return nil, err
	}

	var sensorName sensorDomain.SensorName
	if *rawSensorName != "" {
		sensorName, err = sensorDomain.NewSensorName(*rawSensorName)
		if err != nil {
			return nil, err
		}
	}

	return &SensorConfig{
		Address:  address,
		Name:     sensorName,
		Interval: interval,
		Env:      *env,
	}, nil
}
