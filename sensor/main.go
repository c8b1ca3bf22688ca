// This component simulates a temperature sensor reporting to the monitoring center.
//
// Usage example: sensor -name kitchen -address=localhost:12000 -interval=15s
//
// Flags:
//
//	-name: sensor id, defaults to sensor-<local port>
//	-address: address of the monitoring center (default localhost:12000)
//	-interval: time between two readings (default 15s)
//	-env: dev for human readable debug logs
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samoilenko/thermo_monitor/pkg/logging"
	sensorDomain "github.com/samoilenko/thermo_monitor/sensor/domain"
	sensorInfrastructure "github.com/samoilenko/thermo_monitor/sensor/infrastructure"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := sensorInfrastructure.GetConfigParameters(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		endWithError(err)
	}

	logger, err := logging.NewZapLogger(config.Env, "")
	if err != nil {
		endWithError(err)
	}
	defer func() { _ = logger.Sync() }()

	transport := sensorInfrastructure.NewTCPTransport(config.Address, logger)
	defer func() {
		if err := transport.Close(); err != nil {
			logger.Error("error on closing connection: %s", err.Error())
		}
	}()

	if err := transport.Connect(ctx); err != nil {
		logger.Error("cannot reach the monitoring center: %s", err.Error())
		return
	}

	sensorName := config.Name
	if sensorName == "" {
		sensorName, err = sensorDomain.SensorNameFromAddr(transport.LocalAddr())
		if err != nil {
			logger.Error("cannot derive sensor name: %s", err.Error())
			return
		}
	}
	sensorLogger := logger.With("sensor", string(sensorName))
	sensorLogger.Info("reporting to %s every %s", config.Address, time.Duration(config.Interval))

	sensor, err := sensorInfrastructure.NewRandomSensor(
		sensorInfrastructure.DefaultMinTemperature,
		sensorInfrastructure.DefaultMaxTemperature,
	)
	if err != nil {
		endWithError(err)
	}

	// stop the reader as soon as the sender gives up
	sendCtx, stop := context.WithCancel(ctx)
	defer stop()

	reader := sensorDomain.NewValueReader(config.Interval, 1, sensorLogger)
	valuesCh := reader.Read(sendCtx, sensor)
	sender := sensorDomain.NewSensorDataSender(transport, sensorLogger, sensorName)
	sender.Send(sendCtx, valuesCh)
	stop()

	sensorLogger.Info("sensor stopped")
}
