// Monitor is the temperature monitoring center. Sensors connect over TCP and
// send readings as "<sensorId>,<temperature>,<timestamp>"; every reading is
// classified, kept in a bounded per-sensor history and acknowledged.
//
// Usage: monitor -bind-address=localhost:12000 -history-capacity=20 -api-address=:8080 -chart-interval=15s
//
// Flags:
//
//	-config: YAML file with base values, explicit flags override it
//	-bind-address: server bind address (default localhost:12000)
//	-history-capacity: readings kept per sensor (default 20)
//	-low-threshold, -high-threshold: bounds of the Normal band (default 15 and 35)
//	-buffer-size: read buffer size in bytes (default 1024)
//	-max-connections: concurrent connection limit, 0 for none
//	-read-timeout: idle connection timeout, 0 for none
//	-drain-timeout: how long shutdown waits for open connections
//	-api-address: status API address, empty to disable
//	-chart-interval: sparkline chart period, 0 to disable
//	-log-file: also write logs to this file
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

	"golang.org/x/sync/errgroup"

	monitorDomain "github.com/samoilenko/thermo_monitor/monitor/domain"
	monitorInfrastructure "github.com/samoilenko/thermo_monitor/monitor/infrastructure"
	"github.com/samoilenko/thermo_monitor/pkg/logging"
)

func endWithError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer finish()

	config, err := monitorInfrastructure.GetFromCommandLineParameters(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		endWithError(err)
	}

	logger, err := logging.NewZapLogger(config.Env, string(config.LogPath))
	if err != nil {
		endWithError(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Creating services...")
	store := monitorDomain.NewHistoryStore(config.HistoryCapacity)
	processor := monitorDomain.NewReadingProcessor(store, config.Thresholds, logger)
	handler := monitorInfrastructure.NewConnectionHandler(processor, config.BufferSize, config.ReadTimeout, logger)
	listener := monitorInfrastructure.NewListener(config.BindAddress, config.MaxConnections, handler, logger)

	if err := listener.Listen(); err != nil {
		logger.Error("cannot start server: %s", err.Error())
		_ = logger.Sync()
		os.Exit(1)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return listener.Serve(gctx)
	})

	if config.APIAddress != "" {
		api := monitorInfrastructure.NewStatusAPI(store, logger)
		g.Go(func() error {
			return api.Start(gctx, string(config.APIAddress))
		})
	}

	if config.ChartInterval > 0 {
		renderer := monitorInfrastructure.NewChartRenderer(
			store,
			os.Stdout,
			config.ChartInterval,
			config.ChartWidth,
			config.Thresholds,
			logger,
		)
		g.Go(func() error {
			renderer.Start(gctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error: %s", err.Error())
	}

	// no-op when cancelling gctx already closed the listening socket
	if err := listener.Shutdown(); err != nil {
		logger.Error("shutdown error: %s", err.Error())
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), time.Duration(config.DrainTimeout))
	defer cancel()
	if err := listener.Drain(drainCtx); err != nil {
		logger.Info("not waiting for open connections any longer: %s", err.Error())
	}

	logger.Info("All components stopped gracefully")
}
