package infrastructure

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	monitorDomain "github.com/samoilenko/thermo_monitor/monitor/domain"
)

// AppConfig holds all validated configuration parameters for the monitoring center.
type AppConfig struct {
	BindAddress     monitorDomain.BindAddress
	HistoryCapacity monitorDomain.HistoryCapacity
	Thresholds      monitorDomain.Thresholds
	BufferSize      monitorDomain.BufferSize
	MaxConnections  monitorDomain.MaxConnections
	ReadTimeout     monitorDomain.ReadTimeout
	DrainTimeout    monitorDomain.DrainTimeout
	APIAddress      monitorDomain.BindAddress
	ChartInterval   monitorDomain.ChartInterval
	ChartWidth      int
	LogPath         monitorDomain.LogPath
	Env             string
}

// rawConfig is the unvalidated configuration as read from a YAML file and flags.
type rawConfig struct {
	BindAddress     string        `yaml:"bind_address"`
	HistoryCapacity int           `yaml:"history_capacity"`
	LowThreshold    float64       `yaml:"low_threshold"`
	HighThreshold   float64       `yaml:"high_threshold"`
	BufferSize      int           `yaml:"buffer_size"`
	MaxConnections  int           `yaml:"max_connections"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	DrainTimeout    time.Duration `yaml:"drain_timeout"`
	APIAddress      string        `yaml:"api_address"`
	ChartInterval   time.Duration `yaml:"chart_interval"`
	ChartWidth      int           `yaml:"chart_width"`
	LogFile         string        `yaml:"log_file"`
	Env             string        `yaml:"env"`
}

func defaultRawConfig() rawConfig {
	return rawConfig{
		BindAddress:     monitorDomain.DefaultBindAddress,
		HistoryCapacity: monitorDomain.DefaultHistoryCapacity,
		LowThreshold:    monitorDomain.DefaultLowThreshold,
		HighThreshold:   monitorDomain.DefaultHighThreshold,
		BufferSize:      monitorDomain.DefaultBufferSize,
		DrainTimeout:    5 * time.Second,
		ChartWidth:      monitorDomain.DefaultHistoryCapacity,
		Env:             "prod",
	}
}

// newFlagSet binds every flag to raw, using the current values of raw as defaults.
func newFlagSet(raw *rawConfig, configPath *string, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("monitor", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(configPath, "config", *configPath, "Path to a YAML config file; flags override its values")
	fs.StringVar(&raw.BindAddress, "bind-address", raw.BindAddress, "Bind address (e.g. localhost:12000)")
	fs.IntVar(&raw.HistoryCapacity, "history-capacity", raw.HistoryCapacity, "Readings kept per sensor")
	fs.Float64Var(&raw.LowThreshold, "low-threshold", raw.LowThreshold, "Temperatures below this are reported as Abaixo")
	fs.Float64Var(&raw.HighThreshold, "high-threshold", raw.HighThreshold, "Temperatures above this are reported as Acima")
	fs.IntVar(&raw.BufferSize, "buffer-size", raw.BufferSize, "Read buffer size in bytes, one message per read")
	fs.IntVar(&raw.MaxConnections, "max-connections", raw.MaxConnections, "Maximum concurrent connections, 0 for no limit")
	fs.DurationVar(&raw.ReadTimeout, "read-timeout", raw.ReadTimeout, "Close connections idle for this long, 0 to disable")
	fs.DurationVar(&raw.DrainTimeout, "drain-timeout", raw.DrainTimeout, "How long shutdown waits for open connections")
	fs.StringVar(&raw.APIAddress, "api-address", raw.APIAddress, "Status API address (e.g. :8080), empty to disable")
	fs.DurationVar(&raw.ChartInterval, "chart-interval", raw.ChartInterval, "Print history charts this often, 0 to disable")
	fs.IntVar(&raw.ChartWidth, "chart-width", raw.ChartWidth, "Chart width in readings")
	fs.StringVar(&raw.LogFile, "log-file", raw.LogFile, "Also write logs to this file")
	fs.StringVar(&raw.Env, "env", raw.Env, "Environment: dev for debug console logs, anything else for JSON logs")

	return fs
}

// GetFromCommandLineParameters parses command-line flags and returns validated monitor configuration.
// When -config is given the YAML file provides the base values and flags set explicitly override them.
func GetFromCommandLineParameters(args []string) (*AppConfig, error) {
	raw := defaultRawConfig()
	configPath := ""

	fs := newFlagSet(&raw, &configPath, os.Stderr)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if configPath != "" {
		fileRaw, err := loadConfigFile(configPath)
		if err != nil {
			return nil, err
		}

		// parse again with the file values as defaults so explicit flags win
		raw = fileRaw
		fs = newFlagSet(&raw, &configPath, io.Discard)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
	}

	return raw.validate()
}

func loadConfigFile(path string) (rawConfig, error) {
	raw := defaultRawConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return raw, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return raw, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return raw, nil
}

func (raw rawConfig) validate() (*AppConfig, error) {
	bindAddress, err := monitorDomain.NewBindAddress(raw.BindAddress)
	if err != nil {
		return nil, err
	}

	historyCapacity, err := monitorDomain.NewHistoryCapacity(raw.HistoryCapacity)
	if err != nil {
		return nil, err
	}

	thresholds, err := monitorDomain.NewThresholds(raw.LowThreshold, raw.HighThreshold)
	if err != nil {
		return nil, err
	}

	bufferSize, err := monitorDomain.NewBufferSize(raw.BufferSize)
	if err != nil {
		return nil, err
	}

	maxConnections, err := monitorDomain.NewMaxConnections(raw.MaxConnections)
	if err != nil {
		return nil, err
	}

	readTimeout, err := monitorDomain.NewReadTimeout(raw.ReadTimeout)
	if err != nil {
		return nil, err
	}

	drainTimeout, err := monitorDomain.NewDrainTimeout(raw.DrainTimeout)
	if err != nil {
		return nil, err
	}

	var apiAddress monitorDomain.BindAddress
	if raw.APIAddress != "" {
		apiAddress, err = monitorDomain.NewBindAddress(raw.APIAddress)
		if err != nil {
			return nil, fmt.Errorf("api address: %w", err)
		}
	}

	chartInterval, err := monitorDomain.NewChartInterval(raw.ChartInterval)
	if err != nil {
		return nil, err
	}
	if raw.ChartWidth <= 0 {
		return nil, errors.New("chart width must be greater than 0")
	}

	logPath, err := monitorDomain.NewLogPath(raw.LogFile)
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		BindAddress:     bindAddress,
		HistoryCapacity: historyCapacity,
		Thresholds:      thresholds,
		BufferSize:      bufferSize,
		MaxConnections:  maxConnections,
		ReadTimeout:     readTimeout,
		DrainTimeout:    drainTimeout,
		APIAddress:      apiAddress,
		ChartInterval:   chartInterval,
		ChartWidth:      raw.ChartWidth,
		LogPath:         logPath,
		Env:             raw.Env,
	}, nil
}
