package infrastructure

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/encoding/json"

	monitorDomain "github.com/samoilenko/thermo_monitor/monitor/domain"
)

// StatusAPI exposes the history store over HTTP, read-only.
type StatusAPI struct {
	app    *fiber.App
	store  *monitorDomain.HistoryStore
	logger monitorDomain.Logger
}

type sensorResponse struct {
	SensorID string                  `json:"sensor_id"`
	Readings []monitorDomain.Reading `json:"readings"`
	Average  float64                 `json:"average"`
	Latest   monitorDomain.Reading   `json:"latest"`
}

type averageResponse struct {
	SensorID string  `json:"sensor_id"`
	Average  float64 `json:"average"`
}

func (s *StatusAPI) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/health", s.healthCheck)
	api.Get("/sensors", s.getSensors)
	api.Get("/sensors/:id", s.getSensor)
	api.Get("/sensors/:id/average", s.getAverage)
}

// Start serves the API on address until ctx is cancelled.
func (s *StatusAPI) Start(ctx context.Context, address string) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("status API: %w", err)
	}

	stop := context.AfterFunc(ctx, func() {
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error("status API shutdown error: %s", err.Error())
		}
		_ = ln.Close()
	})
	defer stop()

	s.logger.Info("status API listening on %s", ln.Addr().String())
	if err := s.app.Listener(ln); err != nil && ctx.Err() == nil {
		return fmt.Errorf("status API: %w", err)
	}
	return nil
}

func (s *StatusAPI) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"sensors":   len(s.store.SensorIDs()),
		"capacity":  s.store.Capacity(),
		"timestamp": time.Now().Unix(),
	})
}

func (s *StatusAPI) getSensors(c *fiber.Ctx) error {
	return c.JSON(s.store.Snapshot())
}

func (s *StatusAPI) getSensor(c *fiber.Ctx) error {
	id := c.Params("id")

	readings, ok := s.store.History(id)
	if !ok || len(readings) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown sensor"})
	}

	avg, _ := monitorDomain.Average(readings)
	return c.JSON(sensorResponse{
		SensorID: id,
		Readings: readings,
		Average:  avg,
		Latest:   readings[len(readings)-1],
	})
}

func (s *StatusAPI) getAverage(c *fiber.Ctx) error {
	id := c.Params("id")

	avg, ok := s.store.AverageFor(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown sensor"})
	}

	return c.JSON(averageResponse{SensorID: id, Average: avg})
}

// NewStatusAPI creates the HTTP API over store.
func NewStatusAPI(store *monitorDomain.HistoryStore, logger monitorDomain.Logger) *StatusAPI {
	app := fiber.New(fiber.Config{
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		IdleTimeout:           60 * time.Second,
		DisableStartupMessage: true,
		AppName:               "thermo-monitor",
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	s := &StatusAPI{
		app:    app,
		store:  store,
		logger: logger,
	}
	s.setupRoutes()
	return s
}
