package infrastructure

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samoilenko/thermo_monitor/monitor/chart"
	monitorDomain "github.com/samoilenko/thermo_monitor/monitor/domain"
)

// SnapshotSource provides a copy of every sensor's history.
type SnapshotSource interface {
	Snapshot() map[string][]monitorDomain.Reading
}

// ChartRenderer periodically draws the collected history as sparklines.
// It works on snapshots only, so rendering never holds the store's lock.
type ChartRenderer struct {
	source     SnapshotSource
	out        io.Writer
	interval   monitorDomain.ChartInterval
	width      int
	thresholds monitorDomain.Thresholds
	logger     monitorDomain.Logger
}

// Render draws the current history once. Nothing is written while no sensor has reported.
func (r *ChartRenderer) Render() error {
	snapshot := r.source.Snapshot()
	if len(snapshot) == 0 {
		return nil
	}

	header := fmt.Sprintf("── %s ──\n", time.Now().Format(time.DateTime))
	if _, err := io.WriteString(r.out, header+chart.RenderHistory(snapshot, r.width, r.thresholds)+"\n"); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// Start renders on every tick until ctx is cancelled.
func (r *ChartRenderer) Start(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(r.interval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Render(); err != nil {
				r.logger.Error("error on rendering chart: %s", err.Error())
			}
		}
	}
}

// NewChartRenderer creates a renderer writing to out every interval.
// The interval must be positive before Start is called.
func NewChartRenderer(
	source SnapshotSource,
	out io.Writer,
	interval monitorDomain.ChartInterval,
	width int,
	thresholds monitorDomain.Thresholds,
	logger monitorDomain.Logger,
) *ChartRenderer {
	return &ChartRenderer{
		source:     source,
		out:        out,
		interval:   interval,
		width:      width,
		thresholds: thresholds,
		logger:     logger,
	}
}
