// Package chart renders sensor histories as colour-coded terminal sparklines.
// It only works on snapshots and never touches the history store itself.
package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	monitorDomain "github.com/samoilenko/thermo_monitor/monitor/domain"
)

var sparkBlocks = []rune{'\u2581', '\u2582', '\u2583', '\u2584', '\u2585', '\u2586', '\u2587', '\u2588'}

// rangePadding widens the vertical range around the thresholds so readings
// close to a bound do not sit on the first or last block.
const rangePadding = 5.0

// StatusColor returns the colour used for a reading with the given status.
func StatusColor(s monitorDomain.Status) lipgloss.Color {
	switch s {
	case monitorDomain.StatusBelow:
		return lipgloss.Color("39") // blue
	case monitorDomain.StatusAbove:
		return lipgloss.Color("196") // red
	default:
		return lipgloss.Color("78") // soft green
	}
}

// emptyCell fills the columns no reading has reached yet.
const emptyCell = "·"

var (
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle = map[monitorDomain.Status]lipgloss.Style{
		monitorDomain.StatusBelow:  lipgloss.NewStyle().Foreground(StatusColor(monitorDomain.StatusBelow)),
		monitorDomain.StatusNormal: lipgloss.NewStyle().Foreground(StatusColor(monitorDomain.StatusNormal)),
		monitorDomain.StatusAbove:  lipgloss.NewStyle().Foreground(StatusColor(monitorDomain.StatusAbove)).Bold(true),
	}
)

// level maps t onto a block index, clamping values outside [lo, hi].
func level(t, lo, hi float64) int {
	if hi <= lo {
		return 0
	}
	top := len(sparkBlocks) - 1
	return int(math.Round(float64(top) * math.Max(0, math.Min(1, (t-lo)/(hi-lo)))))
}

// cell renders one reading as a block coloured by its status.
func cell(r monitorDomain.Reading, lo, hi float64) string {
	style, ok := statusStyle[r.Status]
	if !ok {
		style = statusStyle[monitorDomain.StatusNormal]
	}
	return style.Render(string(sparkBlocks[level(r.Temperature, lo, hi)]))
}

// RenderSparkline draws the newest width readings, one block each, with the
// newest on the right. Unused columns on the left are filled with dots.
func RenderSparkline(readings []monitorDomain.Reading, width int, rangeMin, rangeMax float64) string {
	if width <= 0 {
		return ""
	}
	if skip := len(readings) - width; skip > 0 {
		readings = readings[skip:]
	}

	cells := make([]string, 0, width)
	if empty := width - len(readings); empty > 0 {
		cells = append(cells, emptyStyle.Render(strings.Repeat(emptyCell, empty)))
	}
	for _, r := range readings {
		cells = append(cells, cell(r, rangeMin, rangeMax))
	}
	return strings.Join(cells, "")
}

// Range returns the vertical range covering the thresholds and every reading in snapshot.
func Range(snapshot map[string][]monitorDomain.Reading, th monitorDomain.Thresholds) (float64, float64) {
	lo, hi := th.Low-rangePadding, th.High+rangePadding
	for _, readings := range snapshot {
		for _, r := range readings {
			lo = math.Min(lo, r.Temperature)
			hi = math.Max(hi, r.Temperature)
		}
	}
	return lo, hi
}

// RenderHistory renders one line per sensor, sorted by sensor id:
//
//	<id> <sparkline> last <t>°C avg <a>°C <status>
func RenderHistory(snapshot map[string][]monitorDomain.Reading, width int, th monitorDomain.Thresholds) string {
	ids := make([]string, 0, len(snapshot))
	idWidth := 0
	for id, readings := range snapshot {
		if len(readings) == 0 {
			continue
		}
		ids = append(ids, id)
		if len(id) > idWidth {
			idWidth = len(id)
		}
	}
	sort.Strings(ids)

	rangeMin, rangeMax := Range(snapshot, th)

	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		readings := snapshot[id]
		last := readings[len(readings)-1]
		avg, _ := monitorDomain.Average(readings)

		status := lipgloss.NewStyle().Foreground(StatusColor(last.Status)).Render(last.Status.Label())
		lines = append(lines, fmt.Sprintf("%-*s %s  last %s°C  avg %.2f°C  %s",
			idWidth, id,
			RenderSparkline(readings, width, rangeMin, rangeMax),
			last.TemperatureText(), avg, status,
		))
	}

	return strings.Join(lines, "\n")
}
