// Package chart renders per-service status-over-time step charts for report
// emails.
package chart

import (
	"MS_Service_Health_Monitor/internal/model"
	"MS_Service_Health_Monitor/internal/severity"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

const artifactTimeLayout = "2006-01-02_15-04-05"

type Renderer interface {
	Render(customer string, service string, records []model.StatusRecord) (string, error)
}

type renderer struct {
	severityMap *severity.Map
	imagesDir   string
	width       int
	height      int
}

// Render plots the severity score of each observation with step-after
// interpolation: status is a discrete state, so the value holds from one
// observation until the next change. The returned path is timestamp-qualified
// so artifacts from earlier report runs are never overwritten.
func (r *renderer) Render(customer string, service string, records []model.StatusRecord) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("Renderer.Render: no records for service %s", service)
	}

	dir := filepath.Join(r.imagesDir, customer)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("Renderer.Render creating image directory: %w", err)
	}

	xs, ys := r.stepPoints(records)
	graph := chart.Chart{
		Width:  r.width,
		Height: r.height,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("01-02 15:04"),
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 10.5},
			Ticks: r.severityTicks(),
			GridMajorStyle: chart.Style{
				StrokeColor:     chart.ColorLightGray,
				StrokeWidth:     1.0,
				StrokeDashArray: []float64{4.0, 2.0},
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: service,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 1.0,
					DotColor:    chart.ColorBlue,
					DotWidth:    2.0,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", time.Now().Format(artifactTimeLayout), service))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("Renderer.Render creating image file: %w", err)
	}
	defer f.Close()
	if err = graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("Renderer.Render: %w", err)
	}
	return path, nil
}

// stepPoints expands observations into step-after coordinates: before each
// observation after the first, the previous score is repeated at the new
// timestamp. A lone observation is padded with a second point so the chart
// still renders as a flat line.
func (r *renderer) stepPoints(records []model.StatusRecord) ([]time.Time, []float64) {
	xs := make([]time.Time, 0, 2*len(records))
	ys := make([]float64, 0, 2*len(records))
	for i, record := range records {
		score := float64(r.severityMap.ScoreOf(record.Status))
		if i > 0 {
			xs = append(xs, record.Timestamp)
			ys = append(ys, ys[len(ys)-1])
		}
		xs = append(xs, record.Timestamp)
		ys = append(ys, score)
	}
	if len(records) == 1 {
		xs = append(xs, records[0].Timestamp.Add(time.Minute))
		ys = append(ys, ys[0])
	}
	return xs, ys
}

// severityTicks labels the y-axis with the raw status strings in the severity
// map's declared order. Statuses sharing a score share one tick; the first
// declared status at that score wins.
func (r *renderer) severityTicks() []chart.Tick {
	seen := make(map[int]bool)
	var ticks []chart.Tick
	for _, entry := range r.severityMap.Entries() {
		if seen[entry.Score] {
			continue
		}
		seen[entry.Score] = true
		ticks = append(ticks, chart.Tick{
			Value: float64(entry.Score),
			Label: entry.Status,
		})
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

func NewRenderer(severityMap *severity.Map, imagesDir string, width int, height int) Renderer {
	return &renderer{
		severityMap: severityMap,
		imagesDir:   imagesDir,
		width:       width,
		height:      height,
	}
}
