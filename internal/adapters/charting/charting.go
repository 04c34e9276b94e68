// Package charting renders per-bucket timeline images of the schedule.
package charting

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/jamhacks/jamsched/internal/adapters/csvio"
	"github.com/jamhacks/jamsched/internal/domain/model"
)

const (
	chartWidth      = 900
	rowHeight       = 36
	baseHeight      = 120
	slotStrokeWidth = 10

	imageFilePermission = 0o644
)

// RenderBucketTimeline produces a PNG timeline for one bucket: one horizontal
// bar per team, x axis in minutes since the run start.
func RenderBucketTimeline(bs model.BucketSchedule, runStart time.Time) ([]byte, error) {
	if len(bs.Slots) == 0 {
		return nil, fmt.Errorf("bucket %q has no slots to draw", bs.Bucket.Name)
	}

	series := make([]chart.Series, 0, len(bs.Slots))
	ticks := []chart.Tick{{Value: 0, Label: ""}}
	for i, slot := range bs.Slots {
		y := float64(i + 1)
		series = append(series, chart.ContinuousSeries{
			Name:    slot.TeamName,
			XValues: []float64{slot.Start.Sub(runStart).Minutes(), slot.End.Sub(runStart).Minutes()},
			YValues: []float64{y, y},
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: slotStrokeWidth,
			},
		})
		ticks = append(ticks, chart.Tick{Value: y, Label: slot.TeamName})
	}
	ticks = append(ticks, chart.Tick{Value: float64(len(bs.Slots) + 1), Label: ""})

	graph := chart.Chart{
		Title:  bs.Bucket.Name,
		Width:  chartWidth,
		Height: baseHeight + rowHeight*len(bs.Slots),
		XAxis: chart.XAxis{
			Name: "Minutes since judging start",
		},
		YAxis: chart.YAxis{
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(bs.Slots) + 1)},
		},
		Series: series,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render timeline for %q: %w", bs.Bucket.Name, err)
	}
	return buf.Bytes(), nil
}

// WriteBucketTimelines writes one timeline PNG per non-empty bucket into dir
// and returns the created file paths.
func WriteBucketTimelines(dir string, buckets []model.BucketSchedule, runStart time.Time) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	var paths []string
	for _, bs := range buckets {
		if len(bs.Slots) == 0 {
			continue
		}
		png, err := RenderBucketTimeline(bs, runStart)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, csvio.Slug(bs.Bucket.Name)+"_timeline.png")
		if err := os.WriteFile(path, png, imageFilePermission); err != nil {
			return nil, fmt.Errorf("write %s: %w", filepath.Base(path), err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
