package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/meshsim/internal/model"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the values as one line of block characters, scaled to
// the min/max of the series.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkLevels[len(sparkLevels)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkLevels)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkLevels) {
			idx = len(sparkLevels) - 1
		}
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}

// RenderHistory prints stored runs, oldest first, with a throughput
// sparkline underneath.
func RenderHistory(w io.Writer, runs []model.RunAggregate) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded yet.")
		return err
	}

	cols := []column{
		{title: "Date"},
		{title: "Preset"},
		{title: "Source"},
		{title: "Bytes", rightAlign: true},
		{title: "Packets", rightAlign: true},
		{title: "Estimated", rightAlign: true},
		{title: "Elapsed", rightAlign: true},
		{title: "Rate", rightAlign: true},
		{title: "Status"},
	}
	rows := make([][]string, 0, len(runs))
	rates := make([]float64, 0, len(runs))
	for _, run := range runs {
		status := "ok"
		if run.Cancelled {
			status = "cancelled"
		}
		rows = append(rows, []string{
			run.StartedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d %s", run.PresetID, run.PresetName),
			run.Source,
			humanize.Comma(int64(run.PayloadBytes)),
			fmt.Sprintf("%d/%d", run.PacketsSent, run.PacketCount),
			FormatDuration(msDuration(run.EstimatedMs)),
			FormatDuration(msDuration(run.ElapsedMs)),
			fmt.Sprintf("%.2f kbps", run.EffectiveKbps()),
			status,
		})
		rates = append(rates, run.EffectiveKbps())
	}

	for _, line := range formatTable(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if len(rates) > 1 {
		if _, err := fmt.Fprintf(w, "\nThroughput trend: %s\n", Sparkline(rates)); err != nil {
			return err
		}
	}
	return nil
}
