package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/meshsim/internal/preset"
	"github.com/verte-zerg/meshsim/internal/sim"
)

// DefaultBarWidth is the progress fill width when none is configured.
const DefaultBarWidth = 30

// RenderPlan prints the pre-flight transmission analysis for a plan.
func RenderPlan(w io.Writer, p preset.Preset, plan sim.Plan) error {
	lines := []string{
		fmt.Sprintf("Preset:     %s (%s)", p.Name, FormatRate(p.BitRate)),
		fmt.Sprintf("Technical:  %s", p.Technical),
		fmt.Sprintf("Payload:    %s bytes (%s packets of up to %d bytes)",
			humanize.Comma(int64(plan.PayloadBytes)), humanize.Comma(int64(plan.PacketCount)), sim.PacketCapacity),
		fmt.Sprintf("Airtime:    %s bytes incl. overhead, about %s",
			humanize.Comma(int64(plan.TotalBytes)), FormatDuration(plan.Duration)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ConsoleSink writes playback output as plain text lines: one progress
// header per packet, the packet's chunk, then a closing summary. It is the
// sink for non-interactive runs and for piped output.
type ConsoleSink struct {
	W        io.Writer
	BarWidth int
}

// Packet implements sim.Sink.
func (s *ConsoleSink) Packet(index, total int, chunk string) error {
	width := s.BarWidth
	if width <= 0 {
		width = DefaultBarWidth
	}
	if _, err := fmt.Fprintf(s.W, "[%4d/%d] %s\n", index+1, total, RenderBar(index+1, total, width)); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.W, chunk)
	return err
}

// Summary implements sim.Sink.
func (s *ConsoleSink) Summary(res sim.Result) error {
	if res.Cancelled {
		if _, err := fmt.Fprintf(s.W, "\nTransmission cancelled (incomplete): %d of %d packets sent (%s bytes)\n",
			res.PacketsSent, res.PacketCount, humanize.Comma(int64(res.BytesSent))); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(s.W, "\nTransmission complete: %d packets (%s bytes)\n",
			res.PacketsSent, humanize.Comma(int64(res.BytesSent))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(s.W, "Elapsed %s (estimated %s) at %s\n",
		FormatDuration(res.Elapsed), FormatDuration(res.Estimated), FormatRate(res.EffectiveBitRate()))
	return err
}
