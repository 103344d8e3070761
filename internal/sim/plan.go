// Package sim computes transmission plans and drives throttled playback.
package sim

import (
	"time"

	"github.com/verte-zerg/meshsim/internal/preset"
)

const (
	// PacketCapacity is the maximum payload bytes carried per packet,
	// excluding protocol overhead.
	PacketCapacity = 237

	// PacketOverhead is the header/framing cost in bytes charged to every
	// packet when estimating airtime. The LoRa packet header in front of a
	// 237-byte payload is 16 bytes; timing uses this single constant.
	PacketOverhead = 16
)

// Plan is the derived packet segmentation and timing estimate for one
// preset/payload pair.
type Plan struct {
	PayloadBytes int
	PacketCount  int
	TotalBytes   int
	Duration     time.Duration
}

// Estimate computes the plan for transmitting text with the given preset.
// Empty text is legal and yields a single packet whose duration covers the
// overhead bytes alone; the estimate always charges per-packet overhead so
// timings are not optimistic.
func Estimate(p preset.Preset, text string) Plan {
	payload := len(text)
	packets := (payload + PacketCapacity - 1) / PacketCapacity
	if packets < 1 {
		packets = 1
	}
	total := payload + packets*PacketOverhead
	seconds := float64(total) * 8 / p.BitRate
	return Plan{
		PayloadBytes: payload,
		PacketCount:  packets,
		TotalBytes:   total,
		Duration:     time.Duration(seconds * float64(time.Second)),
	}
}

// stepOffset returns the cumulative elapsed time at which packet delivery
// step (1-based) completes. Targets are fractions of the absolute total, so
// per-step rounding never compounds.
func (p Plan) stepOffset(step int) time.Duration {
	return time.Duration(float64(p.Duration) * float64(step) / float64(p.PacketCount))
}

// SegmentText splits text into n order-preserving chunks of roughly equal
// rune count; the last chunk absorbs any remainder. Splitting on runes keeps
// multi-byte characters intact on screen.
func SegmentText(text string, n int) []string {
	if n < 1 {
		n = 1
	}
	runes := []rune(text)
	base := len(runes) / n
	chunks := make([]string, n)
	for i := 0; i < n-1; i++ {
		chunks[i] = string(runes[i*base : (i+1)*base])
	}
	chunks[n-1] = string(runes[(n-1)*base:])
	return chunks
}
