package sim

import (
	"context"
	"errors"
	"time"

	"github.com/verte-zerg/meshsim/internal/preset"
)

// ErrNoPreset reports a nil preset reference passed to Simulate. The CLI
// resolves presets before calling in, so hitting this indicates a caller bug.
var ErrNoPreset = errors.New("simulate: preset is required")

// Sink receives ordered playback output. The simulator performs no device
// I/O itself; sinks decide whether output lands on a console, a buffer, or
// a TUI.
type Sink interface {
	// Packet delivers one chunk. index is 0-based and strictly increasing.
	Packet(index, total int, chunk string) error
	// Summary reports the final outcome, complete or cancelled.
	Summary(res Result) error
}

// Result is the reported outcome of one playback run.
type Result struct {
	PacketsSent int
	PacketCount int
	BytesSent   int
	Elapsed     time.Duration
	Estimated   time.Duration
	Cancelled   bool
}

// EffectiveBitRate reports the achieved payload rate in bits per second.
func (r Result) EffectiveBitRate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.BytesSent) * 8 / r.Elapsed.Seconds()
}

// Simulate replays text split across the plan's packets, pacing each packet
// against an absolute share of the estimated duration. Cancellation is
// cooperative: it is observed at packet boundaries, so at most one
// already-scheduled wait runs after ctx is cancelled, and a packet whose
// wait was interrupted is not delivered. Both outcomes emit a summary.
func Simulate(ctx context.Context, p *preset.Preset, text string, sink Sink, clock Clock) (Result, error) {
	if p == nil {
		return Result{}, ErrNoPreset
	}
	plan := Estimate(*p, text)
	chunks := SegmentText(text, plan.PacketCount)

	start := clock.Now()
	res := Result{
		PacketCount: plan.PacketCount,
		Estimated:   plan.Duration,
	}
	for i, chunk := range chunks {
		deadline := start.Add(plan.stepOffset(i + 1))
		if err := clock.WaitUntil(ctx, deadline); err != nil {
			res.Cancelled = true
			res.Elapsed = clock.Now().Sub(start)
			if serr := sink.Summary(res); serr != nil {
				return res, serr
			}
			return res, nil
		}
		if err := sink.Packet(i, plan.PacketCount, chunk); err != nil {
			return res, err
		}
		res.PacketsSent++
		res.BytesSent += len(chunk)
	}
	res.Elapsed = clock.Now().Sub(start)
	if err := sink.Summary(res); err != nil {
		return res, err
	}
	return res, nil
}
