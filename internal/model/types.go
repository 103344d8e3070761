// Package model defines shared data structures.
package model

import "time"

// Options holds resolved simulate settings after merging flags and config.
type Options struct {
	PresetID    int
	BarWidth    int
	Plain       bool
	Yes         bool
	SaveHistory bool
}

// RunRecord captures one finished playback run for persistence.
type RunRecord struct {
	StartedAt    time.Time
	Source       string
	PresetID     int
	PresetName   string
	PayloadBytes int
	PacketCount  int
	PacketsSent  int
	BytesSent    int
	EstimatedMs  int64
	ElapsedMs    int64
	Cancelled    bool
}

// RunAggregate summarizes a stored run for history reporting.
type RunAggregate struct {
	RunID        int64
	StartedAt    time.Time
	Source       string
	PresetID     int
	PresetName   string
	PayloadBytes int
	PacketCount  int
	PacketsSent  int
	BytesSent    int
	EstimatedMs  int64
	ElapsedMs    int64
	Cancelled    bool
}

// EffectiveKbps reports the achieved payload rate of a stored run.
func (r RunAggregate) EffectiveKbps() float64 {
	if r.ElapsedMs <= 0 {
		return 0
	}
	return float64(r.BytesSent) * 8 / float64(r.ElapsedMs)
}
