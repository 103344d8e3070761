package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/meshsim/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}

func TestInsertAndListRuns(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	recs := []model.RunRecord{
		{StartedAt: base, Source: "sample", PresetID: 6, PresetName: "Long Range / Fast",
			PayloadBytes: 1543, PacketCount: 7, PacketsSent: 7, BytesSent: 1543,
			EstimatedMs: 12374, ElapsedMs: 12380},
		{StartedAt: base.Add(time.Hour), Source: "notes.txt", PresetID: 8, PresetName: "Long Range / Slow",
			PayloadBytes: 500, PacketCount: 3, PacketsSent: 1, BytesSent: 166,
			EstimatedMs: 24355, ElapsedMs: 8100, Cancelled: true},
	}
	for _, rec := range recs {
		if _, err := st.InsertRun(ctx, rec); err != nil {
			t.Fatalf("failed to insert run: %v", err)
		}
	}

	runs, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].StartedAt.Equal(base) {
		t.Fatalf("expected chronological order, first run at %v", runs[0].StartedAt)
	}
	if runs[0].Cancelled || !runs[1].Cancelled {
		t.Fatal("cancelled flag did not round-trip")
	}
	if runs[1].PacketsSent != 1 || runs[1].PacketCount != 3 {
		t.Fatalf("partial run did not round-trip: %+v", runs[1])
	}
}

func TestListRunsLimitKeepsMostRecent(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		rec := model.RunRecord{
			StartedAt: base.Add(time.Duration(i) * time.Hour), Source: "sample",
			PresetID: 6, PresetName: "Long Range / Fast",
			PayloadBytes: 100, PacketCount: 1, PacketsSent: 1, BytesSent: 100,
			EstimatedMs: 900, ElapsedMs: 900,
		}
		if _, err := st.InsertRun(ctx, rec); err != nil {
			t.Fatalf("failed to insert run: %v", err)
		}
	}

	runs, err := st.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].StartedAt.Equal(base.Add(3 * time.Hour)) {
		t.Fatalf("expected the limited window in chronological order, got %v first", runs[0].StartedAt)
	}
	if !runs[1].StartedAt.Equal(base.Add(4 * time.Hour)) {
		t.Fatalf("expected the most recent run last, got %v", runs[1].StartedAt)
	}
}
