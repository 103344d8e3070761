package sim

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/meshsim/internal/preset"
)

func testPreset(bitRate float64) preset.Preset {
	return preset.Preset{ID: 1, Name: "test", Technical: "test", BitRate: bitRate, Range: "test"}
}

func TestEstimatePacketCount(t *testing.T) {
	p := testPreset(1070)
	cases := []struct {
		bytes   int
		packets int
	}{
		{0, 1},
		{1, 1},
		{236, 1},
		{237, 1},
		{238, 2},
		{474, 2},
		{475, 3},
		{1543, 7},
	}
	for _, tc := range cases {
		plan := Estimate(p, strings.Repeat("a", tc.bytes))
		if plan.PacketCount != tc.packets {
			t.Fatalf("%d bytes: expected %d packets, got %d", tc.bytes, tc.packets, plan.PacketCount)
		}
		if plan.PayloadBytes != tc.bytes {
			t.Fatalf("%d bytes: plan recorded %d payload bytes", tc.bytes, plan.PayloadBytes)
		}
		if plan.TotalBytes != tc.bytes+tc.packets*PacketOverhead {
			t.Fatalf("%d bytes: expected total %d, got %d", tc.bytes, tc.bytes+tc.packets*PacketOverhead, plan.TotalBytes)
		}
	}
}

func TestEstimateDurationFromOverheadInclusiveBytes(t *testing.T) {
	p := testPreset(1070)
	plan := Estimate(p, strings.Repeat("x", 1543))
	wantTotal := 1543 + 7*PacketOverhead
	if plan.TotalBytes != wantTotal {
		t.Fatalf("expected %d total bytes, got %d", wantTotal, plan.TotalBytes)
	}
	wantSeconds := float64(wantTotal) * 8 / 1070
	got := plan.Duration.Seconds()
	if diff := got - wantSeconds; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected duration %.6fs, got %.6fs", wantSeconds, got)
	}
}

func TestEstimateEmptyText(t *testing.T) {
	p := testPreset(21880)
	plan := Estimate(p, "")
	if plan.PacketCount != 1 {
		t.Fatalf("expected 1 packet for empty text, got %d", plan.PacketCount)
	}
	if plan.TotalBytes != PacketOverhead {
		t.Fatalf("expected %d overhead bytes, got %d", PacketOverhead, plan.TotalBytes)
	}
	if plan.Duration <= 0 {
		t.Fatalf("expected positive duration for empty text, got %v", plan.Duration)
	}
	want := float64(PacketOverhead) * 8 / 21880
	if got := plan.Duration.Seconds(); got < want*0.999 || got > want*1.001 {
		t.Fatalf("expected duration %.6fs, got %.6fs", want, got)
	}
}

func TestEstimateMonotonicInBitRate(t *testing.T) {
	text := strings.Repeat("m", 500)
	prev := time.Duration(0)
	for i, rate := range []float64{180, 340, 1070, 3520, 21880} {
		plan := Estimate(testPreset(rate), text)
		if plan.Duration <= 0 {
			t.Fatalf("rate %f: expected positive duration", rate)
		}
		if i > 0 && plan.Duration >= prev {
			t.Fatalf("rate %f: expected duration below %v, got %v", rate, prev, plan.Duration)
		}
		prev = plan.Duration
	}
}

func TestEstimateIdempotent(t *testing.T) {
	p := testPreset(340)
	text := "idempotence check"
	first := Estimate(p, text)
	second := Estimate(p, text)
	if first != second {
		t.Fatalf("expected identical plans, got %+v and %+v", first, second)
	}
}

func TestSegmentText(t *testing.T) {
	cases := []struct {
		text string
		n    int
		want []string
	}{
		{"", 1, []string{""}},
		{"abc", 1, []string{"abc"}},
		{"abcdef", 2, []string{"abc", "def"}},
		{"abcdefg", 3, []string{"ab", "cd", "efg"}},
		{"abcd", 3, []string{"a", "b", "cd"}},
	}
	for _, tc := range cases {
		got := SegmentText(tc.text, tc.n)
		if len(got) != len(tc.want) {
			t.Fatalf("%q/%d: expected %d chunks, got %d", tc.text, tc.n, len(tc.want), len(got))
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q/%d: chunk %d is %q, want %q", tc.text, tc.n, i, got[i], tc.want[i])
			}
		}
		if strings.Join(got, "") != tc.text {
			t.Fatalf("%q/%d: chunks do not reassemble input", tc.text, tc.n)
		}
	}
}

func TestSegmentTextKeepsRunesIntact(t *testing.T) {
	text := strings.Repeat("héllo wörld ", 10)
	chunks := SegmentText(text, 5)
	if strings.Join(chunks, "") != text {
		t.Fatal("chunks do not reassemble input")
	}
	for i, chunk := range chunks {
		if !utf8.ValidString(chunk) {
			t.Fatalf("chunk %d contains a torn rune", i)
		}
	}
}
