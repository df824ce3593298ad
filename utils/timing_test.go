package utils

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"
)

func TestDurationUS(t *testing.T) {
	d := 1234*time.Microsecond + 567*time.Nanosecond
	got := DurationUS(d)
	if math.Abs(got-1234.567) > 0.001 {
		t.Fatalf("want 1234.567µs, got %.3f", got)
	}
}

func TestDurationMS(t *testing.T) {
	d := 1500 * time.Microsecond
	got := DurationMS(d)
	if math.Abs(got-1.5) > 0.0001 {
		t.Fatalf("want 1.5ms, got %.4f", got)
	}
}

func TestPrintTimingStatsRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	oldOut, oldVerbose := Output, Verbose
	defer func() { Output, Verbose = oldOut, oldVerbose }()
	Output = &buf

	stats := &TimingStats{
		TotalTime:        time.Second,
		SynthesisTime:    300 * time.Millisecond,
		ApproximatorTime: 200 * time.Millisecond,
		ReferenceTime:    500 * time.Millisecond,
	}

	Verbose = false
	PrintTimingStats(stats, 2)
	if buf.Len() != 0 {
		t.Fatalf("expected no output with Verbose off, got %q", buf.String())
	}

	Verbose = true
	PrintTimingStats(stats, 2)
	out := buf.String()
	if !strings.Contains(out, "TIMING STATISTICS") {
		t.Fatalf("missing header in output: %q", out)
	}
	if !strings.Contains(out, "Randomized approximator") {
		t.Fatalf("missing approximator breakdown in output: %q", out)
	}
}

func TestPrintTimingStatsZeroScenarios(t *testing.T) {
	var buf bytes.Buffer
	oldOut := Output
	defer func() { Output = oldOut }()
	Output = &buf

	PrintTimingStats(&TimingStats{TotalTime: time.Second}, 0)
	if buf.Len() != 0 {
		t.Fatalf("expected no output for zero scenarios, got %q", buf.String())
	}
}
