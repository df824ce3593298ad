package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// TimingStats holds timing information accumulated over a benchmark run.
type TimingStats struct {
	TotalTime        time.Duration
	SynthesisTime    time.Duration
	ApproximatorTime time.Duration
	ReferenceTime    time.Duration
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats, scenarios int) {
	if !Verbose || scenarios == 0 || stats.TotalTime == 0 {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total suite time: %v\n", stats.TotalTime)
	fmt.Fprintf(Output, "Average time per scenario: %v\n", stats.TotalTime/time.Duration(scenarios))
	fmt.Fprintf(Output, "Scenarios completed: %d\n", scenarios)
	fmt.Fprintln(Output, "\nBreakdown by operation:")
	fmt.Fprintf(Output, "  Data synthesis: %v (%.1f%%)\n", stats.SynthesisTime, float64(stats.SynthesisTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Randomized approximator: %v (%.1f%%)\n", stats.ApproximatorTime, float64(stats.ApproximatorTime)/float64(stats.TotalTime)*100)
	fmt.Fprintf(Output, "  Reference reducer: %v (%.1f%%)\n", stats.ReferenceTime, float64(stats.ReferenceTime)/float64(stats.TotalTime)*100)
	fmt.Fprintln(Output, "\nPerformance metrics:")
	fmt.Fprintf(Output, "  Average approximator time: %v\n", stats.ApproximatorTime/time.Duration(scenarios))
	fmt.Fprintf(Output, "  Average reference time: %v\n", stats.ReferenceTime/time.Duration(scenarios))
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}

// DurationMS converts any time.Duration to milli-seconds as float64
func DurationMS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000_000.0
}
