// Package bench runs the evaluation protocol: synthetic matrices are fed to
// the randomized approximator and to a reference reducer, and wall-clock time
// plus Frobenius reconstruction error are recorded per scenario.
package bench

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"lowrank/approx"
	"lowrank/utils"
)

// Reducer is the reference dimensionality-reduction oracle. Reduce returns
// the reduced coordinates of a and an inverse transform producing the
// rank-limited reconstruction from them.
type Reducer interface {
	Reduce(a mat.Matrix, rank int) (*mat.Dense, func(*mat.Dense) (*mat.Dense, error), error)
}

// Scenario describes one benchmark trial.
type Scenario struct {
	Name  string
	Rows  int
	Cols  int
	Rank  int
	Noise float64
	// Seed fixes the trial's generator for reproducible runs; 0 picks a
	// fresh nondeterministic seed.
	Seed uint64
}

// MethodResult holds one method's elapsed time and Frobenius residual.
type MethodResult struct {
	Elapsed time.Duration
	FrobErr float64
}

// ScenarioResult records one trial. It is never mutated after RunScenario
// returns it.
type ScenarioResult struct {
	Scenario  Scenario
	Synthesis time.Duration
	Approx    MethodResult
	Reference MethodResult
}

// Synthesize builds the scenario's rows×cols matrix: independent
// standard-normal entries plus Noise-scaled independent standard-normal
// perturbation (Noise 0 leaves the draw clean).
func Synthesize(s Scenario, src rand.Source) *mat.Dense {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	data := make([]float64, s.Rows*s.Cols)
	for i := range data {
		data[i] = dist.Rand()
	}
	a := mat.NewDense(s.Rows, s.Cols, data)
	if s.Noise > 0 {
		for i := 0; i < s.Rows; i++ {
			for j := 0; j < s.Cols; j++ {
				a.Set(i, j, a.At(i, j)+s.Noise*dist.Rand())
			}
		}
	}
	return a
}

// RunScenario synthesizes the scenario's matrix, then times the randomized
// approximator and the reference reducer on it under the same protocol.
// There are no retries: the first failure aborts this scenario only.
func RunScenario(s Scenario, ref Reducer) (*ScenarioResult, error) {
	if ref == nil {
		return nil, fmt.Errorf("scenario %q: nil reference reducer", s.Name)
	}
	src := s.source()

	res := &ScenarioResult{Scenario: s}

	start := time.Now()
	a := Synthesize(s, src)
	res.Synthesis = time.Since(start)

	start = time.Now()
	rec, err := approx.Approximate(a, s.Rank, src)
	res.Approx.Elapsed = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: approximator: %w", s.Name, err)
	}
	res.Approx.FrobErr = frobResidual(a, rec)

	start = time.Now()
	coords, inverse, err := ref.Reduce(a, s.Rank)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: reference reducer: %w", s.Name, err)
	}
	refRec, err := inverse(coords)
	res.Reference.Elapsed = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: reference inverse transform: %w", s.Name, err)
	}
	res.Reference.FrobErr = frobResidual(a, refRec)

	return res, nil
}

// SuiteEntry pairs a scenario's result with the error that aborted it, if any.
type SuiteEntry struct {
	Result *ScenarioResult
	Err    error
}

// RunSuite runs scenarios in order. A failing scenario is recorded as an
// error entry and does not stop the remaining scenarios. Aggregate timing is
// printed through utils.PrintTimingStats when utils.Verbose is set.
func RunSuite(scenarios []Scenario, ref Reducer) []SuiteEntry {
	entries := make([]SuiteEntry, 0, len(scenarios))
	var stats utils.TimingStats
	start := time.Now()
	for _, s := range scenarios {
		r, err := RunScenario(s, ref)
		entries = append(entries, SuiteEntry{Result: r, Err: err})
		if r != nil {
			stats.SynthesisTime += r.Synthesis
			stats.ApproximatorTime += r.Approx.Elapsed
			stats.ReferenceTime += r.Reference.Elapsed
		}
	}
	stats.TotalTime = time.Since(start)
	utils.PrintTimingStats(&stats, len(scenarios))
	return entries
}

func (s Scenario) source() rand.Source {
	if s.Seed != 0 {
		return rand.NewSource(s.Seed)
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

func frobResidual(a mat.Matrix, rec *mat.Dense) float64 {
	var diff mat.Dense
	diff.Sub(a, rec)
	return mat.Norm(&diff, 2)
}
