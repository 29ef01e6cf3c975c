// Package sim drives an engine over a bounded number of steps,
// collecting state history, metrics, and observer callbacks.
package sim

import (
	"context"
	"fmt"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/engine"
	"github.com/nwatters01/spriteworld-physics/internal/metrics"
)

// Observer receives each state snapshot as the run progresses, for
// live views or streaming export.
type Observer interface {
	OnStep(bodies []body.Body, t float64)
}

// Result holds the full trajectory of a run.
type Result struct {
	States     [][]body.Body
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
}

// Runner executes a fixed number of engine steps. A runner is not safe
// for concurrent use; see [Ensemble] for parallel runs.
type Runner struct {
	eng       *engine.Engine
	metrics   []metrics.Metric
	observers []Observer
}

func New(eng *engine.Engine) *Runner {
	return &Runner{eng: eng}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer)     { r.observers = append(r.observers, o) }

// Run advances the engine for the given number of steps, observing
// every state including the initial one. The context is checked
// between steps; on cancellation the partial result is returned with
// the context's error.
func (r *Runner) Run(ctx context.Context, steps int) (*Result, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("sim: steps must be positive, got %d", steps)
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	dt := r.eng.Dt()
	result := &Result{
		States:  make([][]body.Body, 0, steps+1),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
	}

	record := func(states []body.Body, t float64) {
		result.States = append(result.States, states)
		result.Times = append(result.Times, t)
		for _, m := range r.metrics {
			m.Observe(states, t)
		}
		for _, o := range r.observers {
			o.OnStep(states, t)
		}
	}

	record(r.eng.Bodies(), 0)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			r.finish(result)
			return result, ctx.Err()
		default:
		}

		record(r.eng.Step(), float64(i+1)*dt)
		result.StepsTaken++
	}

	r.finish(result)
	return result, nil
}

func (r *Runner) finish(result *Result) {
	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
