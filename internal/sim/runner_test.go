package sim

import (
	"context"
	"testing"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/engine"
	"github.com/nwatters01/spriteworld-physics/internal/force"
	"github.com/nwatters01/spriteworld-physics/internal/geom"
	"github.com/nwatters01/spriteworld-physics/internal/graph"
	"github.com/nwatters01/spriteworld-physics/internal/metrics"
)

func springEngine(t *testing.T) (*engine.Engine, []engine.Binding) {
	t.Helper()
	bodies := []body.Body{
		{Position: geom.Vec2{X: 0.3, Y: 0.5}, Mass: 1},
		{Position: geom.Vec2{X: 0.7, Y: 0.5}, Mass: 1},
	}
	bindings := []engine.Binding{{Law: force.NewSpring(0.03, 0.25), Graph: graph.Graph{{I: 0, J: 1}}}}
	eng, err := engine.New(bodies, bindings, nil, engine.Config{Dt: 0.1})
	if err != nil {
		t.Fatal(err)
	}
	return eng, bindings
}

func TestRunnerCollectsTrajectory(t *testing.T) {
	eng, bindings := springEngine(t)
	r := New(eng)
	r.AddMetric(metrics.NewEnergy(bindings))

	result, err := r.Run(context.Background(), 10)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states (initial + 10), got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}
	if result.StepsTaken != 10 {
		t.Errorf("StepsTaken = %d, want 10", result.StepsTaken)
	}
	if _, ok := result.Metrics["energy"]; !ok {
		t.Error("energy metric missing from result")
	}
}

func TestRunnerRejectsBadStepCount(t *testing.T) {
	eng, _ := springEngine(t)
	if _, err := New(eng).Run(context.Background(), 0); err == nil {
		t.Error("expected error for zero steps")
	}
}

func TestRunnerContextCancellation(t *testing.T) {
	eng, _ := springEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := New(eng).Run(ctx, 100)
	if err == nil {
		t.Fatal("expected context error")
	}
	if result == nil {
		t.Fatal("partial result should still be returned")
	}
	if result.StepsTaken != 0 {
		t.Errorf("StepsTaken = %d after immediate cancel", result.StepsTaken)
	}
}

type countingObserver struct {
	calls int
}

func (c *countingObserver) OnStep(bodies []body.Body, t float64) { c.calls++ }

func TestRunnerObservers(t *testing.T) {
	eng, _ := springEngine(t)
	r := New(eng)
	obs := &countingObserver{}
	r.AddObserver(obs)

	if _, err := r.Run(context.Background(), 5); err != nil {
		t.Fatal(err)
	}
	if obs.calls != 6 {
		t.Errorf("observer called %d times, want 6", obs.calls)
	}
}

func TestEnsembleRunsAreIndependentAndDeterministic(t *testing.T) {
	build := func(run int) (*engine.Engine, error) {
		bodies := []body.Body{
			{Position: geom.Vec2{X: 0.3 + 0.01*float64(run), Y: 0.5}, Mass: 1},
			{Position: geom.Vec2{X: 0.7, Y: 0.5}, Mass: 1},
		}
		bindings := []engine.Binding{{Law: force.NewSpring(0.03, 0.25), Graph: graph.Graph{{I: 0, J: 1}}}}
		return engine.New(bodies, bindings, nil, engine.Config{Dt: 0.1})
	}

	first, err := NewEnsemble(4, build, nil).Run(context.Background(), 50)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewEnsemble(4, build, nil).Run(context.Background(), 50)
	if err != nil {
		t.Fatal(err)
	}

	for run := range first {
		a := first[run].States[50]
		b := second[run].States[50]
		for k := range a {
			if a[k].Position != b[k].Position {
				t.Fatalf("run %d body %d: ensembles diverged: %v vs %v", run, k, a[k].Position, b[k].Position)
			}
		}
	}

	// Different initial conditions must give different trajectories.
	if first[0].States[50][0].Position == first[1].States[50][0].Position {
		t.Error("distinct runs produced identical trajectories")
	}
}
