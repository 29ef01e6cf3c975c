package sim

import (
	"context"
	"sync"

	"github.com/nwatters01/spriteworld-physics/internal/engine"
)

// Ensemble runs many independent simulations in parallel. Each run
// gets its own engine from the factory, so no state is shared between
// goroutines; the factory index is typically folded into a scene seed.
type Ensemble struct {
	build   func(run int) (*engine.Engine, error)
	metrics func(run int, r *Runner)
	numRuns int
}

// NewEnsemble constructs an ensemble of numRuns runs. The optional
// metrics hook attaches metrics and observers to each run's runner.
func NewEnsemble(numRuns int, build func(run int) (*engine.Engine, error), metrics func(run int, r *Runner)) *Ensemble {
	return &Ensemble{build: build, metrics: metrics, numRuns: numRuns}
}

// Run executes all runs concurrently and returns their results in run
// order. The first engine construction or run error is returned.
func (e *Ensemble) Run(ctx context.Context, steps int) ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(run int) {
			defer wg.Done()

			eng, err := e.build(run)
			if err != nil {
				errs[run] = err
				return
			}

			r := New(eng)
			if e.metrics != nil {
				e.metrics(run, r)
			}
			results[run], errs[run] = r.Run(ctx, steps)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
