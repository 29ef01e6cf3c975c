// Package engine orchestrates the physics step: force accumulation
// over interaction graphs, symplectic integration, and collision
// response against other bodies and the arena walls.
//
// A step is fully deterministic for a fixed timestep, initial state,
// and binding configuration. Engines are single-threaded by design;
// run one engine per goroutine for parallel scenes.
//
//	eng, err := engine.New(bodies, bindings, nil, engine.Config{Dt: 0.1})
//	if err != nil {
//	    return err
//	}
//	states := eng.Step()
package engine
