package metrics

import (
	"math"

	"github.com/nwatters01/spriteworld-physics/internal/body"
	"github.com/nwatters01/spriteworld-physics/internal/engine"
	"github.com/nwatters01/spriteworld-physics/internal/force"
)

// Metric observes body states over a run and reduces them to a single
// value.
type Metric interface {
	Name() string
	Observe(bodies []body.Body, t float64)
	Value() float64
	Reset()
}

// Energy reports the current total mechanical energy: kinetic energy
// of all bodies plus the pair potential of every binding whose law
// implements [force.Potential].
type Energy struct {
	bindings []engine.Binding
	current  float64
	samples  int
}

func NewEnergy(bindings []engine.Binding) *Energy {
	return &Energy{bindings: bindings}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(bodies []body.Body, t float64) {
	e.current = Total(bodies, e.bindings)
	e.samples++
}

func (e *Energy) Value() float64 {
	return e.current
}

func (e *Energy) Reset() {
	e.current = 0
	e.samples = 0
}

// EnergyDrift tracks the maximum relative deviation of total energy
// from its value at the first observation. A symplectic integrator on
// a conservative scene should keep this small and bounded.
type EnergyDrift struct {
	bindings []engine.Binding
	initial  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift(bindings []engine.Binding) *EnergyDrift {
	return &EnergyDrift{bindings: bindings}
}

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(bodies []body.Body, t float64) {
	total := Total(bodies, e.bindings)

	if e.samples == 0 {
		e.initial = total
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(total-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64 {
	return e.maxDrift
}

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.maxDrift = 0
	e.samples = 0
}

// Total returns kinetic plus pair-potential energy for the given
// state. Laws without a defined potential contribute nothing.
func Total(bodies []body.Body, bindings []engine.Binding) float64 {
	total := 0.0
	for i := range bodies {
		total += bodies[i].KineticEnergy()
	}
	for _, bind := range bindings {
		p, ok := bind.Law.(force.Potential)
		if !ok {
			continue
		}
		for _, edge := range bind.Graph {
			total += p.Potential(&bodies[edge.I], &bodies[edge.J])
		}
	}
	return total
}
