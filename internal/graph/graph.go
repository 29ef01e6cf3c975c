// Package graph declares which body pairs a force law applies to.
//
// A Graph is an ordered list of unordered index pairs. Generators build
// graphs from a body count (and, for some, initial positions or an
// explicit seed); all generators are deterministic given the same
// inputs.
package graph

import "fmt"

// Edge is an unordered pair of body indices. Edges are kept normalized
// with I < J.
type Edge struct {
	I, J int
}

// normalized returns the edge with its indices in ascending order.
func (e Edge) normalized() Edge {
	if e.I > e.J {
		return Edge{I: e.J, J: e.I}
	}
	return e
}

// Graph is an ordered edge list. Order matters only for floating-point
// reproducibility of force summation, not for physical correctness.
type Graph []Edge

// Validate checks that every edge references a distinct pair of valid
// indices in [0, n) and that no edge repeats within the graph.
func (g Graph) Validate(n int) error {
	seen := make(map[Edge]struct{}, len(g))
	for k, e := range g {
		if e.I == e.J {
			return fmt.Errorf("graph: edge %d is a self-pair (%d, %d)", k, e.I, e.J)
		}
		if e.I < 0 || e.I >= n || e.J < 0 || e.J >= n {
			return fmt.Errorf("graph: edge %d (%d, %d) out of range for %d bodies", k, e.I, e.J, n)
		}
		norm := e.normalized()
		if _, dup := seen[norm]; dup {
			return fmt.Errorf("graph: duplicate edge (%d, %d)", norm.I, norm.J)
		}
		seen[norm] = struct{}{}
	}
	return nil
}

// Generator builds an edge set for n bodies.
type Generator interface {
	Name() string
	Edges(n int) (Graph, error)
}
