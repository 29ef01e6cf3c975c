package graph

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/nwatters01/spriteworld-physics/internal/geom"
)

// FullyConnected yields every unordered pair of distinct indices,
// n*(n-1)/2 edges in (i, j) lexicographic order.
type FullyConnected struct{}

func (FullyConnected) Name() string { return "full" }

func (FullyConnected) Edges(n int) (Graph, error) {
	g := make(Graph, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g = append(g, Edge{I: i, J: j})
		}
	}
	return g, nil
}

// Star pairs one designated center index with every other index, with
// no edges among the satellites.
type Star struct {
	Center int
}

func (s Star) Name() string { return "star" }

func (s Star) Edges(n int) (Graph, error) {
	if s.Center < 0 || s.Center >= n {
		return nil, fmt.Errorf("graph: star center %d out of range for %d bodies", s.Center, n)
	}
	g := make(Graph, 0, n-1)
	for i := 0; i < n; i++ {
		if i == s.Center {
			continue
		}
		g = append(g, Edge{I: s.Center, J: i}.normalized())
	}
	return g, nil
}

// NearestNeighbor connects each body to its K closest bodies by initial
// position, with shared pairs deduplicated. Positions must hold one
// entry per body.
type NearestNeighbor struct {
	K         int
	Positions []geom.Vec2
}

func (nn NearestNeighbor) Name() string { return "nearest" }

func (nn NearestNeighbor) Edges(n int) (Graph, error) {
	if len(nn.Positions) != n {
		return nil, fmt.Errorf("graph: nearest-neighbor has %d positions for %d bodies", len(nn.Positions), n)
	}
	if nn.K < 1 || nn.K >= n {
		return nil, fmt.Errorf("graph: nearest-neighbor k=%d invalid for %d bodies", nn.K, n)
	}

	g := make(Graph, 0, n*nn.K)
	seen := make(map[Edge]struct{}, n*nn.K)
	order := make([]int, 0, n-1)

	for i := 0; i < n; i++ {
		order = order[:0]
		for j := 0; j < n; j++ {
			if j != i {
				order = append(order, j)
			}
		}
		pi := nn.Positions[i]
		// Ties broken by index so the result is deterministic.
		sort.SliceStable(order, func(a, b int) bool {
			da := pi.Distance(nn.Positions[order[a]])
			db := pi.Distance(nn.Positions[order[b]])
			if da != db {
				return da < db
			}
			return order[a] < order[b]
		})

		for _, j := range order[:nn.K] {
			e := Edge{I: i, J: j}.normalized()
			if _, dup := seen[e]; dup {
				continue
			}
			seen[e] = struct{}{}
			g = append(g, e)
		}
	}
	return g, nil
}

// Manual is a caller-supplied edge list, validated against the body
// count at generation time.
type Manual struct {
	Pairs Graph
}

func (m Manual) Name() string { return "manual" }

func (m Manual) Edges(n int) (Graph, error) {
	g := make(Graph, len(m.Pairs))
	for i, e := range m.Pairs {
		g[i] = e.normalized()
	}
	if err := g.Validate(n); err != nil {
		return nil, err
	}
	return g, nil
}

// Random keeps each unordered pair independently with probability P.
// The seed is a required, explicit parameter: the same seed always
// produces the same topology.
type Random struct {
	P    float64
	Seed int64
}

func (r Random) Name() string { return "random" }

func (r Random) Edges(n int) (Graph, error) {
	if r.P < 0 || r.P > 1 {
		return nil, fmt.Errorf("graph: random edge probability %g outside [0, 1]", r.P)
	}
	rng := rand.New(rand.NewSource(r.Seed))
	var g Graph
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < r.P {
				g = append(g, Edge{I: i, J: j})
			}
		}
	}
	return g, nil
}
