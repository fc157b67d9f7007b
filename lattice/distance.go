package lattice

import (
	"fmt"

	"github.com/katalvlaran/tcg/grid"
)

// unreachable marks cells not yet visited by the BFS.
const unreachable = -1

// Distances runs a BFS from src and returns, per row-major cell index, the
// step distance to that cell together with the number of distinct shortest
// paths reaching it.
//
// Time: O(W·H·4). Memory: O(W·H).
func (l *Lattice) Distances(src grid.Loc) (dist, paths []int, err error) {
	if !l.Contains(src) {
		return nil, nil, fmt.Errorf("Distances(%s): %w", src, ErrOffLattice)
	}
	n := l.Len()
	dist = make([]int, n)
	paths = make([]int, n)
	for i := range dist {
		dist[i] = unreachable
	}

	s := l.index(src.X, src.Y)
	dist[s] = 0
	paths[s] = 1
	queue := []int{s}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, v := range l.Neighbors(l.Coordinate(u)) {
			vi := l.index(v.X, v.Y)
			switch dist[vi] {
			case unreachable:
				dist[vi] = dist[u] + 1
				paths[vi] = paths[u]
				queue = append(queue, vi)
			case dist[u] + 1:
				paths[vi] += paths[u]
			}
		}
	}

	return dist, paths, nil
}

// Distance returns the number of steps on a shortest path from a to b.
func (l *Lattice) Distance(a, b grid.Loc) (int, error) {
	if !l.Contains(b) {
		return 0, fmt.Errorf("Distance(%s,%s): %w", a, b, ErrOffLattice)
	}
	dist, _, err := l.Distances(a)
	if err != nil {
		return 0, err
	}
	return dist[l.index(b.X, b.Y)], nil
}

// CountShortestPaths returns how many distinct shortest paths lead from a to b.
// On a full rectangular board this equals C(|Δx|+|Δy|, |Δy|).
func (l *Lattice) CountShortestPaths(a, b grid.Loc) (int, error) {
	if !l.Contains(b) {
		return 0, fmt.Errorf("CountShortestPaths(%s,%s): %w", a, b, ErrOffLattice)
	}
	_, paths, err := l.Distances(a)
	if err != nil {
		return 0, err
	}
	return paths[l.index(b.X, b.Y)], nil
}
