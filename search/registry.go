package search

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Algorithm runs one graph search and returns the plan it finds.
type Algorithm[S comparable, A any] func(problem Problem[S, A], heuristic Heuristic[S, A]) []A

// Algorithms maps the configuration names of the search algorithms to their
// implementations. Only AStar consults the heuristic.
func Algorithms[S comparable, A any]() map[string]Algorithm[S, A] {
	return map[string]Algorithm[S, A]{
		"dfs":   func(p Problem[S, A], _ Heuristic[S, A]) []A { return DepthFirst(p) },
		"bfs":   func(p Problem[S, A], _ Heuristic[S, A]) []A { return BreadthFirst(p) },
		"ucs":   func(p Problem[S, A], _ Heuristic[S, A]) []A { return UniformCost(p) },
		"astar": AStar[S, A],
	}
}

// Lookup returns the algorithm registered under name.
func Lookup[S comparable, A any](name string) (Algorithm[S, A], error) {
	algorithms := Algorithms[S, A]()
	algorithm, ok := algorithms[name]
	if !ok {
		names := maps.Keys(algorithms)
		slices.Sort(names)
		return nil, fmt.Errorf("unknown search algorithm %q (want one of %v)", name, names)
	}
	return algorithm, nil
}
