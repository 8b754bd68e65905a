// Package search implements uninformed and heuristic graph search over any
// Problem. All algorithms return the actions from the initial state to a goal,
// or an empty slice when no goal is reachable.
package search

import (
	"pursuit/frontier"

	"github.com/rs/zerolog/log"
)

type node[S comparable, A any] struct {
	state S
	path  []A
	cost  float64
}

// DepthFirst expands the deepest node first. It is complete on finite graphs
// but not cost-optimal.
func DepthFirst[S comparable, A any](problem Problem[S, A]) []A {
	return graphSearch(problem, frontier.NewStack[node[S, A]]())
}

// BreadthFirst expands the shallowest node first. It is optimal when every
// step costs the same.
func BreadthFirst[S comparable, A any](problem Problem[S, A]) []A {
	return graphSearch(problem, frontier.NewQueue[node[S, A]]())
}

// UniformCost expands the node of least accumulated cost first. It is
// cost-optimal for non-negative step costs.
func UniformCost[S comparable, A any](problem Problem[S, A]) []A {
	return graphSearch(problem, frontier.NewPriorityQueueFunc(func(n node[S, A]) float64 {
		return n.cost
	}))
}

// AStar expands the node of least accumulated cost plus heuristic estimate
// first. A nil heuristic is NullHeuristic.
func AStar[S comparable, A any](problem Problem[S, A], heuristic Heuristic[S, A]) []A {
	if heuristic == nil {
		heuristic = NullHeuristic[S, A]
	}
	return graphSearch(problem, frontier.NewPriorityQueueFunc(func(n node[S, A]) float64 {
		return n.cost + heuristic(n.state, problem)
	}))
}

func graphSearch[S comparable, A any](problem Problem[S, A], fringe frontier.Frontier[node[S, A]]) []A {
	visited := make(map[S]struct{})
	fringe.Push(node[S, A]{state: problem.InitialState(), path: []A{}})

	for !fringe.IsEmpty() {
		current := fringe.Pop()
		if problem.IsGoalState(current.state) {
			log.Debug().Msgf("goal found after expanding %d states: %d actions, cost %g",
				len(visited), len(current.path), current.cost)
			return current.path
		}
		// Duplicates are filtered on pop, never on push
		if _, ok := visited[current.state]; ok {
			continue
		}
		visited[current.state] = struct{}{}

		for _, next := range problem.NextStates(current.state) {
			if _, ok := visited[next.State]; ok {
				continue
			}
			fringe.Push(node[S, A]{
				state: next.State,
				path:  extend(current.path, next.Action),
				cost:  current.cost + next.Cost,
			})
		}
	}

	log.Debug().Msgf("frontier exhausted after expanding %d states: no path", len(visited))
	return []A{}
}

// extend copies path so sibling nodes never share a backing array.
func extend[A any](path []A, action A) []A {
	extended := make([]A, len(path)+1)
	copy(extended, path)
	extended[len(path)] = action
	return extended
}
