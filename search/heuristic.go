package search

// Heuristic estimates the remaining cost from state to the nearest goal.
// A* is only cost-optimal when the estimate never exceeds the true cost.
type Heuristic[S comparable, A any] func(state S, problem Problem[S, A]) float64

// NullHeuristic estimates zero everywhere, which reduces A* to uniform cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 {
	return 0
}
