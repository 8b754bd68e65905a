package search

import "pursuit/utils"

// Successor is one outgoing edge of a state.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is what a caller supplies to the graph search algorithms.
// States must be comparable so they can be kept in a visited set.
type Problem[S comparable, A any] interface {
	InitialState() S
	IsGoalState(state S) bool
	// NextStates returns the successors of state in a fixed order.
	NextStates(state S) []Successor[S, A]
	// CostOfActions returns the total cost of a sequence of legal actions.
	CostOfActions(actions []A) float64
}

// UnimplementedProblem can be embedded by partial problems. Every method
// panics with an error wrapping utils.ErrNotImplemented.
type UnimplementedProblem[S comparable, A any] struct{}

func (UnimplementedProblem[S, A]) InitialState() S {
	panic(utils.NotImplemented("InitialState"))
}

func (UnimplementedProblem[S, A]) IsGoalState(S) bool {
	panic(utils.NotImplemented("IsGoalState"))
}

func (UnimplementedProblem[S, A]) NextStates(S) []Successor[S, A] {
	panic(utils.NotImplemented("NextStates"))
}

func (UnimplementedProblem[S, A]) CostOfActions([]A) float64 {
	panic(utils.NotImplemented("CostOfActions"))
}
