// Package searcher chooses agent 0's action by depth-limited game-tree
// search over a game.State: exact minimax, alpha-beta pruned minimax and
// expectimax.
package searcher

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"
)

// Searcher picks the best action for agent 0.
type Searcher interface {
	// FindNextMove returns the chosen action, Stop when agent 0 has none.
	FindNextMove(state game.State) game.Action
	// Decide returns the chosen action together with its backed-up value.
	Decide(state game.State) (game.Action, float64)
	// Metrics returns the counters of the most recent decision. They stay
	// empty unless a collector was given with WithMetrics.
	Metrics() metrics.SearchMetric
	Name() string
}

type Option func(t *tree)

// WithDepth sets how many full rounds of agent moves are searched before
// the evaluation function substitutes for further lookahead.
func WithDepth(depth int) Option {
	return func(t *tree) {
		if depth >= 0 {
			t.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(t *tree) {
		if evaluate != nil {
			t.evaluate = evaluate
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(t *tree) {
		if collector != nil {
			t.metrics = collector
		}
	}
}

// tree holds what the three variants share: the depth bound, the leaf
// evaluation and the turn-order bookkeeping.
type tree struct {
	name     string
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func newTree(name string, options []Option) tree {
	t := tree{ // Default values
		name:     name,
		depth:    meta.DEPTH,
		evaluate: game.EvaluateScore,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&t)
	}
	return t
}

func (t *tree) Name() string {
	return t.name
}

// Metrics returns the work counters of the most recent decision.
func (t *tree) Metrics() metrics.SearchMetric {
	return t.metrics.Complete()
}

// cutoff reports whether state is a leaf at ply: game over or depth reached.
func (t *tree) cutoff(state game.State, ply int) bool {
	return state.IsWin() || state.IsLose() || ply == t.depth
}

func (t *tree) leaf(state game.State) float64 {
	t.metrics.AddLeaf()
	return t.evaluate(state)
}

// advance returns the next agent to act and the ply it acts at. A ply is one
// full round, so it only grows when the turn wraps back to agent 0.
func advance(agent, ply, numAgents int) (int, int) {
	next := (agent + 1) % numAgents
	if next == game.PacmanIndex {
		ply++
	}
	return next, ply
}

// decide evaluates every root action of agent 0 and keeps the first one
// reaching a strictly greater value. value backs up the child's subtree
// given the running best value at the root.
func (t *tree) decide(state game.State, value func(child game.State, agent, ply int, best float64) float64) (game.Action, float64) {
	t.metrics.Start(t.name, t.depth)

	actions := state.AvailableActions(game.PacmanIndex)
	if len(actions) == 0 {
		return game.Stop, t.leaf(state)
	}
	t.metrics.AddNode()

	agent, ply := advance(game.PacmanIndex, 0, state.NumAgents())
	bestAction, bestValue := game.Stop, negInf
	for _, action := range actions {
		child := state.GenerateNextState(game.PacmanIndex, action)
		if v := value(child, agent, ply, bestValue); v > bestValue {
			bestAction, bestValue = action, v
		}
	}
	return bestAction, bestValue
}
