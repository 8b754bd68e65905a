package searcher

import (
	"math"

	"pursuit/game"

	"github.com/rs/zerolog/log"
)

// Expectimax models every adversary as choosing uniformly at random among
// its legal actions, so their nodes back up the mean of their children.
type Expectimax struct {
	tree
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{tree: newTree("expectimax", options)}
}

func (e *Expectimax) FindNextMove(state game.State) game.Action {
	action, _ := e.Decide(state)
	return action
}

func (e *Expectimax) Decide(state game.State) (game.Action, float64) {
	action, value := e.decide(state, func(child game.State, agent, ply int, _ float64) float64 {
		return e.value(child, agent, ply)
	})
	log.Debug().Msgf("expectimax chose %s with value %g at depth %d", action, value, e.depth)
	return action, value
}

func (e *Expectimax) value(state game.State, agent, ply int) float64 {
	if e.cutoff(state, ply) {
		return e.leaf(state)
	}
	actions := state.AvailableActions(agent)
	if len(actions) == 0 {
		return e.leaf(state)
	}
	e.metrics.AddNode()

	next, nextPly := advance(agent, ply, state.NumAgents())
	if agent == game.PacmanIndex {
		best := negInf
		for _, action := range actions {
			best = math.Max(best, e.value(state.GenerateNextState(agent, action), next, nextPly))
		}
		return best
	}

	total := 0.0
	for _, action := range actions {
		total += e.value(state.GenerateNextState(agent, action), next, nextPly)
	}
	return total / float64(len(actions))
}
