package searcher

import (
	"math"

	"pursuit/game"

	"github.com/rs/zerolog/log"
)

// Minimax assumes every adversary picks the action minimizing agent 0's value.
type Minimax struct {
	tree
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{tree: newTree("minimax", options)}
}

func (m *Minimax) FindNextMove(state game.State) game.Action {
	action, _ := m.Decide(state)
	return action
}

func (m *Minimax) Decide(state game.State) (game.Action, float64) {
	action, value := m.decide(state, func(child game.State, agent, ply int, _ float64) float64 {
		return m.value(child, agent, ply)
	})
	log.Debug().Msgf("minimax chose %s with value %g at depth %d", action, value, m.depth)
	return action, value
}

func (m *Minimax) value(state game.State, agent, ply int) float64 {
	if m.cutoff(state, ply) {
		return m.leaf(state)
	}
	actions := state.AvailableActions(agent)
	if len(actions) == 0 {
		return m.leaf(state)
	}
	m.metrics.AddNode()

	next, nextPly := advance(agent, ply, state.NumAgents())
	if agent == game.PacmanIndex {
		best := negInf
		for _, action := range actions {
			best = math.Max(best, m.value(state.GenerateNextState(agent, action), next, nextPly))
		}
		return best
	}

	worst := posInf
	for _, action := range actions {
		worst = math.Min(worst, m.value(state.GenerateNextState(agent, action), next, nextPly))
	}
	return worst
}
