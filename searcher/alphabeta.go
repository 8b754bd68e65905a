package searcher

import (
	"math"

	"pursuit/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta returns the same action and value as Minimax while skipping
// subtrees that cannot change the result. Cutoffs use strict inequality.
type AlphaBeta struct {
	tree
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{tree: newTree("alphabeta", options)}
}

func (ab *AlphaBeta) FindNextMove(state game.State) game.Action {
	action, _ := ab.Decide(state)
	return action
}

func (ab *AlphaBeta) Decide(state game.State) (game.Action, float64) {
	// The root's running best is alpha for every later root branch
	action, value := ab.decide(state, func(child game.State, agent, ply int, best float64) float64 {
		return ab.value(child, agent, ply, best, posInf)
	})
	log.Debug().Msgf("alphabeta chose %s with value %g at depth %d", action, value, ab.depth)
	return action, value
}

// value backs up state's subtree. alpha is the best value agent 0 can
// already guarantee on the path to the root, beta the best the adversaries can.
func (ab *AlphaBeta) value(state game.State, agent, ply int, alpha, beta float64) float64 {
	if ab.cutoff(state, ply) {
		return ab.leaf(state)
	}
	actions := state.AvailableActions(agent)
	if len(actions) == 0 {
		return ab.leaf(state)
	}
	ab.metrics.AddNode()

	next, nextPly := advance(agent, ply, state.NumAgents())
	if agent == game.PacmanIndex {
		best := negInf
		for _, action := range actions {
			best = math.Max(best, ab.value(state.GenerateNextState(agent, action), next, nextPly, alpha, beta))
			if best > beta {
				ab.metrics.AddPrune()
				return best
			}
			alpha = math.Max(alpha, best)
		}
		return best
	}

	worst := posInf
	for _, action := range actions {
		worst = math.Min(worst, ab.value(state.GenerateNextState(agent, action), next, nextPly, alpha, beta))
		if worst < alpha {
			ab.metrics.AddPrune()
			return worst
		}
		beta = math.Min(beta, worst)
	}
	return worst
}
