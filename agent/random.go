package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	index int
	rng   *rand.Rand
}

// NewRandomAgent picks uniformly among the legal actions of agent index.
// Agents built with the same seed replay the same choices.
func NewRandomAgent(index int, seed uint64) Agent {
	return &randomAgent{index: index, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.AvailableActions(a.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}
	return actions[a.rng.Intn(len(actions))], metrics.SearchMetric{}
}

// NewGhosts returns random agents for ghosts 1..numAgents-1. Each ghost's
// seed derives from seed and its index, so one seed replays a whole game.
func NewGhosts(numAgents int, seed uint64) []Agent {
	ghosts := make([]Agent, 0, numAgents)
	for ghost := 1; ghost < numAgents; ghost++ {
		ghosts = append(ghosts, NewRandomAgent(ghost, seed*uint64(numAgents)+uint64(ghost)))
	}
	return ghosts
}
