// Package agent adapts move choosers to the engine: searchers for agent 0,
// seeded random walkers for the ghosts.
package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
)

type Agent interface {
	// GetAction returns the action for the agent's turn and the search
	// metrics collected while choosing it, if any.
	GetAction(state game.State) (game.Action, metrics.SearchMetric)
}
