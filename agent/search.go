package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent plays agent 0 with s.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	action := a.searcher.FindNextMove(state)
	return action, a.searcher.Metrics()
}
