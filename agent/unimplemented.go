package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/utils"
)

// UnimplementedAgent can be embedded by agents still under construction.
type UnimplementedAgent struct{}

func (UnimplementedAgent) GetAction(game.State) (game.Action, metrics.SearchMetric) {
	panic(utils.NotImplemented("GetAction"))
}
