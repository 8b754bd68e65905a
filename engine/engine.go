package engine

import "pursuit/experiments/metrics"

type Engine interface {
	// Run plays a game until it is won, lost or agent 0 runs out of moves
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
