package engine

import "warehouse/experiments/metrics"

type Engine interface {
	// Run plays a game till the warehouse is done or a max number of turns is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
