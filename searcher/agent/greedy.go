package agent

import (
	"warehouse/experiments/metrics"
	"warehouse/game"
	"warehouse/utils"
)

type greedyAgent struct {
	evaluate game.Evaluate
}

// NewGreedyAgent returns an agent that plays the move with the best immediate successor.
func NewGreedyAgent(evaluate game.Evaluate) Agent {
	return greedyAgent{evaluate: evaluate}
}

func (a greedyAgent) FindMove(state game.State, robot game.AgentID) (game.Operator, metrics.SearchMetric) {
	ops := state.LegalOperators(robot)
	if len(ops) == 0 {
		return game.Park, metrics.SearchMetric{}
	}

	scores := make([]float64, len(ops))
	for i, op := range ops {
		child := state.Clone()
		child.Apply(robot, op)
		scores[i] = a.evaluate(child, robot)
	}
	return ops[utils.ArgMax(scores)], metrics.SearchMetric{Strategy: "greedy", Depth: 1}
}
