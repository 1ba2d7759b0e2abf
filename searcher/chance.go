package searcher

import (
	"warehouse/game"
)

// ChargeWeight is the weight of each outcome when the other robot stands on a
// charge station in the parent state.
const ChargeWeight = 2.0

// chance models the other robot as picking uniformly among its operators and
// returns the weighted mean of the children.
func chance(s *search, state game.State, ops []game.Operator, depth int, alpha, beta float64) float64 {
	turn := s.agent.Other()
	weight := outcomeWeight(state, turn)

	sum := 0.0
	count := 0.0
	for _, op := range ops {
		v := s.value(s.child(state, turn, op), s.agent, depth-1, alpha, beta)
		sum += weight * v
		count += weight
	}
	return sum / count
}

// outcomeWeight is decided once per ply from the parent state, so every
// child of a ply shares it.
func outcomeWeight(state game.State, turn game.AgentID) float64 {
	if state.IsChargeStation(state.Robot(turn).Position) {
		return ChargeWeight
	}
	return 1.0
}
