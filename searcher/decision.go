package searcher

import (
	"math"
	"warehouse/experiments/metrics"
	"warehouse/game"
)

// opponentPly backs up a ply where the robot other than the root agent moves.
type opponentPly func(s *search, state game.State, ops []game.Operator, depth int, alpha, beta float64) float64

// search holds what stays fixed during one recursive search. Everything that
// varies per node (state, depth, alpha, beta) is passed by value.
type search struct {
	agent    game.AgentID // Root agent, whose perspective every leaf is scored from
	evaluate game.Evaluate
	prune    bool
	opponent opponentPly
	metrics  metrics.Collector
}

func newSearch(strategy Strategy, agent game.AgentID, evaluate game.Evaluate, collector metrics.Collector) *search {
	s := &search{
		agent:    agent,
		evaluate: evaluate,
		opponent: adversary,
		metrics:  collector,
	}
	switch strategy {
	case AlphaBeta:
		s.prune = true
	case Expectimax:
		s.opponent = chance
	}
	return s
}

// value returns the backed up value of state with turn to move and depth plies left.
func (s *search) value(state game.State, turn game.AgentID, depth int, alpha, beta float64) float64 {
	if depth <= 0 || state.Done() {
		return s.leaf(state)
	}

	ops := state.LegalOperators(turn)
	if len(ops) == 0 { // Stuck robot, scored like a terminal state
		return s.leaf(state)
	}

	if turn == s.agent {
		return s.maximize(state, ops, depth, alpha, beta)
	}
	return s.opponent(s, state, ops, depth, alpha, beta)
}

func (s *search) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(state, s.agent)
}

// child clones state and applies op for turn. The clone is owned by the caller.
func (s *search) child(state game.State, turn game.AgentID, op game.Operator) game.State {
	child := state.Clone()
	child.Apply(turn, op)
	s.metrics.AddExpansion()
	return child
}

func (s *search) maximize(state game.State, ops []game.Operator, depth int, alpha, beta float64) float64 {
	turn := s.agent
	best := math.Inf(-1)
	for i, op := range ops {
		v := s.value(s.child(state, turn, op), turn.Other(), depth-1, alpha, beta)
		best = max(best, v)
		alpha = max(alpha, v)
		if s.prune && beta <= alpha {
			s.cutoff(i, len(ops))
			break
		}
	}
	return best
}

// adversary models the other robot as minimizing the root agent's value.
func adversary(s *search, state game.State, ops []game.Operator, depth int, alpha, beta float64) float64 {
	turn := s.agent.Other()
	best := math.Inf(1)
	for i, op := range ops {
		v := s.value(s.child(state, turn, op), s.agent, depth-1, alpha, beta)
		best = min(best, v)
		beta = min(beta, v)
		if s.prune && beta <= alpha {
			s.cutoff(i, len(ops))
			break
		}
	}
	return best
}

// cutoff records a prune that skipped at least one sibling.
func (s *search) cutoff(i, n int) {
	if i < n-1 {
		s.metrics.AddCutoff()
	}
}
