package agent

import (
	"warehouse/experiments/metrics"
	"warehouse/game"
	"warehouse/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	searcher *searcher.Searcher
}

// NewSearchAgent returns an agent that plays the searcher's best move.
func NewSearchAgent(s *searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(state game.State, robot game.AgentID) (game.Operator, metrics.SearchMetric) {
	move, metric, err := a.searcher.FindNextMove(state, robot)
	if err != nil {
		log.Warn().Err(err).Msgf("robot %d cannot search, parking", robot)
		return game.Park, metric
	}
	return move, metric
}
